package domain

type Round string

const (
	RoundOf16    Round = "R16"
	QuarterFinal Round = "QF"
	SemiFinal    Round = "SF"
	Final        Round = "F"
)

// BracketMatch is one node of the Master bracket. Player slots of later rounds are
// filled only by propagation from SourceMatch1ID and SourceMatch2ID.
type BracketMatch struct {
	ID             string  `json:"id"`
	Round          Round   `json:"round"`
	MatchIndex     int     `json:"matchIndex"`
	Player1ID      *int    `json:"player1Id"`
	Player2ID      *int    `json:"player2Id"`
	WinnerID       *int    `json:"winnerId"`
	Score          string  `json:"score"`
	SourceMatch1ID *string `json:"sourceMatch1Id,omitempty"`
	SourceMatch2ID *string `json:"sourceMatch2Id,omitempty"`
}

func (m BracketMatch) Decided() bool {
	return m.WinnerID != nil
}

// Ready reports whether both slots are filled.
func (m BracketMatch) Ready() bool {
	return m.Player1ID != nil && m.Player2ID != nil
}

// FedBy reports which slot (1 or 2) the given source match feeds, or 0.
func (m BracketMatch) FedBy(sourceID string) int {
	switch {
	case m.SourceMatch1ID != nil && *m.SourceMatch1ID == sourceID:
		return 1
	case m.SourceMatch2ID != nil && *m.SourceMatch2ID == sourceID:
		return 2
	}
	return 0
}
