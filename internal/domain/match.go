package domain

// NotPlayedScore is written into the score of a match marked as not played.
const NotPlayedScore = "Não Jogado"

// Match is a group-stage match. WinnerID is nil while undecided.
type Match struct {
	ID          string `json:"id"`
	Player1ID   int    `json:"player1Id"`
	Player2ID   int    `json:"player2Id"`
	WinnerID    *int   `json:"winnerId"`
	Score       string `json:"score"`
	IsWO        bool   `json:"isWO"`
	IsNotPlayed bool   `json:"isNotPlayed"`
}

func (m Match) Decided() bool {
	return m.WinnerID != nil
}

// Loser returns the id of the player who is not the winner. ok is false for
// undecided matches.
func (m Match) Loser() (id int, ok bool) {
	if m.WinnerID == nil {
		return 0, false
	}
	if *m.WinnerID == m.Player1ID {
		return m.Player2ID, true
	}
	return m.Player1ID, true
}

// Has reports whether the player takes part in the match.
func (m Match) Has(playerID int) bool {
	return m.Player1ID == playerID || m.Player2ID == playerID
}

type Group struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	PlayerIDs []int  `json:"playerIds"`
}

// MonthlyData is one season: its groups and every round-robin match among them.
type MonthlyData struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Groups  []Group `json:"groups"`
	Matches []Match `json:"matches"`
}

// ID returns a pointer to a copy of v, for nullable id fields.
func ID(v int) *int {
	return &v
}

// SameID compares two nullable ids by value.
func SameID(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
