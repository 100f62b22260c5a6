package league

import (
	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/bracket"
	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/standings"
)

// MasterBracket is the bracket as it should be shown. Until a result is recorded it
// follows the current standings; after that the stored bracket is authoritative.
// It is empty while the roster has fewer than bracket.Size players.
func MasterBracket(state domain.AppState) []domain.BracketMatch {
	if len(state.Players) < bracket.Size {
		return nil
	}
	if bracket.Started(state.MasterBracket) {
		return state.MasterBracket
	}
	return bracket.Generate(standings.Contenders(state.Players, bracket.Size))
}

// RecordBracketMatch stores a bracket result and moves the winner into the slot of
// the next match fed by this one.
func RecordBracketMatch(state domain.AppState, s auth.Session, matchID string, winnerID int, score string) (domain.AppState, error) {
	if err := s.Allow(auth.EditResults); err != nil {
		return state, err
	}
	b := bracket.Clone(MasterBracket(state))
	i := bracket.Find(b, matchID)
	if i == -1 {
		return state, nil
	}
	target := b[i]
	if !target.Ready() {
		return state, ErrMatchNotReady
	}
	if *target.Player1ID != winnerID && *target.Player2ID != winnerID {
		return state, ErrWrongWinner
	}
	next, slot := bracket.Dependent(b, matchID)
	if next != -1 && b[next].Decided() && !domain.SameID(target.WinnerID, domain.ID(winnerID)) {
		return state, ErrBracketLocked
	}
	target.WinnerID = domain.ID(winnerID)
	target.Score = score
	b[i] = target
	if next != -1 {
		b[next] = fill(b[next], slot, domain.ID(winnerID))
	}
	state.MasterBracket = b
	return state, nil
}

// ResetBracketMatch clears a bracket result and the slot it filled downstream. It
// refuses with ErrBracketLocked when the downstream match is already decided.
func ResetBracketMatch(state domain.AppState, s auth.Session, matchID string) (domain.AppState, error) {
	if err := s.Allow(auth.EditResults); err != nil {
		return state, err
	}
	i := bracket.Find(state.MasterBracket, matchID)
	if i == -1 || !state.MasterBracket[i].Decided() {
		return state, nil
	}
	b := bracket.Clone(state.MasterBracket)
	if next, slot := bracket.Dependent(b, matchID); next != -1 {
		if b[next].Decided() {
			return state, ErrBracketLocked
		}
		b[next] = fill(b[next], slot, nil)
	}
	b[i].WinnerID = nil
	b[i].Score = ""
	state.MasterBracket = b
	return state, nil
}

func fill(m domain.BracketMatch, slot int, playerID *int) domain.BracketMatch {
	switch slot {
	case 1:
		m.Player1ID = playerID
	case 2:
		m.Player2ID = playerID
	}
	return m
}
