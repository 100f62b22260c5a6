package league

import (
	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/stats"
)

// RecordGroupMatch stores a result for a match of the active month. A previous
// result is reverted first, so scoring the same match twice never double counts.
// An unknown match id leaves the state as is.
func RecordGroupMatch(state domain.AppState, s auth.Session, matchID string, winnerID int, score string, isWO bool) (domain.AppState, error) {
	if err := s.Allow(auth.EditResults); err != nil {
		return state, err
	}
	i, old, ok := findGroupMatch(state, matchID)
	if !ok {
		return state, nil
	}
	if !old.Has(winnerID) {
		return state, ErrWrongWinner
	}
	updated := old
	updated.WinnerID = domain.ID(winnerID)
	updated.Score = score
	updated.IsWO = isWO
	updated.IsNotPlayed = false
	return replaceGroupMatch(state, i, old, updated), nil
}

// ResetGroupMatch returns a match to undecided, removing its statistics.
func ResetGroupMatch(state domain.AppState, s auth.Session, matchID string) (domain.AppState, error) {
	if err := s.Allow(auth.EditResults); err != nil {
		return state, err
	}
	i, old, ok := findGroupMatch(state, matchID)
	if !ok {
		return state, nil
	}
	updated := old
	updated.WinnerID = nil
	updated.Score = ""
	updated.IsWO = false
	updated.IsNotPlayed = false
	return replaceGroupMatch(state, i, old, updated), nil
}

// MarkNotPlayed closes a match without a winner, removing any statistics it gave.
func MarkNotPlayed(state domain.AppState, s auth.Session, matchID string) (domain.AppState, error) {
	if err := s.Allow(auth.EditResults); err != nil {
		return state, err
	}
	i, old, ok := findGroupMatch(state, matchID)
	if !ok {
		return state, nil
	}
	updated := old
	updated.WinnerID = nil
	updated.Score = domain.NotPlayedScore
	updated.IsWO = false
	updated.IsNotPlayed = true
	return replaceGroupMatch(state, i, old, updated), nil
}

func findGroupMatch(state domain.AppState, matchID string) (int, domain.Match, bool) {
	month, ok := state.CurrentMonth()
	if !ok {
		return -1, domain.Match{}, false
	}
	for i := range month.Matches {
		if month.Matches[i].ID == matchID {
			return i, month.Matches[i], true
		}
	}
	return -1, domain.Match{}, false
}

// replaceGroupMatch swaps old for updated at index i of the active month and moves
// the statistics from old's outcome to updated's.
func replaceGroupMatch(state domain.AppState, i int, old, updated domain.Match) domain.AppState {
	players := stats.Revert(state.Players, old)
	players = stats.Apply(players, updated)

	month, _ := state.CurrentMonth()
	matches := make([]domain.Match, len(month.Matches))
	copy(matches, month.Matches)
	matches[i] = updated

	next := state.WithCurrentMonthMatches(matches)
	next.Players = players
	return next
}
