// Package league implements the state transitions of the tennis league: group and
// bracket results, season advance and roster changes. Every operation takes a
// snapshot and returns a new one; the input snapshot is never modified.
package league

import "errors"

var (
	// ErrBracketLocked is returned when a bracket result would change while the
	// match it feeds already has a winner.
	ErrBracketLocked = errors.New("next bracket match is already decided")
	ErrWrongWinner   = errors.New("winner must be one of the match players")
	ErrMatchNotReady = errors.New("bracket match is still waiting for its players")
	ErrEmptyName     = errors.New("player name must not be empty")
)
