package league

import (
	"strings"

	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/domain"
)

// RenamePlayer changes a player's display name. Statistics are untouched.
func RenamePlayer(state domain.AppState, s auth.Session, playerID int, name string) (domain.AppState, error) {
	if err := s.Allow(auth.ManageRoster); err != nil {
		return state, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return state, ErrEmptyName
	}
	for i := range state.Players {
		if state.Players[i].ID != playerID {
			continue
		}
		players := make([]domain.Player, len(state.Players))
		copy(players, state.Players)
		players[i].Name = name
		state.Players = players
		return state, nil
	}
	return state, nil
}

// AddPlayer appends a player with zeroed statistics and the next free id. The new
// player joins groups from the next season on.
func AddPlayer(state domain.AppState, s auth.Session, name string) (domain.AppState, domain.Player, error) {
	if err := s.Allow(auth.ManageRoster); err != nil {
		return state, domain.Player{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return state, domain.Player{}, ErrEmptyName
	}
	nextID := 1
	for i := range state.Players {
		if state.Players[i].ID >= nextID {
			nextID = state.Players[i].ID + 1
		}
	}
	p := domain.Player{ID: nextID, Name: name}
	players := make([]domain.Player, 0, len(state.Players)+1)
	players = append(players, state.Players...)
	state.Players = append(players, p)
	return state, p, nil
}
