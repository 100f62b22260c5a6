// Package stats turns a decided group match into player counter deltas.
package stats

import (
	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/score"
)

const (
	ParticipationPoints = 2
	WinBonus            = 10
)

// Delta is the change a match makes to one player's counters. The same delta is
// applied to the lifetime counters and their monthly mirrors.
type Delta struct {
	Points          int
	Wins            int
	Losses          int
	GamesPlayed     int
	SetsWon         int
	PointsFromGames int
	WoWins          int
	WoLosses        int
}

// Deltas computes the winner and loser deltas of a decided match. A walkover loser
// gets the game and the loss but no points and no sets.
func Deltas(m domain.Match) (winner Delta, loser Delta) {
	loserID, ok := m.Loser()
	if !ok {
		return Delta{}, Delta{}
	}
	sets := score.Parse(m.Score, m.Player1ID, m.Player2ID)
	winnerSets := sets[*m.WinnerID]

	winner = Delta{
		Points:          ParticipationPoints + winnerSets + WinBonus,
		Wins:            1,
		GamesPlayed:     1,
		SetsWon:         winnerSets,
		PointsFromGames: ParticipationPoints,
	}
	loser = Delta{
		Losses:      1,
		GamesPlayed: 1,
	}
	if m.IsWO {
		winner.WoWins = 1
		loser.WoLosses = 1
		return winner, loser
	}
	loserSets := sets[loserID]
	loser.Points = ParticipationPoints + loserSets
	loser.SetsWon = loserSets
	loser.PointsFromGames = ParticipationPoints
	return winner, loser
}

// Apply credits the outcome recorded in m to both players. It returns a new slice;
// players is not modified. Undecided matches leave the roster as is.
func Apply(players []domain.Player, m domain.Match) []domain.Player {
	return update(players, m, 1)
}

// Revert removes the credit Apply gave for the same match, so the pair
// Revert(Apply(p, m), m) restores every counter of p.
func Revert(players []domain.Player, m domain.Match) []domain.Player {
	return update(players, m, -1)
}

func update(players []domain.Player, m domain.Match, sign int) []domain.Player {
	if !m.Decided() {
		return players
	}
	loserID, _ := m.Loser()
	winner, loser := Deltas(m)

	updated := make([]domain.Player, len(players))
	copy(updated, players)
	for i := range updated {
		switch updated[i].ID {
		case *m.WinnerID:
			updated[i] = add(updated[i], winner, sign)
		case loserID:
			updated[i] = add(updated[i], loser, sign)
		}
	}
	return updated
}

func add(p domain.Player, d Delta, sign int) domain.Player {
	p.TotalPoints += sign * d.Points
	p.Wins += sign * d.Wins
	p.Losses += sign * d.Losses
	p.GamesPlayed += sign * d.GamesPlayed
	p.SetsWon += sign * d.SetsWon
	p.PointsFromGames += sign * d.PointsFromGames
	p.TotalWoWins += sign * d.WoWins
	p.TotalWoLosses += sign * d.WoLosses

	p.MonthlyPoints += sign * d.Points
	p.MonthlyWins += sign * d.Wins
	p.MonthlyLosses += sign * d.Losses
	p.MonthlyGamesPlayed += sign * d.GamesPlayed
	p.MonthlySetsWon += sign * d.SetsWon
	p.MonthlyPointsFromGames += sign * d.PointsFromGames
	p.MonthlyWoWins += sign * d.WoWins
	p.MonthlyWoLosses += sign * d.WoLosses
	return p
}
