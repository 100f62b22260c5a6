// Package rating derives Elo and Glicko-2 ratings from the group match history.
// Ratings are informational only and never feed back into the league state.
package rating

import (
	"sort"

	glicko "github.com/zelenin/go-glicko2"

	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/standings"
)

const (
	glickoStart = 1500
	glickoRD    = 350
	glickoSigma = 0.06
)

type Rating struct {
	PlayerID    int
	Name        string
	GamesPlayed int
	Elo         int
	Glicko      float64
	GlickoRD    float64
}

// Compute rates every player from the decided, played group matches of all months.
// Walkovers carry no information about playing strength and are skipped. Each month
// is a single Glicko-2 rating period. The result is ordered by Elo, ties keep the
// standings order.
func Compute(state domain.AppState) []Rating {
	players := standings.Rank(state.Players)
	known := make(map[int]bool, len(players))
	elo := make(map[int]int, len(players))
	games := make(map[int]int, len(players))
	glickoPlayers := make(map[int]*glicko.Player, len(players))
	for _, p := range players {
		known[p.ID] = true
		elo[p.ID] = StartElo
		glickoPlayers[p.ID] = glicko.NewPlayer(glicko.NewRating(glickoStart, glickoRD, glickoSigma))
	}

	for _, month := range state.MonthlyData {
		period := glicko.NewRatingPeriod()
		for _, p := range players {
			period.AddPlayer(glickoPlayers[p.ID])
		}
		for _, m := range month.Matches {
			if m.IsWO || !m.Decided() || !known[m.Player1ID] || !known[m.Player2ID] {
				continue
			}
			winner := *m.WinnerID
			loser, _ := m.Loser()
			if !m.Has(winner) {
				continue
			}
			ratingW, ratingL := elo[winner], elo[loser]
			elo[winner] = Elo(ratingW, ratingL, kFactor(games[winner], ratingW), Win)
			elo[loser] = Elo(ratingL, ratingW, kFactor(games[loser], ratingL), Lose)
			games[winner]++
			games[loser]++
			period.AddMatch(glickoPlayers[winner], glickoPlayers[loser], glicko.MATCH_RESULT_WIN)
		}
		period.Calculate()
	}

	ratings := make([]Rating, 0, len(players))
	for _, p := range players {
		r := glickoPlayers[p.ID].Rating()
		ratings = append(ratings, Rating{
			PlayerID:    p.ID,
			Name:        p.Name,
			GamesPlayed: games[p.ID],
			Elo:         elo[p.ID],
			Glicko:      r.R(),
			GlickoRD:    r.Rd(),
		})
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Elo > ratings[j].Elo
	})
	return ratings
}
