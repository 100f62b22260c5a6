package league

import (
	"fmt"
	"time"

	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/bracket"
	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/standings"
)

// PlayersPerGroup is the size of a monthly group. The last group takes whatever is
// left of the roster.
const PlayersPerGroup = 4

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName names the season that follows the one at currentMonthIndex, counting
// from the calendar month of now.
func MonthName(now time.Time, currentMonthIndex int) string {
	return monthNames[(int(now.Month())-1+currentMonthIndex+1)%len(monthNames)]
}

// AdvanceSeason closes the active month. It zeroes monthly counters, regroups the
// ranked roster, creates the round-robin matches of the new month and regenerates
// the Master bracket from the new top 16.
func AdvanceSeason(state domain.AppState, s auth.Session, now time.Time) (domain.AppState, error) {
	if err := s.Allow(auth.AdvanceMonth); err != nil {
		return state, err
	}
	ranked := standings.IDs(standings.Rank(state.Players))

	players := make([]domain.Player, 0, len(state.Players))
	for _, p := range state.Players {
		players = append(players, p.ResetMonthly())
	}

	monthID := 1
	nextIndex := 0
	if n := len(state.MonthlyData); n > 0 {
		monthID = state.MonthlyData[n-1].ID + 1
		nextIndex = n
	}
	groups, matches := Groups(monthID, ranked)
	month := domain.MonthlyData{
		ID:      monthID,
		Name:    MonthName(now, nextIndex-1),
		Groups:  groups,
		Matches: matches,
	}

	months := make([]domain.MonthlyData, 0, len(state.MonthlyData)+1)
	months = append(months, state.MonthlyData...)
	months = append(months, month)

	var contenders []int
	if len(ranked) >= bracket.Size {
		contenders = ranked[:bracket.Size]
	}
	return domain.AppState{
		Players:           players,
		MonthlyData:       months,
		CurrentMonthIndex: len(months) - 1,
		MasterBracket:     bracket.Generate(contenders),
	}, nil
}

// Groups splits ranked player ids into groups of PlayersPerGroup and pairs every
// two members of a group once.
func Groups(monthID int, ranked []int) ([]domain.Group, []domain.Match) {
	groups := make([]domain.Group, 0, (len(ranked)+PlayersPerGroup-1)/PlayersPerGroup)
	matches := make([]domain.Match, 0)
	for start := 0; start < len(ranked); start += PlayersPerGroup {
		end := start + PlayersPerGroup
		if end > len(ranked) {
			end = len(ranked)
		}
		g := domain.Group{
			ID:        len(groups) + 1,
			Name:      fmt.Sprintf("Grupo %d", len(groups)+1),
			PlayerIDs: append([]int{}, ranked[start:end]...),
		}
		groups = append(groups, g)
		for j := 0; j < len(g.PlayerIDs); j++ {
			for k := j + 1; k < len(g.PlayerIDs); k++ {
				p1, p2 := g.PlayerIDs[j], g.PlayerIDs[k]
				matches = append(matches, domain.Match{
					ID:        fmt.Sprintf("m%d-g%d-p%d-vs-p%d", monthID, g.ID, p1, p2),
					Player1ID: p1,
					Player2ID: p2,
				})
			}
		}
	}
	return groups, matches
}
