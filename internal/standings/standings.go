// Package standings ranks the league roster.
package standings

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/goserg/tennisleague/internal/domain"
)

// Lang is the collation language used to break ties by name.
var Lang = language.BrazilianPortuguese

// Rank returns the players ordered by total points, highest first. Ties are broken
// by name in alphabetical order. players is not modified.
func Rank(players []domain.Player) []domain.Player {
	ranked := make([]domain.Player, len(players))
	copy(ranked, players)
	c := collate.New(Lang, collate.IgnoreCase)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalPoints != ranked[j].TotalPoints {
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
		return c.CompareString(ranked[i].Name, ranked[j].Name) < 0
	})
	return ranked
}

// IDs returns the ids of players in order.
func IDs(players []domain.Player) []int {
	ids := make([]int, 0, len(players))
	for i := range players {
		ids = append(ids, players[i].ID)
	}
	return ids
}

// Contenders returns the ids of the top n ranked players, or fewer when the roster
// is smaller.
func Contenders(players []domain.Player, n int) []int {
	ranked := Rank(players)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return IDs(ranked)
}
