// Package bracket builds and navigates the 16-player Master bracket.
package bracket

import (
	"fmt"

	"github.com/goserg/tennisleague/internal/domain"
)

// Size is the number of contenders a Master bracket is built for.
const Size = 16

// seeds pairs each seed with its mirror so the strongest players meet as late as
// possible. R16 match i is seeds[2i] against seeds[2i+1].
var seeds = [Size]int{0, 15, 7, 8, 4, 11, 3, 12, 5, 10, 2, 13, 6, 9, 1, 14}

// rounds lists every round after R16 with its match count and feeder round.
var rounds = []struct {
	round   domain.Round
	matches int
	source  domain.Round
}{
	{domain.QuarterFinal, 4, domain.RoundOf16},
	{domain.SemiFinal, 2, domain.QuarterFinal},
	{domain.Final, 1, domain.SemiFinal},
}

// MatchID names the match at index i of the round, e.g. "QF-1".
func MatchID(round domain.Round, i int) string {
	return fmt.Sprintf("%s-%d", round, i)
}

// Generate builds the full bracket for contenders ranked best first. Anything other
// than exactly Size contenders yields an empty bracket.
func Generate(contenders []int) []domain.BracketMatch {
	if len(contenders) != Size {
		return nil
	}
	bracket := make([]domain.BracketMatch, 0, Size-1)
	for i := 0; i < Size/2; i++ {
		bracket = append(bracket, domain.BracketMatch{
			ID:         MatchID(domain.RoundOf16, i),
			Round:      domain.RoundOf16,
			MatchIndex: i,
			Player1ID:  domain.ID(contenders[seeds[i*2]]),
			Player2ID:  domain.ID(contenders[seeds[i*2+1]]),
		})
	}
	for _, r := range rounds {
		for i := 0; i < r.matches; i++ {
			source1 := MatchID(r.source, i*2)
			source2 := MatchID(r.source, i*2+1)
			bracket = append(bracket, domain.BracketMatch{
				ID:             MatchID(r.round, i),
				Round:          r.round,
				MatchIndex:     i,
				SourceMatch1ID: &source1,
				SourceMatch2ID: &source2,
			})
		}
	}
	return bracket
}
