package rating

import "math"

type Points float64

const (
	Win  Points = 1
	Lose Points = 0
)

// StartElo is the rating of a player without decided matches.
const StartElo = 1000

// Elo returns the new rating of player A.
// Ra - player A rating.
// Rb - player B rating.
// K - coefficient, see kFactor.
// Sa - points: 1 for win; 0 for lose.
func Elo(Ra int, Rb int, K int, Sa Points) int {
	ra := float64(Ra)
	rb := float64(Rb)
	k := float64(K)

	Ea := 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
	ra = ra + k*(float64(Sa)-Ea)
	return int(math.Round(ra))
}

// kFactor is 40 for the first 30 games, 10 from 2400 on and 20 otherwise.
func kFactor(gamesPlayed int, rating int) int {
	if gamesPlayed <= 30 {
		return 40
	}
	if rating >= 2400 {
		return 10
	}
	return 20
}
