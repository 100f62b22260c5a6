package domain

// Player carries lifetime counters and their monthly mirrors. Monthly counters are
// zeroed on every season advance.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	TotalPoints     int `json:"totalPoints"`
	Wins            int `json:"wins"`
	Losses          int `json:"losses"`
	GamesPlayed     int `json:"gamesPlayed"`
	SetsWon         int `json:"setsWon"`
	PointsFromGames int `json:"pointsFromGames"`
	TotalWoWins     int `json:"totalWoWins"`
	TotalWoLosses   int `json:"totalWoLosses"`

	MonthlyPoints          int `json:"monthlyPoints"`
	MonthlyWins            int `json:"monthlyWins"`
	MonthlyLosses          int `json:"monthlyLosses"`
	MonthlyGamesPlayed     int `json:"monthlyGamesPlayed"`
	MonthlySetsWon         int `json:"monthlySetsWon"`
	MonthlyPointsFromGames int `json:"monthlyPointsFromGames"`
	MonthlyWoWins          int `json:"monthlyWoWins"`
	MonthlyWoLosses        int `json:"monthlyWoLosses"`
}

// ResetMonthly returns a copy of p with every monthly counter set to zero.
func (p Player) ResetMonthly() Player {
	p.MonthlyPoints = 0
	p.MonthlyWins = 0
	p.MonthlyLosses = 0
	p.MonthlyGamesPlayed = 0
	p.MonthlySetsWon = 0
	p.MonthlyPointsFromGames = 0
	p.MonthlyWoWins = 0
	p.MonthlyWoLosses = 0
	return p
}

// Balanced reports whether wins and losses add up to games played, both lifetime
// and monthly.
func (p Player) Balanced() bool {
	return p.Wins+p.Losses == p.GamesPlayed &&
		p.MonthlyWins+p.MonthlyLosses == p.MonthlyGamesPlayed
}
