package domain

// AppState is the whole league snapshot. Values are treated as immutable: every
// transition builds a new AppState, copying only the containers it changes.
type AppState struct {
	Players           []Player       `json:"players"`
	MonthlyData       []MonthlyData  `json:"monthlyData"`
	CurrentMonthIndex int            `json:"currentMonthIndex"`
	MasterBracket     []BracketMatch `json:"masterBracket"`
}

// CurrentMonth returns the active month. ok is false when there are no months.
func (s AppState) CurrentMonth() (MonthlyData, bool) {
	if s.CurrentMonthIndex < 0 || s.CurrentMonthIndex >= len(s.MonthlyData) {
		return MonthlyData{}, false
	}
	return s.MonthlyData[s.CurrentMonthIndex], true
}

// Player looks a player up by id.
func (s AppState) Player(id int) (Player, bool) {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return s.Players[i], true
		}
	}
	return Player{}, false
}

// WithCurrentMonthMatches returns a copy of s whose active month holds matches.
// Other months share their backing arrays with s.
func (s AppState) WithCurrentMonthMatches(matches []Match) AppState {
	months := make([]MonthlyData, len(s.MonthlyData))
	copy(months, s.MonthlyData)
	months[s.CurrentMonthIndex].Matches = matches
	s.MonthlyData = months
	return s
}
