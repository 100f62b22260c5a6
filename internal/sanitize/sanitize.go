// Package sanitize is the admission gate for externally supplied league state.
// Whatever it is given, it returns a structurally valid domain.AppState.
package sanitize

import (
	"encoding/json"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/tennisleague/internal/domain"
)

const unknownName = "Unknown"

// JSON decodes data and sanitizes the result. It fails only when data is not JSON.
func JSON(data []byte) (domain.AppState, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.AppState{}, fmt.Errorf("decode state: %w", err)
	}
	return State(raw), nil
}

// State normalizes raw, typically the result of decoding JSON into an any. Every
// field is defaulted independently when missing or of the wrong type.
func State(raw any) domain.AppState {
	obj := object(raw)
	state := domain.AppState{
		Players:           players(obj["players"]),
		MonthlyData:       listOf(obj["monthlyData"], monthlyData),
		CurrentMonthIndex: integer(obj["currentMonthIndex"]),
		MasterBracket:     listOf(obj["masterBracket"], bracketMatch),
	}
	switch {
	case len(state.MonthlyData) == 0, state.CurrentMonthIndex < 0:
		state.CurrentMonthIndex = 0
	case state.CurrentMonthIndex >= len(state.MonthlyData):
		state.CurrentMonthIndex = len(state.MonthlyData) - 1
	}
	return state
}

// players keeps the first occurrence of every id.
func players(raw any) []domain.Player {
	all := listOf(raw, player)
	seen := mapset.NewThreadUnsafeSet[int]()
	unique := make([]domain.Player, 0, len(all))
	for _, p := range all {
		if !seen.Add(p.ID) {
			continue
		}
		unique = append(unique, p)
	}
	return unique
}

func player(obj map[string]any) domain.Player {
	return domain.Player{
		ID:   integer(obj["id"]),
		Name: stringOr(obj["name"], unknownName),

		TotalPoints:     integer(obj["totalPoints"]),
		Wins:            integer(obj["wins"]),
		Losses:          integer(obj["losses"]),
		GamesPlayed:     integer(obj["gamesPlayed"]),
		SetsWon:         integer(obj["setsWon"]),
		PointsFromGames: integer(obj["pointsFromGames"]),
		TotalWoWins:     integer(obj["totalWoWins"]),
		TotalWoLosses:   integer(obj["totalWoLosses"]),

		MonthlyPoints:          integer(obj["monthlyPoints"]),
		MonthlyWins:            integer(obj["monthlyWins"]),
		MonthlyLosses:          integer(obj["monthlyLosses"]),
		MonthlyGamesPlayed:     integer(obj["monthlyGamesPlayed"]),
		MonthlySetsWon:         integer(obj["monthlySetsWon"]),
		MonthlyPointsFromGames: integer(obj["monthlyPointsFromGames"]),
		MonthlyWoWins:          integer(obj["monthlyWoWins"]),
		MonthlyWoLosses:        integer(obj["monthlyWoLosses"]),
	}
}

func match(obj map[string]any) domain.Match {
	return domain.Match{
		ID:          stringOr(obj["id"], ""),
		Player1ID:   integer(obj["player1Id"]),
		Player2ID:   integer(obj["player2Id"]),
		WinnerID:    nullableInt(obj["winnerId"]),
		Score:       stringOr(obj["score"], ""),
		IsWO:        boolean(obj["isWO"]),
		IsNotPlayed: boolean(obj["isNotPlayed"]),
	}
}

func group(obj map[string]any) domain.Group {
	return domain.Group{
		ID:        integer(obj["id"]),
		Name:      stringOr(obj["name"], ""),
		PlayerIDs: integers(obj["playerIds"]),
	}
}

func monthlyData(obj map[string]any) domain.MonthlyData {
	return domain.MonthlyData{
		ID:      integer(obj["id"]),
		Name:    stringOr(obj["name"], ""),
		Groups:  listOf(obj["groups"], group),
		Matches: listOf(obj["matches"], match),
	}
}

func bracketMatch(obj map[string]any) domain.BracketMatch {
	return domain.BracketMatch{
		ID:             stringOr(obj["id"], ""),
		Round:          round(obj["round"]),
		MatchIndex:     integer(obj["matchIndex"]),
		Player1ID:      nullableInt(obj["player1Id"]),
		Player2ID:      nullableInt(obj["player2Id"]),
		WinnerID:       nullableInt(obj["winnerId"]),
		Score:          stringOr(obj["score"], ""),
		SourceMatch1ID: nullableString(obj["sourceMatch1Id"]),
		SourceMatch2ID: nullableString(obj["sourceMatch2Id"]),
	}
}

func round(raw any) domain.Round {
	s, _ := raw.(string)
	switch r := domain.Round(s); r {
	case domain.RoundOf16, domain.QuarterFinal, domain.SemiFinal, domain.Final:
		return r
	}
	return domain.RoundOf16
}
