package league

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/bracket"
	"github.com/goserg/tennisleague/internal/domain"
)

func groupSizes(month domain.MonthlyData) []int {
	sizes := make([]int, 0, len(month.Groups))
	for _, g := range month.Groups {
		sizes = append(sizes, len(g.PlayerIDs))
	}
	return sizes
}

func TestAdvanceSeason_Grouping(t *testing.T) {
	tests := []struct {
		players     int
		wantSizes   []int
		wantMatches int
	}{
		{14, []int{4, 4, 4, 2}, 19},
		{16, []int{4, 4, 4, 4}, 24},
		{5, []int{4, 1}, 6},
		{0, []int{}, 0},
	}
	for _, tt := range tests {
		state := newLeague(t, tt.players)
		month, ok := state.CurrentMonth()
		require.True(t, ok)
		assert.Equal(t, tt.wantSizes, groupSizes(month), tt.players)
		assert.Len(t, month.Matches, tt.wantMatches, tt.players)
	}
}

func TestAdvanceSeason_GroupsFollowStandings(t *testing.T) {
	state := newLeague(t, 8)
	state.Players[7].TotalPoints = 5000
	next, err := AdvanceSeason(state, auth.Admin, march)
	require.NoError(t, err)

	month, _ := next.CurrentMonth()
	assert.Equal(t, []int{8, 1, 2, 3}, month.Groups[0].PlayerIDs)
	assert.Equal(t, []int{4, 5, 6, 7}, month.Groups[1].PlayerIDs)
	assert.Equal(t, "Grupo 2", month.Groups[1].Name)
	assert.Equal(t, "m2-g1-p8-vs-p1", month.Matches[0].ID)
	for _, m := range month.Matches {
		assert.False(t, m.Decided(), m.ID)
		assert.Empty(t, m.Score, m.ID)
	}
}

func TestAdvanceSeason_Counters(t *testing.T) {
	state := newLeague(t, 4)
	state, err := RecordGroupMatch(state, auth.Admin, firstMatch, 1, "6-1 6-1", false)
	require.NoError(t, err)
	before := player(t, state, 1)
	require.Equal(t, 1, before.MonthlyWins)

	next, err := AdvanceSeason(state, auth.Admin, march)
	require.NoError(t, err)
	after := player(t, next, 1)
	assert.Equal(t, before.ResetMonthly(), after)
	assert.Equal(t, 1, after.Wins)
	assert.Zero(t, after.MonthlyPoints)
	assert.Equal(t, 1, player(t, state, 1).MonthlyWins, "input snapshot must not change")

	assert.Len(t, next.MonthlyData, 2)
	assert.Equal(t, 1, next.CurrentMonthIndex)
	assert.Equal(t, 2, next.MonthlyData[1].ID)
	assert.True(t, currentMatchDecided(state.MonthlyData[0], firstMatch))
	assert.True(t, currentMatchDecided(next.MonthlyData[0], firstMatch), "history is kept")
}

func currentMatchDecided(month domain.MonthlyData, id string) bool {
	for _, m := range month.Matches {
		if m.ID == id {
			return m.Decided()
		}
	}
	return false
}

func TestAdvanceSeason_MonthNames(t *testing.T) {
	state := newLeague(t, 4)
	assert.Equal(t, "Março", state.MonthlyData[0].Name)

	next, err := AdvanceSeason(state, auth.Admin, march)
	require.NoError(t, err)
	assert.Equal(t, "Abril", next.MonthlyData[1].Name)

	next, err = AdvanceSeason(next, auth.Admin, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Fevereiro", next.MonthlyData[2].Name)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", MonthName(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 0))
	assert.Equal(t, "Junho", MonthName(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 4))
	assert.Equal(t, "Janeiro", MonthName(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 11))
}

func TestAdvanceSeason_RegeneratesBracket(t *testing.T) {
	state := newLeague(t, 16)
	state = recordBracket(t, state, "R16-0", 2)
	require.True(t, bracket.Started(state.MasterBracket))

	next, err := AdvanceSeason(state, auth.Admin, march)
	require.NoError(t, err)
	require.Len(t, next.MasterBracket, 15)
	assert.False(t, bracket.Started(next.MasterBracket))

	small, err := AdvanceSeason(newLeague(t, 10), auth.Admin, march)
	require.NoError(t, err)
	assert.Empty(t, small.MasterBracket)
}

func TestAdvanceSeason_Forbidden(t *testing.T) {
	state := newLeague(t, 4)
	next, err := AdvanceSeason(state, auth.Guest, march)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	assert.Len(t, next.MonthlyData, 1)
}

func TestAdvanceSeason_AppendsAfterLastMonth(t *testing.T) {
	state := newLeague(t, 4)
	state, err := AdvanceSeason(state, auth.Admin, march)
	require.NoError(t, err)
	state.CurrentMonthIndex = 0

	next, err := AdvanceSeason(state, auth.Admin, march)
	require.NoError(t, err)
	require.Len(t, next.MonthlyData, 3)
	assert.Equal(t, 2, next.CurrentMonthIndex)
	for i, m := range next.MonthlyData {
		assert.Equal(t, i+1, m.ID)
	}
	assert.Equal(t, "Maio", next.MonthlyData[2].Name)
	assert.Equal(t, "m3-g1-p1-vs-p2", next.MonthlyData[2].Matches[0].ID)
}
