package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/bracket"
	"github.com/goserg/tennisleague/internal/domain"
)

func bracketMatch(t *testing.T, state domain.AppState, id string) domain.BracketMatch {
	t.Helper()
	b := MasterBracket(state)
	i := bracket.Find(b, id)
	require.NotEqual(t, -1, i, id)
	return b[i]
}

func recordBracket(t *testing.T, state domain.AppState, id string, slot int) domain.AppState {
	t.Helper()
	m := bracketMatch(t, state, id)
	winner := m.Player1ID
	if slot == 2 {
		winner = m.Player2ID
	}
	require.NotNil(t, winner, id)
	next, err := RecordBracketMatch(state, auth.Admin, id, *winner, "6-4 6-4")
	require.NoError(t, err)
	return next
}

func TestMasterBracket_LazyGeneration(t *testing.T) {
	state := newLeague(t, 16)
	state.MasterBracket = nil
	b := MasterBracket(state)
	require.Len(t, b, 15)
	assert.Equal(t, domain.ID(1), b[0].Player1ID)
	assert.Equal(t, domain.ID(16), b[0].Player2ID)

	assert.Empty(t, MasterBracket(newLeague(t, 15)))
}

func TestRecordBracketMatch_Propagation(t *testing.T) {
	edges := []struct {
		source string
		target string
		slot   int
	}{
		{"R16-0", "QF-0", 1}, {"R16-1", "QF-0", 2},
		{"R16-2", "QF-1", 1}, {"R16-3", "QF-1", 2},
		{"R16-4", "QF-2", 1}, {"R16-5", "QF-2", 2},
		{"R16-6", "QF-3", 1}, {"R16-7", "QF-3", 2},
		{"QF-0", "SF-0", 1}, {"QF-1", "SF-0", 2},
		{"QF-2", "SF-1", 1}, {"QF-3", "SF-1", 2},
		{"SF-0", "F-0", 1}, {"SF-1", "F-0", 2},
	}
	state := newLeague(t, 20)
	for _, e := range edges {
		state = recordBracket(t, state, e.source, 2)
		source := bracketMatch(t, state, e.source)
		target := bracketMatch(t, state, e.target)
		require.NotNil(t, source.WinnerID, e.source)
		got := target.Player1ID
		if e.slot == 2 {
			got = target.Player2ID
		}
		assert.Equal(t, source.WinnerID, got, "%s -> %s", e.source, e.target)
	}
	state = recordBracket(t, state, "F-0", 1)
	final := bracketMatch(t, state, "F-0")
	assert.Equal(t, final.Player1ID, final.WinnerID)
	assert.Len(t, state.MasterBracket, 15)
}

func TestRecordBracketMatch_R16ToQF(t *testing.T) {
	state := newLeague(t, 16)
	r16 := bracketMatch(t, state, "R16-2")
	next := recordBracket(t, state, "R16-2", 1)
	assert.Equal(t, r16.Player1ID, bracketMatch(t, next, "QF-1").Player1ID)
	assert.Nil(t, bracketMatch(t, next, "QF-1").Player2ID)
	assert.Empty(t, state.MasterBracket[0].Score, "input snapshot must not change")
}

func TestRecordBracketMatch_Refusals(t *testing.T) {
	state := newLeague(t, 16)
	before := snapshot(t, state)

	_, err := RecordBracketMatch(state, auth.Guest, "R16-0", 1, "6-0")
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = RecordBracketMatch(state, auth.Admin, "R16-0", 2, "6-0")
	assert.ErrorIs(t, err, ErrWrongWinner)

	_, err = RecordBracketMatch(state, auth.Admin, "QF-0", 1, "6-0")
	assert.ErrorIs(t, err, ErrMatchNotReady)

	next, err := RecordBracketMatch(state, auth.Admin, "R16-42", 1, "6-0")
	require.NoError(t, err)
	assert.Equal(t, before, snapshot(t, next))

	small := newLeague(t, 12)
	next, err = RecordBracketMatch(small, auth.Admin, "R16-0", 1, "6-0")
	require.NoError(t, err)
	assert.Equal(t, snapshot(t, small), snapshot(t, next))
}

func TestRecordBracketMatch_ChangeWinnerLocked(t *testing.T) {
	state := newLeague(t, 16)
	state = recordBracket(t, state, "R16-2", 1)
	state = recordBracket(t, state, "R16-3", 1)
	state = recordBracket(t, state, "QF-1", 1)

	r16 := bracketMatch(t, state, "R16-2")
	_, err := RecordBracketMatch(state, auth.Admin, "R16-2", *r16.Player2ID, "6-0")
	assert.ErrorIs(t, err, ErrBracketLocked)

	same, err := RecordBracketMatch(state, auth.Admin, "R16-2", *r16.Player1ID, "7-5 7-5")
	require.NoError(t, err)
	assert.Equal(t, "7-5 7-5", bracketMatch(t, same, "R16-2").Score)
}

func TestResetBracketMatch(t *testing.T) {
	state := newLeague(t, 16)
	state = recordBracket(t, state, "R16-2", 1)
	state = recordBracket(t, state, "R16-3", 2)

	reset, err := ResetBracketMatch(state, auth.Admin, "R16-2")
	require.NoError(t, err)
	r16 := bracketMatch(t, reset, "R16-2")
	assert.Nil(t, r16.WinnerID)
	assert.Empty(t, r16.Score)
	qf := bracketMatch(t, reset, "QF-1")
	assert.Nil(t, qf.Player1ID)
	assert.Equal(t, bracketMatch(t, state, "R16-3").Player2ID, qf.Player2ID)

	untouched, err := ResetBracketMatch(reset, auth.Admin, "R16-2")
	require.NoError(t, err)
	assert.Equal(t, snapshot(t, reset), snapshot(t, untouched))
}

func TestResetBracketMatch_LockedByDownstream(t *testing.T) {
	state := newLeague(t, 16)
	state = recordBracket(t, state, "R16-2", 1)
	state = recordBracket(t, state, "R16-3", 1)
	state = recordBracket(t, state, "QF-1", 2)
	before := snapshot(t, state)

	for _, id := range []string{"R16-2", "R16-3"} {
		next, err := ResetBracketMatch(state, auth.Admin, id)
		assert.ErrorIs(t, err, ErrBracketLocked, id)
		assert.Equal(t, before, snapshot(t, next), id)
	}

	_, err := ResetBracketMatch(state, auth.Guest, "QF-1")
	assert.ErrorIs(t, err, auth.ErrForbidden)

	next, err := ResetBracketMatch(state, auth.Admin, "QF-1")
	require.NoError(t, err)
	assert.Nil(t, bracketMatch(t, next, "SF-0").Player2ID)
	next, err = ResetBracketMatch(next, auth.Admin, "R16-2")
	require.NoError(t, err)
	assert.Nil(t, bracketMatch(t, next, "QF-1").Player1ID)
}

func TestResetBracketMatch_FinalHasNoDependent(t *testing.T) {
	state := newLeague(t, 16)
	for _, id := range []string{"R16-0", "R16-1", "R16-2", "R16-3", "QF-0", "QF-1"} {
		state = recordBracket(t, state, id, 1)
	}
	for _, id := range []string{"R16-4", "R16-5", "R16-6", "R16-7", "QF-2", "QF-3", "SF-0", "SF-1", "F-0"} {
		state = recordBracket(t, state, id, 1)
	}
	next, err := ResetBracketMatch(state, auth.Admin, "F-0")
	require.NoError(t, err)
	assert.Nil(t, bracketMatch(t, next, "F-0").WinnerID)
	assert.NotNil(t, bracketMatch(t, next, "F-0").Player1ID)
}
