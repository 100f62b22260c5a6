package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/tennisleague/internal/auth"
)

func TestRenamePlayer(t *testing.T) {
	state := newLeague(t, 4)
	next, err := RenamePlayer(state, auth.Admin, 3, "  Gustavo Kuerten ")
	require.NoError(t, err)
	assert.Equal(t, "Gustavo Kuerten", player(t, next, 3).Name)
	assert.Equal(t, "P03", player(t, state, 3).Name)

	_, err = RenamePlayer(state, auth.Admin, 3, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = RenamePlayer(state, auth.Guest, 3, "Guga")
	assert.ErrorIs(t, err, auth.ErrForbidden)

	same, err := RenamePlayer(state, auth.Admin, 99, "Nobody")
	require.NoError(t, err)
	assert.Equal(t, snapshot(t, state), snapshot(t, same))
}

func TestAddPlayer(t *testing.T) {
	state := newLeague(t, 4)
	next, p, err := AddPlayer(state, auth.Admin, "Maria Esther")
	require.NoError(t, err)
	assert.Equal(t, 5, p.ID)
	assert.Len(t, next.Players, 5)
	assert.Len(t, state.Players, 4)
	assert.True(t, p.Balanced())

	_, _, err = AddPlayer(state, auth.Admin, "")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, _, err = AddPlayer(state, auth.Guest, "X")
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
