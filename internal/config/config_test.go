package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `debug_mode = true

[storage]
state_file = "data/league.json"
sqlite_file = "data/backups.sqlite"

[admin]
password_hash = "$2a$10$abc"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "league.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	cfg, err := New(writeConfig(t, sample))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "data/league.json", cfg.Storage.StateFile)
	assert.Equal(t, "data/backups.sqlite", cfg.Storage.SqliteFile)
	assert.Equal(t, "$2a$10$abc", cfg.Admin.PasswordHash)
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)

	_, err = New(writeConfig(t, "debug_mode = "))
	assert.Error(t, err)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("LEAGUE_STATE_FILE", "/tmp/state.json")
	t.Setenv("LEAGUE_SQLITE_FILE", "/tmp/b.sqlite")
	t.Setenv("LEAGUE_ADMIN_PASSWORD_HASH", "hash")
	t.Setenv("LEAGUE_DEBUG", "false")

	cfg, err := New(writeConfig(t, sample))
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.StateFile)
	assert.Equal(t, "/tmp/b.sqlite", cfg.Storage.SqliteFile)
	assert.Equal(t, "hash", cfg.Admin.PasswordHash)

	t.Setenv("LEAGUE_DEBUG", "maybe")
	_, err = New(writeConfig(t, sample))
	assert.Error(t, err)
}
