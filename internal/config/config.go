package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "configs/league.toml"

type Storage struct {
	StateFile  string `toml:"state_file"`
	SqliteFile string `toml:"sqlite_file"`
}

type Admin struct {
	PasswordHash string `toml:"password_hash"`
}

type Config struct {
	Debug   bool `toml:"debug_mode"`
	Storage Storage
	Admin   Admin
}

func defaults() Config {
	return Config{
		Storage: Storage{
			StateFile:  "league.json",
			SqliteFile: "backups.sqlite",
		},
	}
}

// New reads the TOML file at path and applies environment overrides on top. A
// missing file leaves the defaults in place.
func New(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	if v := os.Getenv("LEAGUE_STATE_FILE"); v != "" {
		cfg.Storage.StateFile = v
	}
	if v := os.Getenv("LEAGUE_SQLITE_FILE"); v != "" {
		cfg.Storage.SqliteFile = v
	}
	if v := os.Getenv("LEAGUE_ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Admin.PasswordHash = v
	}
	if v := os.Getenv("LEAGUE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
