package embedded

import "embed"

//go:embed "migrations"
var BackupMigrations embed.FS

// Seed is the league the application starts from when no state file exists yet.
//
//go:embed "seed/initial.json"
var Seed []byte
