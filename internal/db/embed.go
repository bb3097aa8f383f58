package db

import "embed"

// EmbedMigrations contains the SQL migrations for every engine, one directory per engine.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var EmbedMigrations embed.FS

// Migration directories inside EmbedMigrations
const (
	PostgresMigrationsDir = "migrations/postgres"
	SQLiteMigrationsDir   = "migrations/sqlite"
)
