package db

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// RunSQLiteMigrations applies pending goose migrations to a SQLite database.
func RunSQLiteMigrations(db *sql.DB) error {
	goose.SetBaseFS(EmbedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, SQLiteMigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
