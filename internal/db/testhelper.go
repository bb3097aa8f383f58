package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// OpenTestSQLite opens a migrated SQLite database in t.TempDir() and closes it on cleanup.
func OpenTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "students.sqlite"))
	if err != nil {
		t.Fatalf("open test sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := RunSQLiteMigrations(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return database
}
