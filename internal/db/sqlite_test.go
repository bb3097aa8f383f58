package db

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN("/tmp/students.sqlite")

	assert.True(t, strings.HasPrefix(dsn, "/tmp/students.sqlite?"))
	assert.Contains(t, dsn, "_journal_mode=WAL")
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_txlock=immediate")
}

func TestOpenSQLite_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "students.sqlite")

	database, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.FileExists(t, path)
	assert.Equal(t, 1, database.Stats().MaxOpenConnections)
}

func TestRunSQLiteMigrations_CreatesStudentsTable(t *testing.T) {
	database := OpenTestSQLite(t)

	var name string
	err := database.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'students'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "students", name)

	// running again is a no-op
	require.NoError(t, RunSQLiteMigrations(database))
}

func TestEmbedMigrations_ContainsBothEngines(t *testing.T) {
	for _, dir := range []string{PostgresMigrationsDir, SQLiteMigrationsDir} {
		entries, err := EmbedMigrations.ReadDir(dir)
		require.NoError(t, err, dir)
		assert.NotEmpty(t, entries, dir)
	}
}
