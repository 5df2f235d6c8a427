package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupMigrationTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := setupMigrationTestDB(t)

	err := RunMigrations(db)
	require.NoError(t, err)

	// Both tables should exist
	for _, table := range []string{"users", "todos", "migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupMigrationTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	// Each migration should be recorded exactly once
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestRunMigrations_EmailUnique(t *testing.T) {
	db := setupMigrationTestDB(t)
	require.NoError(t, RunMigrations(db))

	_, err := db.Exec("INSERT INTO users (email, password_hash) VALUES (?, ?)", "a@x.com", "hash")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO users (email, password_hash) VALUES (?, ?)", "a@x.com", "hash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		filename string
		expected int
	}{
		{"000001_create_users.up.sql", 1},
		{"000002_create_todos.up.sql", 2},
		{"no_version.up.sql", 0},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVersion(tt.filename))
		})
	}
}
