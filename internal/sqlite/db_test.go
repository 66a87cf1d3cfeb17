package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully.
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"candidates",
		"candidate_skills",
		"candidate_notes",
		"candidate_interviews",
		"positions",
		"interviews",
		"interview_notes",
		"interview_participants",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled.
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestStageConstraint verifies the candidates stage CHECK constraint.
func TestStageConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(
		`INSERT INTO candidates (id, name, email, phone, position, stage, created_at, updated_at)
		 VALUES (1, 'Test', '', '', '', 'Rejected', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.Error(t, err, "should fail with invalid stage")
}

// TestStatusConstraint verifies the interviews status CHECK constraint.
func TestStatusConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(
		`INSERT INTO interviews (id, title, candidate_name, start_time, end_time, status, interview_type, location, created_at, updated_at)
		 VALUES (1, 'Test', 'X', '2026-01-01T10:00:00Z', '2026-01-01T11:00:00Z', 'pending', 'technical', 'Virtual', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.Error(t, err, "should fail with invalid status")
}
