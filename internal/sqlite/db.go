package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// placeholders returns n comma-separated SQL parameter markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection. The default data
// source is ":memory:"; the connection pool is pinned to a single
// connection so the in-memory database is shared and foreign keys
// stay enabled across every statement.
func New(dataSourceName string) (*DB, error) {
	if dataSourceName == "" {
		dataSourceName = ":memory:"
	}

	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. The database is process-lifetime
// state: with the default in-memory source everything resets on
// restart, matching the fixture-backed behavior of the product.
func (db *DB) RunMigrations() error {
	migration := `
-- Candidates
CREATE TABLE IF NOT EXISTS candidates (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    position TEXT NOT NULL DEFAULT '',
    stage TEXT NOT NULL CHECK(stage IN ('Applied', 'Screening', 'Interview', 'Offer', 'Hired')),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_stage ON candidates(stage);
CREATE INDEX IF NOT EXISTS idx_candidates_position ON candidates(position);

CREATE TABLE IF NOT EXISTS candidate_skills (
    candidate_id INTEGER NOT NULL,
    ord INTEGER NOT NULL,
    skill TEXT NOT NULL,
    PRIMARY KEY (candidate_id, ord),
    FOREIGN KEY (candidate_id) REFERENCES candidates(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS candidate_notes (
    id TEXT PRIMARY KEY,
    candidate_id INTEGER NOT NULL,
    ord INTEGER NOT NULL,
    content TEXT NOT NULL,
    note_type TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (candidate_id) REFERENCES candidates(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_candidate_notes ON candidate_notes(candidate_id, ord);

-- Ad-hoc interviews booked inline on a candidate. Deliberately
-- separate from the interviews table; the two are not synchronized.
CREATE TABLE IF NOT EXISTS candidate_interviews (
    id TEXT PRIMARY KEY,
    candidate_id INTEGER NOT NULL,
    ord INTEGER NOT NULL,
    title TEXT NOT NULL,
    start_time TIMESTAMP NOT NULL,
    end_time TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (candidate_id) REFERENCES candidates(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_candidate_interviews ON candidate_interviews(candidate_id, ord);

-- Positions
CREATE TABLE IF NOT EXISTS positions (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    department TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL CHECK(status IN ('Active', 'Closed')),
    candidate_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

-- Interviews. candidate_id is informational only: it may reference a
-- deleted candidate and carries no foreign key.
CREATE TABLE IF NOT EXISTS interviews (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    candidate_name TEXT NOT NULL,
    candidate_id INTEGER,
    start_time TIMESTAMP NOT NULL,
    end_time TIMESTAMP NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('scheduled', 'completed', 'cancelled', 'rescheduled')),
    interview_type TEXT NOT NULL,
    location TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interviews_status ON interviews(status);
CREATE INDEX IF NOT EXISTS idx_interviews_start ON interviews(start_time);
CREATE INDEX IF NOT EXISTS idx_interviews_candidate ON interviews(candidate_id);

CREATE TABLE IF NOT EXISTS interview_notes (
    id TEXT PRIMARY KEY,
    interview_id INTEGER NOT NULL,
    ord INTEGER NOT NULL,
    content TEXT NOT NULL,
    author TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (interview_id) REFERENCES interviews(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_interview_notes ON interview_notes(interview_id, ord);

CREATE TABLE IF NOT EXISTS interview_participants (
    id TEXT PRIMARY KEY,
    interview_id INTEGER NOT NULL,
    ord INTEGER NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    role TEXT NOT NULL,
    added_at TIMESTAMP NOT NULL,
    UNIQUE(interview_id, email),
    FOREIGN KEY (interview_id) REFERENCES interviews(id) ON DELETE CASCADE
);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
