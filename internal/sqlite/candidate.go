package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/repository"
)

// CandidateRepository implements candidate.Repository for SQLite.
// All timestamps are normalized to UTC on write so that range
// predicates compare correctly.
type CandidateRepository struct {
	db *DB
}

// NewCandidateRepository creates a new CandidateRepository
func NewCandidateRepository(db *DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// List returns candidates in insertion (id) order, filtered by the
// given options. Empty option slices match everything.
func (r *CandidateRepository) List(ctx context.Context, opts candidate.ListOptions) ([]candidate.Candidate, error) {
	query := `
		SELECT id, name, email, phone, position, stage, created_at, updated_at
		FROM candidates
	`
	var clauses []string
	var args []any
	if len(opts.Stages) > 0 {
		clauses = append(clauses, fmt.Sprintf("stage IN (%s)", placeholders(len(opts.Stages))))
		for _, stage := range opts.Stages {
			args = append(args, string(stage))
		}
	}
	if len(opts.Positions) > 0 {
		clauses = append(clauses, fmt.Sprintf("position IN (%s)", placeholders(len(opts.Positions))))
		for _, pos := range opts.Positions {
			args = append(args, pos)
		}
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate.Candidate
	for rows.Next() {
		var c candidate.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.Stage, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	for i := range candidates {
		if err := r.loadDetails(ctx, &candidates[i]); err != nil {
			return nil, err
		}
	}
	return candidates, nil
}

// Get retrieves a candidate by ID
func (r *CandidateRepository) Get(ctx context.Context, id int) (*candidate.Candidate, error) {
	query := `
		SELECT id, name, email, phone, position, stage, created_at, updated_at
		FROM candidates
		WHERE id = ?
	`
	var c candidate.Candidate
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.Stage, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if err := r.loadDetails(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a candidate, assigning the next integer ID
// (max existing + 1) and setting it on the passed record.
func (r *CandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM candidates`).Scan(&c.ID); err != nil {
		return fmt.Errorf("failed to assign candidate id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO candidates (id, name, email, phone, position, stage, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, c.Phone, c.Position, string(c.Stage), c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	if err := r.insertDetails(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites the full candidate aggregate (scalars, skills,
// notes, and inline interviews) in one transaction.
func (r *CandidateRepository) Update(ctx context.Context, c *candidate.Candidate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE candidates
		SET name = ?, email = ?, phone = ?, position = ?, stage = ?, created_at = ?, updated_at = ?
		WHERE id = ?
	`, c.Name, c.Email, c.Phone, c.Position, string(c.Stage), c.CreatedAt.UTC(), c.UpdatedAt.UTC(), c.ID)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	for _, table := range []string{"candidate_skills", "candidate_notes", "candidate_interviews"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE candidate_id = ?", table), c.ID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := r.insertDetails(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a candidate. Skills, notes, and inline interviews go
// with it; records in the interviews table referencing the candidate
// do not.
func (r *CandidateRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) insertDetails(ctx context.Context, tx *sql.Tx, c *candidate.Candidate) error {
	for i, skill := range c.Skills {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO candidate_skills (candidate_id, ord, skill) VALUES (?, ?, ?)
		`, c.ID, i, skill); err != nil {
			return fmt.Errorf("failed to insert skill: %w", err)
		}
	}
	for i, note := range c.Notes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO candidate_notes (id, candidate_id, ord, content, note_type, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, note.ID, c.ID, i, note.Content, note.Type, note.Timestamp.UTC()); err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}
	}
	for i, iv := range c.Interviews {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO candidate_interviews (id, candidate_id, ord, title, start_time, end_time, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, iv.ID, c.ID, i, iv.Title, iv.Start.UTC(), iv.End.UTC(), iv.CreatedAt.UTC()); err != nil {
			return fmt.Errorf("failed to insert scheduled interview: %w", err)
		}
	}
	return nil
}

func (r *CandidateRepository) loadDetails(ctx context.Context, c *candidate.Candidate) error {
	skillRows, err := r.db.QueryContext(ctx, `
		SELECT skill FROM candidate_skills WHERE candidate_id = ? ORDER BY ord
	`, c.ID)
	if err != nil {
		return fmt.Errorf("failed to load skills: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var skill string
		if err := skillRows.Scan(&skill); err != nil {
			return fmt.Errorf("failed to scan skill: %w", err)
		}
		c.Skills = append(c.Skills, skill)
	}
	if err := skillRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate skills: %w", err)
	}

	noteRows, err := r.db.QueryContext(ctx, `
		SELECT id, content, note_type, created_at
		FROM candidate_notes WHERE candidate_id = ? ORDER BY ord
	`, c.ID)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var n candidate.Note
		if err := noteRows.Scan(&n.ID, &n.Content, &n.Type, &n.Timestamp); err != nil {
			return fmt.Errorf("failed to scan note: %w", err)
		}
		c.Notes = append(c.Notes, n)
	}
	if err := noteRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate notes: %w", err)
	}

	ivRows, err := r.db.QueryContext(ctx, `
		SELECT id, title, start_time, end_time, created_at
		FROM candidate_interviews WHERE candidate_id = ? ORDER BY ord
	`, c.ID)
	if err != nil {
		return fmt.Errorf("failed to load scheduled interviews: %w", err)
	}
	defer ivRows.Close()
	for ivRows.Next() {
		iv := candidate.ScheduledInterview{CandidateID: c.ID}
		if err := ivRows.Scan(&iv.ID, &iv.Title, &iv.Start, &iv.End, &iv.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan scheduled interview: %w", err)
		}
		c.Interviews = append(c.Interviews, iv)
	}
	if err := ivRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate scheduled interviews: %w", err)
	}
	return nil
}
