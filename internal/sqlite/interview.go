package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/repository"
)

// InterviewRepository implements interview.Repository for SQLite.
// Timestamps are normalized to UTC on write so that date-range
// predicates on start_time compare correctly.
type InterviewRepository struct {
	db *DB
}

// NewInterviewRepository creates a new InterviewRepository
func NewInterviewRepository(db *DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// List returns interviews in insertion (id) order, filtered by the
// given options. Date bounds are inclusive and compare start_time only.
func (r *InterviewRepository) List(ctx context.Context, opts interview.ListOptions) ([]interview.Interview, error) {
	query := `
		SELECT id, title, candidate_name, candidate_id, start_time, end_time,
		       status, interview_type, location, created_at, updated_at
		FROM interviews
	`
	var clauses []string
	var args []any
	if len(opts.Statuses) > 0 {
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", placeholders(len(opts.Statuses))))
		for _, status := range opts.Statuses {
			args = append(args, string(status))
		}
	}
	if opts.CandidateID != nil {
		clauses = append(clauses, "candidate_id = ?")
		args = append(args, *opts.CandidateID)
	}
	if opts.From != nil {
		clauses = append(clauses, "start_time >= ?")
		args = append(args, opts.From.UTC())
	}
	if opts.To != nil {
		clauses = append(clauses, "start_time <= ?")
		args = append(args, opts.To.UTC())
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
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []interview.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interviews: %w", err)
	}

	for i := range interviews {
		if err := r.loadDetails(ctx, &interviews[i]); err != nil {
			return nil, err
		}
	}
	return interviews, nil
}

// Get retrieves an interview by ID
func (r *InterviewRepository) Get(ctx context.Context, id int) (*interview.Interview, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, candidate_name, candidate_id, start_time, end_time,
		       status, interview_type, location, created_at, updated_at
		FROM interviews
		WHERE id = ?
	`, id)

	iv, err := scanInterview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadDetails(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Create inserts an interview, assigning the next integer ID
// (max existing + 1) and setting it on the passed record.
func (r *InterviewRepository) Create(ctx context.Context, iv *interview.Interview) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM interviews`).Scan(&iv.ID); err != nil {
		return fmt.Errorf("failed to assign interview id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO interviews (id, title, candidate_name, candidate_id, start_time, end_time,
		                        status, interview_type, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, iv.ID, iv.Title, iv.CandidateName, iv.CandidateID, iv.StartTime.UTC(), iv.EndTime.UTC(),
		string(iv.Status), iv.Type, iv.Location, iv.CreatedAt.UTC(), iv.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}

	if err := r.insertDetails(ctx, tx, iv); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites the full interview aggregate (scalars, notes, and
// participants) in one transaction. A participant email collision
// surfaces as repository.ErrDuplicate.
func (r *InterviewRepository) Update(ctx context.Context, iv *interview.Interview) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE interviews
		SET title = ?, candidate_name = ?, candidate_id = ?, start_time = ?, end_time = ?,
		    status = ?, interview_type = ?, location = ?, created_at = ?, updated_at = ?
		WHERE id = ?
	`, iv.Title, iv.CandidateName, iv.CandidateID, iv.StartTime.UTC(), iv.EndTime.UTC(),
		string(iv.Status), iv.Type, iv.Location, iv.CreatedAt.UTC(), iv.UpdatedAt.UTC(), iv.ID)
	if err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	for _, table := range []string{"interview_notes", "interview_participants"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE interview_id = ?", table), iv.ID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := r.insertDetails(ctx, tx, iv); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes an interview along with its notes and participants.
func (r *InterviewRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM interviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
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

func (r *InterviewRepository) insertDetails(ctx context.Context, tx *sql.Tx, iv *interview.Interview) error {
	for i, note := range iv.Notes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO interview_notes (id, interview_id, ord, content, author, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, note.ID, iv.ID, i, note.Content, note.Author, note.Timestamp.UTC()); err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}
	}
	for i, p := range iv.Participants {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO interview_participants (id, interview_id, ord, name, email, role, added_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, iv.ID, i, p.Name, p.Email, p.Role, p.AddedAt.UTC()); err != nil {
			if isUniqueViolation(err) {
				return repository.ErrDuplicate
			}
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}
	return nil
}

func (r *InterviewRepository) loadDetails(ctx context.Context, iv *interview.Interview) error {
	noteRows, err := r.db.QueryContext(ctx, `
		SELECT id, content, author, created_at
		FROM interview_notes WHERE interview_id = ? ORDER BY ord
	`, iv.ID)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var n interview.Note
		if err := noteRows.Scan(&n.ID, &n.Content, &n.Author, &n.Timestamp); err != nil {
			return fmt.Errorf("failed to scan note: %w", err)
		}
		iv.Notes = append(iv.Notes, n)
	}
	if err := noteRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate notes: %w", err)
	}

	partRows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role, added_at
		FROM interview_participants WHERE interview_id = ? ORDER BY ord
	`, iv.ID)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}
	defer partRows.Close()
	for partRows.Next() {
		var p interview.Participant
		if err := partRows.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.AddedAt); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		iv.Participants = append(iv.Participants, p)
	}
	if err := partRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInterview(row rowScanner) (*interview.Interview, error) {
	var iv interview.Interview
	var candidateID sql.NullInt64
	err := row.Scan(
		&iv.ID, &iv.Title, &iv.CandidateName, &candidateID, &iv.StartTime, &iv.EndTime,
		&iv.Status, &iv.Type, &iv.Location, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan interview: %w", err)
	}
	if candidateID.Valid {
		id := int(candidateID.Int64)
		iv.CandidateID = &id
	}
	return &iv, nil
}
