package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recruitflow/recruitflow/internal/domain/position"
	"github.com/recruitflow/recruitflow/internal/repository"
)

// PositionRepository implements position.Repository for SQLite
type PositionRepository struct {
	db *DB
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// List returns all positions in insertion (id) order.
func (r *PositionRepository) List(ctx context.Context) ([]position.Position, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, department, description, status, candidate_count, created_at
		FROM positions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Title, &p.Department, &p.Description, &p.Status, &p.CandidateCount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}
	return positions, nil
}

// Get retrieves a position by ID
func (r *PositionRepository) Get(ctx context.Context, id int) (*position.Position, error) {
	var p position.Position
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, department, description, status, candidate_count, created_at
		FROM positions
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &p.Department, &p.Description, &p.Status, &p.CandidateCount, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return &p, nil
}

// Create inserts a position, assigning the next integer ID
// (max existing + 1) and setting it on the passed record.
func (r *PositionRepository) Create(ctx context.Context, p *position.Position) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM positions`).Scan(&p.ID); err != nil {
		return fmt.Errorf("failed to assign position id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO positions (id, title, department, description, status, candidate_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, p.Department, p.Description, string(p.Status), p.CandidateCount, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}
	return tx.Commit()
}

// Update rewrites a position's fields, preserving its ID.
func (r *PositionRepository) Update(ctx context.Context, p *position.Position) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE positions
		SET title = ?, department = ?, description = ?, status = ?, candidate_count = ?, created_at = ?
		WHERE id = ?
	`, p.Title, p.Department, p.Description, string(p.Status), p.CandidateCount, p.CreatedAt.UTC(), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a position.
func (r *PositionRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
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
