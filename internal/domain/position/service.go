package position

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/recruitflow/recruitflow/internal/repository"
)

// Service handles position operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new position service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines position creation inputs.
type CreateRequest struct {
	Title       string
	Department  string
	Description string
	Status      Status
}

// UpdateRequest describes a partial position update.
type UpdateRequest struct {
	Title          *string
	Department     *string
	Description    *string
	Status         *Status
	CandidateCount *int
}

// GetAll returns all positions in insertion order.
func (s *Service) GetAll(ctx context.Context) ([]Position, error) {
	return s.repo.List(ctx)
}

// Get fetches a position by ID.
func (s *Service) Get(ctx context.Context, id int) (*Position, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("getting position: %w", err)
	}
	return p, nil
}

// Create adds a new position. New positions start with a candidate
// count of zero.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Position, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	p := &Position{
		Title:          req.Title,
		Department:     req.Department,
		Description:    req.Description,
		Status:         status,
		CandidateCount: 0,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating position: %w", err)
	}
	return p, nil
}

// Update merges partial fields onto an existing position, preserving
// its ID.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Position, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Department != nil {
		updated.Department = *req.Department
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		updated.Status = *req.Status
	}
	if req.CandidateCount != nil {
		updated.CandidateCount = *req.CandidateCount
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("updating position: %w", err)
	}
	return &updated, nil
}

// Delete removes a position and returns the removed record.
func (s *Service) Delete(ctx context.Context, id int) (*Position, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("deleting position: %w", err)
	}
	return p, nil
}
