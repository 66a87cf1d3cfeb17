package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/domain/position"
)

// CandidateRepository is a mock for candidate.Repository.
type CandidateRepository struct {
	mock.Mock
}

func (m *CandidateRepository) List(ctx context.Context, opts candidate.ListOptions) ([]candidate.Candidate, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]candidate.Candidate); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CandidateRepository) Get(ctx context.Context, id int) (*candidate.Candidate, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*candidate.Candidate); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CandidateRepository) Update(ctx context.Context, c *candidate.Candidate) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CandidateRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PositionRepository is a mock for position.Repository.
type PositionRepository struct {
	mock.Mock
}

func (m *PositionRepository) List(ctx context.Context) ([]position.Position, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]position.Position); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PositionRepository) Get(ctx context.Context, id int) (*position.Position, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*position.Position); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PositionRepository) Create(ctx context.Context, p *position.Position) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PositionRepository) Update(ctx context.Context, p *position.Position) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PositionRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// InterviewRepository is a mock for interview.Repository.
type InterviewRepository struct {
	mock.Mock
}

func (m *InterviewRepository) List(ctx context.Context, opts interview.ListOptions) ([]interview.Interview, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]interview.Interview); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InterviewRepository) Get(ctx context.Context, id int) (*interview.Interview, error) {
	args := m.Called(ctx, id)
	if iv, ok := args.Get(0).(*interview.Interview); ok {
		return iv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InterviewRepository) Create(ctx context.Context, iv *interview.Interview) error {
	args := m.Called(ctx, iv)
	return args.Error(0)
}

func (m *InterviewRepository) Update(ctx context.Context, iv *interview.Interview) error {
	args := m.Called(ctx, iv)
	return args.Error(0)
}

func (m *InterviewRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
