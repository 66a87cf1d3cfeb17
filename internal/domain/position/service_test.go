package position_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/internal/domain/position"
	"github.com/recruitflow/recruitflow/internal/repository"
	"github.com/recruitflow/recruitflow/internal/repository/mocks"
)

func TestPositionService_CreateDefaultsStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.PositionRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := position.NewService(repo, nil)
	p, err := svc.Create(ctx, position.CreateRequest{
		Title:      "Backend Engineer",
		Department: "Engineering",
	})
	require.NoError(t, err)
	require.Equal(t, position.StatusActive, p.Status)
	require.Equal(t, 0, p.CandidateCount)
	require.False(t, p.CreatedAt.IsZero())
}

func TestPositionService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.PositionRepository{}
	svc := position.NewService(repo, nil)

	_, err := svc.Create(ctx, position.CreateRequest{Title: ""})
	require.ErrorIs(t, err, position.ErrInvalidInput)

	_, err = svc.Create(ctx, position.CreateRequest{Title: "Backend Engineer", Status: "Paused"})
	require.ErrorIs(t, err, position.ErrInvalidStatus)
}

func TestPositionService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.PositionRepository{}
	repo.On("Get", ctx, 9).Return((*position.Position)(nil), repository.ErrNotFound)

	svc := position.NewService(repo, nil)
	_, err := svc.Get(ctx, 9)
	require.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestPositionService_UpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()

	existing := &position.Position{
		ID:         1,
		Title:      "Backend Engineer",
		Department: "Engineering",
		Status:     position.StatusActive,
	}

	repo := &mocks.PositionRepository{}
	repo.On("Get", ctx, 1).Return(existing, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := position.NewService(repo, nil)
	closed := position.StatusClosed
	count := 12
	updated, err := svc.Update(ctx, 1, position.UpdateRequest{
		Status:         &closed,
		CandidateCount: &count,
	})
	require.NoError(t, err)
	require.Equal(t, position.StatusClosed, updated.Status)
	require.Equal(t, 12, updated.CandidateCount)
	require.Equal(t, "Backend Engineer", updated.Title)
}

func TestPositionService_DeleteReturnsRemoved(t *testing.T) {
	ctx := context.Background()

	existing := &position.Position{ID: 2, Title: "Data Scientist"}

	repo := &mocks.PositionRepository{}
	repo.On("Get", ctx, 2).Return(existing, nil)
	repo.On("Delete", ctx, 2).Return(nil)

	svc := position.NewService(repo, nil)
	removed, err := svc.Delete(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Data Scientist", removed.Title)
}
