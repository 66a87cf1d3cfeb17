package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/internal/domain/position"
	"github.com/recruitflow/recruitflow/internal/repository"
)

func testPosition(title string) *position.Position {
	return &position.Position{
		Title:      title,
		Department: "Engineering",
		Status:     position.StatusActive,
		CreatedAt:  time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPositionRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPositionRepository(db)
	ctx := context.Background()

	p := testPosition("Backend Engineer")
	p.Description = "Go services"
	require.NoError(t, repo.Create(ctx, p))
	require.Equal(t, 1, p.ID)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Backend Engineer", got.Title)
	require.Equal(t, "Go services", got.Description)
	require.Equal(t, position.StatusActive, got.Status)
	require.Equal(t, 0, got.CandidateCount)
}

func TestPositionRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPositionRepository(db)
	ctx := context.Background()

	p := testPosition("Backend Engineer")
	require.NoError(t, repo.Create(ctx, p))

	p.Status = position.StatusClosed
	p.CandidateCount = 7
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, position.StatusClosed, got.Status)
	require.Equal(t, 7, got.CandidateCount)
}

func TestPositionRepository_NotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPositionRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, 5)
	require.ErrorIs(t, err, repository.ErrNotFound)

	ghost := testPosition("Ghost")
	ghost.ID = 5
	require.ErrorIs(t, repo.Update(ctx, ghost), repository.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, 5), repository.ErrNotFound)
}

func TestPositionRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPositionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testPosition("Backend Engineer")))
	require.NoError(t, repo.Create(ctx, testPosition("Product Designer")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Backend Engineer", all[0].Title)
	require.Equal(t, "Product Designer", all[1].Title)
}
