package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/repository"
)

func testCandidate(name string) *candidate.Candidate {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return &candidate.Candidate{
		Name:      name,
		Email:     "test@example.com",
		Phone:     "+1 555 0100",
		Position:  "Backend Engineer",
		Stage:     candidate.StageApplied,
		Skills:    []string{"Go", "SQL"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCandidateRepository_CreateAssignsSequentialIDs(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	first := testCandidate("Ada Okafor")
	require.NoError(t, repo.Create(ctx, first))
	require.Equal(t, 1, first.ID)

	second := testCandidate("Priya Nair")
	require.NoError(t, repo.Create(ctx, second))
	require.Equal(t, 2, second.ID)

	// Deleting the highest ID frees it for reuse.
	require.NoError(t, repo.Delete(ctx, 2))
	third := testCandidate("Marcus Webb")
	require.NoError(t, repo.Create(ctx, third))
	require.Equal(t, 2, third.ID)
}

func TestCandidateRepository_GetRoundtrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	c := testCandidate("Ada Okafor")
	c.Notes = []candidate.Note{
		{ID: "n-1", Content: "strong referral", Type: "general", Timestamp: c.CreatedAt},
	}
	c.Interviews = []candidate.ScheduledInterview{
		{ID: "si-1", Title: "Tech screen", Start: c.CreatedAt, End: c.CreatedAt.Add(time.Hour), CreatedAt: c.CreatedAt},
	}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.Name, got.Name)
	require.Equal(t, c.Stage, got.Stage)
	require.Equal(t, []string{"Go", "SQL"}, got.Skills)
	require.Len(t, got.Notes, 1)
	require.Equal(t, "n-1", got.Notes[0].ID)
	require.Len(t, got.Interviews, 1)
	require.Equal(t, c.ID, got.Interviews[0].CandidateID)
	require.True(t, got.CreatedAt.Equal(c.CreatedAt))
}

func TestCandidateRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCandidateRepository(db)

	_, err := repo.Get(context.Background(), 99)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCandidateRepository_UpdateRewritesAggregate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	c := testCandidate("Ada Okafor")
	require.NoError(t, repo.Create(ctx, c))

	c.Stage = candidate.StageScreening
	c.Skills = []string{"Go"}
	c.Notes = []candidate.Note{
		{ID: "n-1", Content: "screen passed", Type: "feedback", Timestamp: c.CreatedAt},
	}
	c.UpdatedAt = c.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, candidate.StageScreening, got.Stage)
	require.Equal(t, []string{"Go"}, got.Skills)
	require.Len(t, got.Notes, 1)
	require.Equal(t, "feedback", got.Notes[0].Type)
}

func TestCandidateRepository_UpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCandidateRepository(db)

	c := testCandidate("Ghost")
	c.ID = 42
	err := repo.Update(context.Background(), c)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCandidateRepository_DeleteCascadesDetails(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	c := testCandidate("Ada Okafor")
	c.Notes = []candidate.Note{
		{ID: "n-1", Content: "note", Type: "general", Timestamp: c.CreatedAt},
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.Get(ctx, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM candidate_notes`).Scan(&count))
	require.Equal(t, 0, count)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM candidate_skills`).Scan(&count))
	require.Equal(t, 0, count)

	require.ErrorIs(t, repo.Delete(ctx, c.ID), repository.ErrNotFound)
}

func TestCandidateRepository_ListFilters(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	a := testCandidate("Ada Okafor")
	a.Stage = candidate.StageInterview
	require.NoError(t, repo.Create(ctx, a))

	b := testCandidate("Priya Nair")
	b.Position = "Product Designer"
	b.Stage = candidate.StageInterview
	require.NoError(t, repo.Create(ctx, b))

	c := testCandidate("Marcus Webb")
	c.Stage = candidate.StageHired
	require.NoError(t, repo.Create(ctx, c))

	byStage, err := repo.List(ctx, candidate.ListOptions{Stages: []candidate.Stage{candidate.StageInterview}})
	require.NoError(t, err)
	require.Len(t, byStage, 2)

	byBoth, err := repo.List(ctx, candidate.ListOptions{
		Stages:    []candidate.Stage{candidate.StageInterview},
		Positions: []string{"Product Designer"},
	})
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	require.Equal(t, "Priya Nair", byBoth[0].Name)

	all, err := repo.List(ctx, candidate.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Insertion order.
	require.Equal(t, 1, all[0].ID)
	require.Equal(t, 3, all[2].ID)
}
