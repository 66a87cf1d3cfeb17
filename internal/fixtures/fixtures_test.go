package fixtures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/fixtures"
	"github.com/recruitflow/recruitflow/internal/sqlite"
)

func newStores(t *testing.T) fixtures.Stores {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	return fixtures.Stores{
		Candidates: sqlite.NewCandidateRepository(db),
		Positions:  sqlite.NewPositionRepository(db),
		Interviews: sqlite.NewInterviewRepository(db),
	}
}

func TestSeedLoadsAllFixtures(t *testing.T) {
	ctx := context.Background()
	stores := newStores(t)

	require.NoError(t, fixtures.Seed(ctx, stores, nil))

	candidates, err := stores.Candidates.List(ctx, candidate.ListOptions{})
	require.NoError(t, err)
	require.Len(t, candidates, 8)
	require.Equal(t, 1, candidates[0].ID)

	positions, err := stores.Positions.List(ctx)
	require.NoError(t, err)
	require.Len(t, positions, 4)

	interviews, err := stores.Interviews.List(ctx, interview.ListOptions{})
	require.NoError(t, err)
	require.Len(t, interviews, 5)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	stores := newStores(t)

	require.NoError(t, fixtures.Seed(ctx, stores, nil))
	require.NoError(t, fixtures.Seed(ctx, stores, nil))

	candidates, err := stores.Candidates.List(ctx, candidate.ListOptions{})
	require.NoError(t, err)
	require.Len(t, candidates, 8)
}

func TestSeedCoversEveryStage(t *testing.T) {
	ctx := context.Background()
	stores := newStores(t)

	require.NoError(t, fixtures.Seed(ctx, stores, nil))

	candidates, err := stores.Candidates.List(ctx, candidate.ListOptions{})
	require.NoError(t, err)

	seen := make(map[candidate.Stage]bool)
	for _, c := range candidates {
		seen[c.Stage] = true
	}
	for _, stage := range candidate.Stages() {
		require.True(t, seen[stage], "no fixture candidate in stage %s", stage)
	}
}
