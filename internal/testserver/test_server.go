package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/internal/api"
	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/dashboard"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/domain/position"
	"github.com/recruitflow/recruitflow/internal/fixtures"
	"github.com/recruitflow/recruitflow/internal/sqlite"
	"github.com/recruitflow/recruitflow/internal/transport"
)

// TestServer wires an in-memory database, the domain services, and the
// HTTP transport behind an httptest server.
type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Token  string
}

// Options control test server construction.
type Options struct {
	// Token enables bearer auth on the HTTP API when non-empty.
	Token string
	// SeedFixtures loads the bundled sample data.
	SeedFixtures bool
}

// New builds a fully wired server backed by a fresh in-memory database.
func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	candidateRepo := sqlite.NewCandidateRepository(db)
	positionRepo := sqlite.NewPositionRepository(db)
	interviewRepo := sqlite.NewInterviewRepository(db)

	if opts.SeedFixtures {
		stores := fixtures.Stores{
			Candidates: candidateRepo,
			Positions:  positionRepo,
			Interviews: interviewRepo,
		}
		require.NoError(t, fixtures.Seed(context.Background(), stores, nil))
	}

	candidateSvc := candidate.NewService(candidateRepo, nil)
	positionSvc := position.NewService(positionRepo, nil)
	interviewSvc := interview.NewService(interviewRepo, nil)
	dashboardSvc := dashboard.NewService(candidateRepo, positionRepo, nil)

	handler := api.NewHandler(candidateSvc, positionSvc, interviewSvc, dashboardSvc)

	server := httptest.NewServer(transport.NewServer(handler, nil, opts.Token, nil))

	ts := &TestServer{
		Server: server,
		DB:     db,
		Token:  opts.Token,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
