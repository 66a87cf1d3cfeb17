package dashboard

import (
	"context"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/position"
)

// CandidateSource provides candidate reads for derivations.
type CandidateSource interface {
	List(ctx context.Context, opts candidate.ListOptions) ([]candidate.Candidate, error)
}

// PositionSource provides position reads for derivations.
type PositionSource interface {
	List(ctx context.Context) ([]position.Position, error)
}
