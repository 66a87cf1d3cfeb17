// Package fixtures seeds the stores from the bundled JSON data files.
// The fixtures stand in for a real backend: they are loaded once at
// process start and all subsequent state lives in the stores.
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/domain/position"
)

//go:embed candidates.json positions.json interviews.json
var dataFS embed.FS

// Stores collects the repositories the seeder writes to.
type Stores struct {
	Candidates candidate.Repository
	Positions  position.Repository
	Interviews interview.Repository
}

// Seed loads the bundled fixtures into empty stores. A store that
// already holds records is left untouched, so seeding a file-backed
// database twice is safe. Fixture records are inserted in file order;
// ids are assigned sequentially by the stores.
func Seed(ctx context.Context, stores Stores, logger *slog.Logger) error {
	seeded := 0

	candidates, err := loadCandidates()
	if err != nil {
		return err
	}
	existing, err := stores.Candidates.List(ctx, candidate.ListOptions{})
	if err != nil {
		return fmt.Errorf("checking candidate store: %w", err)
	}
	if len(existing) == 0 {
		for i := range candidates {
			if err := stores.Candidates.Create(ctx, &candidates[i]); err != nil {
				return fmt.Errorf("seeding candidate %q: %w", candidates[i].Name, err)
			}
		}
		seeded += len(candidates)
	}

	positions, err := loadPositions()
	if err != nil {
		return err
	}
	existingPositions, err := stores.Positions.List(ctx)
	if err != nil {
		return fmt.Errorf("checking position store: %w", err)
	}
	if len(existingPositions) == 0 {
		for i := range positions {
			if err := stores.Positions.Create(ctx, &positions[i]); err != nil {
				return fmt.Errorf("seeding position %q: %w", positions[i].Title, err)
			}
		}
		seeded += len(positions)
	}

	interviews, err := loadInterviews()
	if err != nil {
		return err
	}
	existingInterviews, err := stores.Interviews.List(ctx, interview.ListOptions{})
	if err != nil {
		return fmt.Errorf("checking interview store: %w", err)
	}
	if len(existingInterviews) == 0 {
		for i := range interviews {
			if err := stores.Interviews.Create(ctx, &interviews[i]); err != nil {
				return fmt.Errorf("seeding interview %q: %w", interviews[i].Title, err)
			}
		}
		seeded += len(interviews)
	}

	if logger != nil {
		logger.Info("fixtures seeded", "records", seeded)
	}
	return nil
}

func loadCandidates() ([]candidate.Candidate, error) {
	var out []candidate.Candidate
	if err := loadJSON("candidates.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func loadPositions() ([]position.Position, error) {
	var out []position.Position
	if err := loadJSON("positions.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func loadInterviews() ([]interview.Interview, error) {
	var out []interview.Interview
	if err := loadJSON("interviews.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func loadJSON(name string, out any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", name, err)
	}
	return nil
}
