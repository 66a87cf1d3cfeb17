package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/position"
)

// Feed and task truncation limits from the dashboard layout.
const (
	maxUpcomingTasks  = 5
	maxActivityItems  = 8
	screeningDueAfter = 24 * time.Hour
	interviewDueAfter = 48 * time.Hour
)

// Service derives dashboard aggregates from current store contents.
// Nothing here is persisted; every call recomputes from the stores.
type Service struct {
	candidates CandidateSource
	positions  PositionSource
	logger     *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(candidates CandidateSource, positions PositionSource, logger *slog.Logger) *Service {
	return &Service{candidates: candidates, positions: positions, logger: logger}
}

// StageMetrics returns count and rounded percentage for each of the
// five stages in board order. Percentages are 0 when there are no
// candidates.
func (s *Service) StageMetrics(ctx context.Context) ([]StageMetric, error) {
	all, err := s.candidates.List(ctx, candidate.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	counts := make(map[candidate.Stage]int, 5)
	for _, c := range all {
		counts[c.Stage]++
	}

	total := len(all)
	metrics := make([]StageMetric, 0, 5)
	for _, stage := range candidate.Stages() {
		m := StageMetric{Stage: stage, Count: counts[stage]}
		if total > 0 {
			m.Percentage = int(math.Round(float64(m.Count) / float64(total) * 100))
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// PipelineBoard groups candidates into the five kanban columns.
func (s *Service) PipelineBoard(ctx context.Context) ([]StageColumn, error) {
	all, err := s.candidates.List(ctx, candidate.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	columns := make([]StageColumn, 0, 5)
	for _, stage := range candidate.Stages() {
		col := StageColumn{Stage: stage, Candidates: []candidate.Candidate{}}
		for _, c := range all {
			if c.Stage == stage {
				col.Candidates = append(col.Candidates, c)
			}
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// UpcomingTasks infers one task per candidate in the Screening stage
// (high priority, due in one day) or the Interview stage (medium
// priority, due in two days), ascending by due date, first five.
func (s *Service) UpcomingTasks(ctx context.Context, now time.Time) ([]Task, error) {
	all, err := s.candidates.List(ctx, candidate.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	tasks := make([]Task, 0, len(all))
	for _, c := range all {
		switch c.Stage {
		case candidate.StageScreening:
			tasks = append(tasks, Task{
				ID:        fmt.Sprintf("screening-%d", c.ID),
				Type:      "screening",
				Title:     fmt.Sprintf("Screen candidate: %s", c.Name),
				Candidate: c.Name,
				Position:  c.Position,
				Priority:  "high",
				DueDate:   now.Add(screeningDueAfter),
			})
		case candidate.StageInterview:
			tasks = append(tasks, Task{
				ID:        fmt.Sprintf("interview-%d", c.ID),
				Type:      "interview",
				Title:     fmt.Sprintf("Interview: %s", c.Name),
				Candidate: c.Name,
				Position:  c.Position,
				Priority:  "medium",
				DueDate:   now.Add(interviewDueAfter),
			})
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
	if len(tasks) > maxUpcomingTasks {
		tasks = tasks[:maxUpcomingTasks]
	}
	return tasks, nil
}

// RecentActivity returns the eight most recently touched candidates,
// newest first, rendered as stage moves. Because the feed keys off
// updated timestamps, any mutation surfaces as a move.
func (s *Service) RecentActivity(ctx context.Context) ([]ActivityItem, error) {
	all, err := s.candidates.List(ctx, candidate.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})
	if len(all) > maxActivityItems {
		all = all[:maxActivityItems]
	}

	feed := make([]ActivityItem, 0, len(all))
	for _, c := range all {
		feed = append(feed, ActivityItem{
			CandidateID: c.ID,
			Type:        "candidate_updated",
			Title:       fmt.Sprintf("%s moved to %s", c.Name, c.Stage),
			Candidate:   c.Name,
			Position:    c.Position,
			Stage:       c.Stage,
			Timestamp:   c.UpdatedAt,
		})
	}
	return feed, nil
}

// GetOverview computes the dashboard headline numbers. "Recent"
// candidates are those created on the current or following day.
func (s *Service) GetOverview(ctx context.Context, now time.Time) (*Overview, error) {
	all, err := s.candidates.List(ctx, candidate.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	positions, err := s.positions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing positions: %w", err)
	}

	ov := &Overview{
		TotalCandidates: len(all),
		ByStage:         make(map[candidate.Stage]int, 5),
	}
	for _, c := range all {
		ov.ByStage[c.Stage]++
		if sameDate(c.CreatedAt, now) || sameDate(c.CreatedAt, now.AddDate(0, 0, 1)) {
			ov.RecentCandidates++
		}
	}
	for _, p := range positions {
		if p.Status == position.StatusActive {
			ov.ActivePositions++
		}
	}
	return ov, nil
}

// AvailableSlots returns the synthetic open scheduling slots for the
// two weeks following now.
func (s *Service) AvailableSlots(_ context.Context, now time.Time) []Slot {
	return GenerateAvailableSlots(now)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
