package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/dashboard"
	"github.com/recruitflow/recruitflow/internal/domain/position"
	"github.com/recruitflow/recruitflow/internal/repository/mocks"
)

func rosterOf(stages ...candidate.Stage) []candidate.Candidate {
	roster := make([]candidate.Candidate, 0, len(stages))
	for i, stage := range stages {
		roster = append(roster, candidate.Candidate{
			ID:    i + 1,
			Name:  "Candidate",
			Stage: stage,
		})
	}
	return roster
}

func TestDashboardService_StageMetrics(t *testing.T) {
	ctx := context.Background()

	stages := make([]candidate.Stage, 0, 10)
	for i := 0; i < 3; i++ {
		stages = append(stages, candidate.StageApplied)
	}
	for i := 0; i < 2; i++ {
		stages = append(stages, candidate.StageScreening)
	}
	for i := 0; i < 5; i++ {
		stages = append(stages, candidate.StageHired)
	}

	candidates := &mocks.CandidateRepository{}
	candidates.On("List", ctx, candidate.ListOptions{}).Return(rosterOf(stages...), nil)

	svc := dashboard.NewService(candidates, &mocks.PositionRepository{}, nil)
	metrics, err := svc.StageMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 5)

	require.Equal(t, candidate.StageApplied, metrics[0].Stage)
	require.Equal(t, 3, metrics[0].Count)
	require.Equal(t, 30, metrics[0].Percentage)

	require.Equal(t, candidate.StageScreening, metrics[1].Stage)
	require.Equal(t, 20, metrics[1].Percentage)

	require.Equal(t, candidate.StageInterview, metrics[2].Stage)
	require.Equal(t, 0, metrics[2].Count)
	require.Equal(t, 0, metrics[2].Percentage)

	require.Equal(t, candidate.StageHired, metrics[4].Stage)
	require.Equal(t, 50, metrics[4].Percentage)
}

func TestDashboardService_StageMetricsEmpty(t *testing.T) {
	ctx := context.Background()

	candidates := &mocks.CandidateRepository{}
	candidates.On("List", ctx, candidate.ListOptions{}).Return([]candidate.Candidate{}, nil)

	svc := dashboard.NewService(candidates, &mocks.PositionRepository{}, nil)
	metrics, err := svc.StageMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 5)
	for _, m := range metrics {
		require.Equal(t, 0, m.Count)
		require.Equal(t, 0, m.Percentage)
	}
}

func TestDashboardService_PipelineBoard(t *testing.T) {
	ctx := context.Background()

	candidates := &mocks.CandidateRepository{}
	candidates.On("List", ctx, candidate.ListOptions{}).Return(rosterOf(
		candidate.StageInterview,
		candidate.StageApplied,
		candidate.StageInterview,
	), nil)

	svc := dashboard.NewService(candidates, &mocks.PositionRepository{}, nil)
	board, err := svc.PipelineBoard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 5)

	require.Equal(t, candidate.StageApplied, board[0].Stage)
	require.Len(t, board[0].Candidates, 1)
	require.Equal(t, candidate.StageInterview, board[2].Stage)
	require.Len(t, board[2].Candidates, 2)
	// Columns are present even when empty.
	require.NotNil(t, board[4].Candidates)
	require.Empty(t, board[4].Candidates)
}

func TestDashboardService_UpcomingTasks(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)

	roster := []candidate.Candidate{
		{ID: 1, Name: "Ada Okafor", Position: "Backend Engineer", Stage: candidate.StageInterview},
		{ID: 2, Name: "Priya Nair", Position: "Product Designer", Stage: candidate.StageScreening},
		{ID: 3, Name: "Marcus Webb", Position: "Data Analyst", Stage: candidate.StageHired},
	}

	candidates := &mocks.CandidateRepository{}
	candidates.On("List", ctx, candidate.ListOptions{}).Return(roster, nil)

	svc := dashboard.NewService(candidates, &mocks.PositionRepository{}, nil)
	tasks, err := svc.UpcomingTasks(ctx, now)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Screening tasks come due first.
	require.Equal(t, "screening-2", tasks[0].ID)
	require.Equal(t, "high", tasks[0].Priority)
	require.Equal(t, now.Add(24*time.Hour), tasks[0].DueDate)
	require.Equal(t, "Screen candidate: Priya Nair", tasks[0].Title)

	require.Equal(t, "interview-1", tasks[1].ID)
	require.Equal(t, "medium", tasks[1].Priority)
	require.Equal(t, now.Add(48*time.Hour), tasks[1].DueDate)
}

func TestDashboardService_UpcomingTasksTruncatesToFive(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)

	stages := make([]candidate.Stage, 8)
	for i := range stages {
		stages[i] = candidate.StageScreening
	}

	candidates := &mocks.CandidateRepository{}
	candidates.On("List", ctx, candidate.ListOptions{}).Return(rosterOf(stages...), nil)

	svc := dashboard.NewService(candidates, &mocks.PositionRepository{}, nil)
	tasks, err := svc.UpcomingTasks(ctx, now)
	require.NoError(t, err)
	require.Len(t, tasks, 5)
}

func TestDashboardService_RecentActivity(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	roster := make([]candidate.Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		roster = append(roster, candidate.Candidate{
			ID:        i + 1,
			Name:      "Candidate",
			Stage:     candidate.StageApplied,
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	candidates := &mocks.CandidateRepository{}
	candidates.On("List", ctx, candidate.ListOptions{}).Return(roster, nil)

	svc := dashboard.NewService(candidates, &mocks.PositionRepository{}, nil)
	feed, err := svc.RecentActivity(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 8)

	// Newest first.
	require.Equal(t, 10, feed[0].CandidateID)
	require.Equal(t, 3, feed[7].CandidateID)
	require.Equal(t, "Candidate moved to Applied", feed[0].Title)
	require.Equal(t, "candidate_updated", feed[0].Type)
}

func TestDashboardService_GetOverview(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 6, 12, 0, 0, 0, time.UTC)

	roster := []candidate.Candidate{
		{ID: 1, Stage: candidate.StageApplied, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, Stage: candidate.StageApplied, CreatedAt: now.AddDate(0, 0, 1)},
		{ID: 3, Stage: candidate.StageOffer, CreatedAt: now.AddDate(0, 0, -30)},
	}
	openings := []position.Position{
		{ID: 1, Status: position.StatusActive},
		{ID: 2, Status: position.StatusActive},
		{ID: 3, Status: position.StatusClosed},
	}

	candidates := &mocks.CandidateRepository{}
	candidates.On("List", ctx, candidate.ListOptions{}).Return(roster, nil)
	positions := &mocks.PositionRepository{}
	positions.On("List", ctx).Return(openings, nil)

	svc := dashboard.NewService(candidates, positions, nil)
	ov, err := svc.GetOverview(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 3, ov.TotalCandidates)
	require.Equal(t, 2, ov.ByStage[candidate.StageApplied])
	require.Equal(t, 1, ov.ByStage[candidate.StageOffer])
	require.Equal(t, 2, ov.ActivePositions)
	require.Equal(t, 2, ov.RecentCandidates)
}

func TestGenerateAvailableSlots(t *testing.T) {
	// A Monday, so the following 14 days contain exactly 10 weekdays.
	now := time.Date(2026, 4, 6, 16, 30, 0, 0, time.UTC)

	slots := dashboard.GenerateAvailableSlots(now)
	require.Len(t, slots, 20)

	// Slots start the day after now, morning block first.
	first := slots[0]
	require.Equal(t, time.Date(2026, 4, 7, 10, 0, 0, 0, time.UTC), first.Start)
	require.Equal(t, time.Date(2026, 4, 7, 11, 0, 0, 0, time.UTC), first.End)
	require.Equal(t, "Available", first.Title)
	require.Equal(t, "available", first.Type)
	require.NotEmpty(t, first.ID)

	require.Equal(t, time.Date(2026, 4, 7, 14, 0, 0, 0, time.UTC), slots[1].Start)

	for _, slot := range slots {
		wd := slot.Start.Weekday()
		require.NotEqual(t, time.Saturday, wd)
		require.NotEqual(t, time.Sunday, wd)
		require.Equal(t, time.Hour, slot.End.Sub(slot.Start))
	}

	// Last slot lands on the final weekday of the window.
	require.Equal(t, time.Date(2026, 4, 20, 14, 0, 0, 0, time.UTC), slots[19].Start)
}

func TestDashboardService_AvailableSlots(t *testing.T) {
	svc := dashboard.NewService(&mocks.CandidateRepository{}, &mocks.PositionRepository{}, nil)

	// A Wednesday: the window spans two weekends, leaving 10 weekdays.
	now := time.Date(2026, 4, 8, 9, 0, 0, 0, time.UTC)
	slots := svc.AvailableSlots(context.Background(), now)
	require.Len(t, slots, 20)
}
