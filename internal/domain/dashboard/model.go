package dashboard

import (
	"time"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
)

// StageMetric is the per-stage slice of the pipeline board header.
// Percentages are rounded independently per stage and are not
// guaranteed to sum to exactly 100.
type StageMetric struct {
	Stage      candidate.Stage `json:"stage"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// Task is a synthetic to-do inferred from a candidate's current stage.
// Tasks are derived on demand and never stored.
type Task struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Candidate string    `json:"candidate"`
	Position  string    `json:"position"`
	Priority  string    `json:"priority"`
	DueDate   time.Time `json:"due_date"`
}

// ActivityItem is one row of the recent-activity feed. The feed is
// derived from candidate updated timestamps, so any mutation surfaces
// as a stage move; this mirrors the observed product behavior.
type ActivityItem struct {
	CandidateID int             `json:"candidate_id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Candidate   string          `json:"candidate"`
	Position    string          `json:"position"`
	Stage       candidate.Stage `json:"stage"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Slot is a fixed-duration block of open calendar time offered for
// scheduling. Slots are synthetic and never persisted.
type Slot struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  string    `json:"type"`
}

// Overview is the dashboard headline block.
type Overview struct {
	TotalCandidates  int                     `json:"total_candidates"`
	ByStage          map[candidate.Stage]int `json:"by_stage"`
	ActivePositions  int                     `json:"active_positions"`
	RecentCandidates int                     `json:"recent_candidates"`
}

// StageColumn is one kanban column of the pipeline board.
type StageColumn struct {
	Stage      candidate.Stage       `json:"stage"`
	Candidates []candidate.Candidate `json:"candidates"`
}
