package api

import (
	"time"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/domain/position"
)

type GetCandidateParams struct {
	ID int `json:"id"`
}

type CreateCandidateParams struct {
	Name     string          `json:"name"`
	Email    string          `json:"email,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Position string          `json:"position,omitempty"`
	Stage    candidate.Stage `json:"stage,omitempty"`
	Skills   []string        `json:"skills,omitempty"`
}

type UpdateCandidateParams struct {
	ID       int              `json:"id"`
	Name     *string          `json:"name,omitempty"`
	Email    *string          `json:"email,omitempty"`
	Phone    *string          `json:"phone,omitempty"`
	Position *string          `json:"position,omitempty"`
	Stage    *candidate.Stage `json:"stage,omitempty"`
	Skills   []string         `json:"skills,omitempty"`
}

type DeleteCandidateParams struct {
	ID int `json:"id"`
}

type UpdateCandidateStageParams struct {
	ID    int             `json:"id"`
	Stage candidate.Stage `json:"stage"`
}

type AddCandidateNoteParams struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

type SearchCandidatesParams struct {
	Query string `json:"query,omitempty"`
}

type FilterCandidatesParams struct {
	Query     string            `json:"query,omitempty"`
	Positions []string          `json:"positions,omitempty"`
	Stages    []candidate.Stage `json:"stages,omitempty"`
}

type GetCandidatesByStageParams struct {
	Stage candidate.Stage `json:"stage"`
}

type ScheduleCandidateInterviewParams struct {
	ID    int       `json:"id"`
	Title string    `json:"title,omitempty"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end,omitempty"`
}

type GetCandidateInterviewsParams struct {
	ID int `json:"id"`
}

type GetPositionParams struct {
	ID int `json:"id"`
}

type CreatePositionParams struct {
	Title       string          `json:"title"`
	Department  string          `json:"department,omitempty"`
	Description string          `json:"description,omitempty"`
	Status      position.Status `json:"status,omitempty"`
}

type UpdatePositionParams struct {
	ID             int              `json:"id"`
	Title          *string          `json:"title,omitempty"`
	Department     *string          `json:"department,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Status         *position.Status `json:"status,omitempty"`
	CandidateCount *int             `json:"candidate_count,omitempty"`
}

type DeletePositionParams struct {
	ID int `json:"id"`
}

type GetInterviewParams struct {
	ID int `json:"id"`
}

type CreateInterviewParams struct {
	Title         string           `json:"title,omitempty"`
	CandidateName string           `json:"candidate_name,omitempty"`
	CandidateID   *int             `json:"candidate_id,omitempty"`
	StartTime     time.Time        `json:"start_time"`
	EndTime       time.Time        `json:"end_time"`
	Status        interview.Status `json:"status,omitempty"`
	Type          string           `json:"type,omitempty"`
	Location      string           `json:"location,omitempty"`
}

type UpdateInterviewParams struct {
	ID            int               `json:"id"`
	Title         *string           `json:"title,omitempty"`
	CandidateName *string           `json:"candidate_name,omitempty"`
	CandidateID   *int              `json:"candidate_id,omitempty"`
	StartTime     *time.Time        `json:"start_time,omitempty"`
	EndTime       *time.Time        `json:"end_time,omitempty"`
	Status        *interview.Status `json:"status,omitempty"`
	Type          *string           `json:"type,omitempty"`
	Location      *string           `json:"location,omitempty"`
}

type DeleteInterviewParams struct {
	ID int `json:"id"`
}

type UpdateInterviewStatusParams struct {
	ID     int              `json:"id"`
	Status interview.Status `json:"status"`
}

type RescheduleInterviewParams struct {
	ID              int       `json:"id"`
	NewStartTime    time.Time `json:"new_start_time"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
}

type AddInterviewNoteParams struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

type AddInterviewParticipantParams struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type RemoveInterviewParticipantParams struct {
	ID            int    `json:"id"`
	ParticipantID string `json:"participant_id"`
}

type GetInterviewsByCandidateParams struct {
	CandidateID int `json:"candidate_id"`
}

type GetInterviewsByRangeParams struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type GetInterviewsByStatusParams struct {
	Status interview.Status `json:"status"`
}

type SearchInterviewsParams struct {
	Query string `json:"query,omitempty"`
}
