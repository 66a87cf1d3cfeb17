package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/dashboard"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/domain/position"
)

// CandidateService defines candidate operations needed by the API.
type CandidateService interface {
	GetAll(ctx context.Context) ([]candidate.Candidate, error)
	Get(ctx context.Context, id int) (*candidate.Candidate, error)
	Create(ctx context.Context, req candidate.CreateRequest) (*candidate.Candidate, error)
	Update(ctx context.Context, id int, req candidate.UpdateRequest) (*candidate.Candidate, error)
	UpdateStage(ctx context.Context, id int, stage candidate.Stage) (*candidate.Candidate, error)
	Delete(ctx context.Context, id int) (*candidate.Candidate, error)
	AddNote(ctx context.Context, id int, content, noteType string) (*candidate.Candidate, error)
	ScheduleInterview(ctx context.Context, id int, req candidate.ScheduleRequest) (*candidate.Candidate, error)
	ScheduledInterviews(ctx context.Context, id int) ([]candidate.ScheduledInterview, error)
	GetByStage(ctx context.Context, stage candidate.Stage) ([]candidate.Candidate, error)
	Search(ctx context.Context, query string) ([]candidate.Candidate, error)
	FilterCandidates(ctx context.Context, f candidate.Filter) ([]candidate.Candidate, error)
}

// PositionService defines position operations needed by the API.
type PositionService interface {
	GetAll(ctx context.Context) ([]position.Position, error)
	Get(ctx context.Context, id int) (*position.Position, error)
	Create(ctx context.Context, req position.CreateRequest) (*position.Position, error)
	Update(ctx context.Context, id int, req position.UpdateRequest) (*position.Position, error)
	Delete(ctx context.Context, id int) (*position.Position, error)
}

// InterviewService defines interview operations needed by the API.
type InterviewService interface {
	GetAll(ctx context.Context) ([]interview.Interview, error)
	Get(ctx context.Context, id int) (*interview.Interview, error)
	Create(ctx context.Context, req interview.CreateRequest) (*interview.Interview, error)
	Update(ctx context.Context, id int, req interview.UpdateRequest) (*interview.Interview, error)
	UpdateStatus(ctx context.Context, id int, status interview.Status) (*interview.Interview, error)
	Reschedule(ctx context.Context, id int, newStart time.Time, duration time.Duration) (*interview.Interview, error)
	Delete(ctx context.Context, id int) (*interview.Interview, error)
	AddNote(ctx context.Context, id int, content, author string) (*interview.Interview, error)
	AddParticipant(ctx context.Context, id int, name, email, role string) (*interview.Interview, error)
	RemoveParticipant(ctx context.Context, id int, participantID string) (*interview.Interview, error)
	GetByCandidate(ctx context.Context, candidateID int) ([]interview.Interview, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]interview.Interview, error)
	GetByStatus(ctx context.Context, status interview.Status) ([]interview.Interview, error)
	Search(ctx context.Context, query string) ([]interview.Interview, error)
	Upcoming(ctx context.Context, now time.Time) ([]interview.Interview, error)
	GetStatistics(ctx context.Context) (*interview.Statistics, error)
}

// DashboardService defines dashboard operations needed by the API.
type DashboardService interface {
	GetOverview(ctx context.Context, now time.Time) (*dashboard.Overview, error)
	StageMetrics(ctx context.Context) ([]dashboard.StageMetric, error)
	PipelineBoard(ctx context.Context) ([]dashboard.StageColumn, error)
	UpcomingTasks(ctx context.Context, now time.Time) ([]dashboard.Task, error)
	RecentActivity(ctx context.Context) ([]dashboard.ActivityItem, error)
	AvailableSlots(ctx context.Context, now time.Time) []dashboard.Slot
}

// Handler dispatches API methods to domain services.
type Handler struct {
	candidates CandidateService
	positions  PositionService
	interviews InterviewService
	dashboard  DashboardService
	now        func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(candidates CandidateService, positions PositionService, interviews InterviewService, dashboardSvc DashboardService) *Handler {
	return &Handler{
		candidates: candidates,
		positions:  positions,
		interviews: interviews,
		dashboard:  dashboardSvc,
		now:        time.Now,
	}
}

// WithClock overrides the handler's time source.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Handle dispatches a request to the matching domain operation.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_candidates":
		return h.wrap(h.candidates.GetAll(ctx))
	case "get_candidate":
		var req GetCandidateParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.Get(ctx, req.ID))
	case "create_candidate":
		var req CreateCandidateParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.Create(ctx, candidate.CreateRequest{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Position: req.Position,
			Stage:    req.Stage,
			Skills:   req.Skills,
		}))
	case "update_candidate":
		var req UpdateCandidateParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.Update(ctx, req.ID, candidate.UpdateRequest{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Position: req.Position,
			Stage:    req.Stage,
			Skills:   req.Skills,
		}))
	case "delete_candidate":
		var req DeleteCandidateParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.Delete(ctx, req.ID))
	case "update_candidate_stage":
		var req UpdateCandidateStageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.UpdateStage(ctx, req.ID, req.Stage))
	case "add_candidate_note":
		var req AddCandidateNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.AddNote(ctx, req.ID, req.Content, req.Type))
	case "search_candidates":
		var req SearchCandidatesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.Search(ctx, req.Query))
	case "filter_candidates":
		var req FilterCandidatesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.FilterCandidates(ctx, candidate.Filter{
			Query:     req.Query,
			Positions: req.Positions,
			Stages:    req.Stages,
		}))
	case "get_candidates_by_stage":
		var req GetCandidatesByStageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.GetByStage(ctx, req.Stage))
	case "schedule_candidate_interview":
		var req ScheduleCandidateInterviewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.ScheduleInterview(ctx, req.ID, candidate.ScheduleRequest{
			Title: req.Title,
			Start: req.Start,
			End:   req.End,
		}))
	case "get_candidate_interviews":
		var req GetCandidateInterviewsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.candidates.ScheduledInterviews(ctx, req.ID))

	case "list_positions":
		return h.wrap(h.positions.GetAll(ctx))
	case "get_position":
		var req GetPositionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.positions.Get(ctx, req.ID))
	case "create_position":
		var req CreatePositionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.positions.Create(ctx, position.CreateRequest{
			Title:       req.Title,
			Department:  req.Department,
			Description: req.Description,
			Status:      req.Status,
		}))
	case "update_position":
		var req UpdatePositionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.positions.Update(ctx, req.ID, position.UpdateRequest{
			Title:          req.Title,
			Department:     req.Department,
			Description:    req.Description,
			Status:         req.Status,
			CandidateCount: req.CandidateCount,
		}))
	case "delete_position":
		var req DeletePositionParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.positions.Delete(ctx, req.ID))

	case "list_interviews":
		return h.wrap(h.interviews.GetAll(ctx))
	case "get_interview":
		var req GetInterviewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.Get(ctx, req.ID))
	case "create_interview":
		var req CreateInterviewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.Create(ctx, interview.CreateRequest{
			Title:         req.Title,
			CandidateName: req.CandidateName,
			CandidateID:   req.CandidateID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        req.Status,
			Type:          req.Type,
			Location:      req.Location,
		}))
	case "update_interview":
		var req UpdateInterviewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.Update(ctx, req.ID, interview.UpdateRequest{
			Title:         req.Title,
			CandidateName: req.CandidateName,
			CandidateID:   req.CandidateID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        req.Status,
			Type:          req.Type,
			Location:      req.Location,
		}))
	case "delete_interview":
		var req DeleteInterviewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.Delete(ctx, req.ID))
	case "update_interview_status":
		var req UpdateInterviewStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.UpdateStatus(ctx, req.ID, req.Status))
	case "reschedule_interview":
		var req RescheduleInterviewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		duration := time.Duration(req.DurationMinutes) * time.Minute
		return h.wrap(h.interviews.Reschedule(ctx, req.ID, req.NewStartTime, duration))
	case "add_interview_note":
		var req AddInterviewNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.AddNote(ctx, req.ID, req.Content, req.Author))
	case "add_interview_participant":
		var req AddInterviewParticipantParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.AddParticipant(ctx, req.ID, req.Name, req.Email, req.Role))
	case "remove_interview_participant":
		var req RemoveInterviewParticipantParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.RemoveParticipant(ctx, req.ID, req.ParticipantID))
	case "get_interviews_by_candidate":
		var req GetInterviewsByCandidateParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.GetByCandidate(ctx, req.CandidateID))
	case "get_interviews_by_range":
		var req GetInterviewsByRangeParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.GetByDateRange(ctx, req.Start, req.End))
	case "get_interviews_by_status":
		var req GetInterviewsByStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.GetByStatus(ctx, req.Status))
	case "search_interviews":
		var req SearchInterviewsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.wrap(h.interviews.Search(ctx, req.Query))
	case "get_upcoming_interviews":
		return h.wrap(h.interviews.Upcoming(ctx, h.now()))
	case "get_interview_statistics":
		return h.wrap(h.interviews.GetStatistics(ctx))

	case "get_dashboard_overview":
		return h.wrap(h.dashboard.GetOverview(ctx, h.now()))
	case "get_stage_metrics":
		return h.wrap(h.dashboard.StageMetrics(ctx))
	case "get_pipeline_board":
		return h.wrap(h.dashboard.PipelineBoard(ctx))
	case "get_upcoming_tasks":
		return h.wrap(h.dashboard.UpcomingTasks(ctx, h.now()))
	case "get_recent_activity":
		return h.wrap(h.dashboard.RecentActivity(ctx))
	case "get_available_slots":
		return h.dashboard.AvailableSlots(ctx, h.now()), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// Methods returns the names of all dispatched methods in catalog order.
func Methods() []string {
	return []string{
		"list_candidates", "get_candidate", "create_candidate",
		"update_candidate", "delete_candidate", "update_candidate_stage",
		"add_candidate_note", "search_candidates", "filter_candidates",
		"get_candidates_by_stage", "schedule_candidate_interview",
		"get_candidate_interviews",
		"list_positions", "get_position", "create_position",
		"update_position", "delete_position",
		"list_interviews", "get_interview", "create_interview",
		"update_interview", "delete_interview", "update_interview_status",
		"reschedule_interview", "add_interview_note",
		"add_interview_participant", "remove_interview_participant",
		"get_interviews_by_candidate", "get_interviews_by_range",
		"get_interviews_by_status", "search_interviews",
		"get_upcoming_interviews", "get_interview_statistics",
		"get_dashboard_overview", "get_stage_metrics", "get_pipeline_board",
		"get_upcoming_tasks", "get_recent_activity", "get_available_slots",
	}
}

// wrap funnels every dispatch result through domain error mapping.
func (h *Handler) wrap(result any, err error) (any, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}
