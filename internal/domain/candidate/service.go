package candidate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recruitflow/recruitflow/internal/repository"
)

// Service handles candidate business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new candidate service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes a candidate creation request.
type CreateRequest struct {
	Name     string
	Email    string
	Phone    string
	Position string
	Stage    Stage
	Skills   []string
}

// UpdateRequest describes a partial candidate update. Nil fields are
// left unchanged; the ID is always preserved.
type UpdateRequest struct {
	Name     *string
	Email    *string
	Phone    *string
	Position *string
	Stage    *Stage
	Skills   []string
}

// ScheduleRequest describes an ad-hoc interview booked on a candidate.
type ScheduleRequest struct {
	Title string
	Start time.Time
	End   time.Time
}

// GetAll returns all candidates in insertion order.
func (s *Service) GetAll(ctx context.Context) ([]Candidate, error) {
	return s.repo.List(ctx, ListOptions{})
}

// Get returns a candidate by ID.
func (s *Service) Get(ctx context.Context, id int) (*Candidate, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("getting candidate: %w", err)
	}
	return c, nil
}

// Create adds a new candidate. The store assigns the next integer ID.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Candidate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	stage := req.Stage
	if stage == "" {
		stage = StageApplied
	}
	if !stage.IsValid() {
		return nil, ErrInvalidStage
	}

	now := time.Now()
	c := &Candidate{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		Stage:     stage,
		Skills:    req.Skills,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating candidate: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("candidate created", "id", c.ID, "stage", c.Stage)
	}
	return c, nil
}

// Update merges partial fields onto an existing candidate and
// refreshes its updated timestamp.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Candidate, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.Position != nil {
		updated.Position = *req.Position
	}
	if req.Stage != nil {
		if !req.Stage.IsValid() {
			return nil, ErrInvalidStage
		}
		updated.Stage = *req.Stage
	}
	if req.Skills != nil {
		updated.Skills = req.Skills
	}
	updated.UpdatedAt = time.Now()

	if err := s.persist(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateStage moves a candidate to the given pipeline stage. Any of
// the five stages may be set; there is no forward-only enforcement.
func (s *Service) UpdateStage(ctx context.Context, id int, stage Stage) (*Candidate, error) {
	if !stage.IsValid() {
		return nil, ErrInvalidStage
	}
	return s.Update(ctx, id, UpdateRequest{Stage: &stage})
}

// Delete removes a candidate and returns the removed record. Interview
// records referencing the candidate are left untouched.
func (s *Service) Delete(ctx context.Context, id int) (*Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("deleting candidate: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("candidate deleted", "id", id)
	}
	return c, nil
}

// AddNote prepends a note to the candidate's notes. Empty or
// whitespace-only content is rejected.
func (s *Service) AddNote(ctx context.Context, id int, content, noteType string) (*Candidate, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if noteType == "" {
		noteType = "general"
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:        uuid.NewString(),
		Content:   content,
		Type:      noteType,
		Timestamp: time.Now(),
	}

	updated := *current
	updated.Notes = append([]Note{note}, current.Notes...)
	updated.UpdatedAt = time.Now()

	if err := s.persist(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ScheduleInterview appends an ad-hoc interview entry to the
// candidate. The entry is independent of the top-level interview store.
func (s *Service) ScheduleInterview(ctx context.Context, id int, req ScheduleRequest) (*Candidate, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Interview with %s", current.Name)
	}
	end := req.End
	if end.IsZero() {
		end = req.Start.Add(time.Hour)
	}

	entry := ScheduledInterview{
		ID:          uuid.NewString(),
		Title:       title,
		Start:       req.Start,
		End:         end,
		CandidateID: current.ID,
		CreatedAt:   time.Now(),
	}

	updated := *current
	updated.Interviews = append(append([]ScheduledInterview{}, current.Interviews...), entry)
	updated.UpdatedAt = time.Now()

	if err := s.persist(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ScheduledInterviews returns the ad-hoc interview entries booked on a
// candidate.
func (s *Service) ScheduledInterviews(ctx context.Context, id int) ([]ScheduledInterview, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Interviews, nil
}

// GetByStage returns candidates currently in the given stage.
func (s *Service) GetByStage(ctx context.Context, stage Stage) ([]Candidate, error) {
	if !stage.IsValid() {
		return nil, ErrInvalidStage
	}
	return s.repo.List(ctx, ListOptions{Stages: []Stage{stage}})
}

// Search returns candidates whose name, email, position, or any skill
// contains the query as a case-insensitive substring. An empty query
// matches everything.
func (s *Service) Search(ctx context.Context, query string) ([]Candidate, error) {
	all, err := s.repo.List(ctx, ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	return matchQuery(all, query), nil
}

// FilterCandidates applies the roster view's combined query: substring
// search, position filter, and stage filter as intersected predicates.
func (s *Service) FilterCandidates(ctx context.Context, f Filter) ([]Candidate, error) {
	filtered, err := s.repo.List(ctx, ListOptions{Stages: f.Stages, Positions: f.Positions})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	return matchQuery(filtered, f.Query), nil
}

func (s *Service) persist(ctx context.Context, c *Candidate) error {
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCandidateNotFound
		}
		return fmt.Errorf("updating candidate: %w", err)
	}
	return nil
}

func matchQuery(candidates []Candidate, query string) []Candidate {
	if query == "" {
		return candidates
	}
	term := strings.ToLower(query)
	matched := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.matches(term) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (c *Candidate) matches(term string) bool {
	if strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(strings.ToLower(c.Position), term) {
		return true
	}
	for _, skill := range c.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}
