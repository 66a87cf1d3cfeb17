package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recruitflow/recruitflow/internal/repository"
)

// DefaultRescheduleDuration is used when a reschedule request carries
// no explicit duration.
const DefaultRescheduleDuration = 60 * time.Minute

// Service handles interview business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new interview service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes an interview creation request. Empty fields
// fall back to the calendar defaults.
type CreateRequest struct {
	Title         string
	CandidateName string
	CandidateID   *int
	StartTime     time.Time
	EndTime       time.Time
	Status        Status
	Type          string
	Location      string
}

// UpdateRequest describes a partial interview update. Nil fields are
// left unchanged; the ID is always preserved.
type UpdateRequest struct {
	Title         *string
	CandidateName *string
	CandidateID   *int
	StartTime     *time.Time
	EndTime       *time.Time
	Status        *Status
	Type          *string
	Location      *string
}

// GetAll returns all interviews in insertion order.
func (s *Service) GetAll(ctx context.Context) ([]Interview, error) {
	return s.repo.List(ctx, ListOptions{})
}

// Get returns an interview by ID.
func (s *Service) Get(ctx context.Context, id int) (*Interview, error) {
	iv, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("getting interview: %w", err)
	}
	return iv, nil
}

// Create schedules a new interview. The store assigns the next integer ID.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Interview, error) {
	title := req.Title
	if title == "" {
		title = "New Interview"
	}
	candidateName := req.CandidateName
	if candidateName == "" {
		candidateName = "Unknown Candidate"
	}
	status := req.Status
	if status == "" {
		status = StatusScheduled
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	ivType := req.Type
	if ivType == "" {
		ivType = "technical"
	}
	location := req.Location
	if location == "" {
		location = "Virtual"
	}

	now := time.Now()
	iv := &Interview{
		Title:         title,
		CandidateName: candidateName,
		CandidateID:   req.CandidateID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        status,
		Type:          ivType,
		Location:      location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, iv); err != nil {
		return nil, fmt.Errorf("creating interview: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("interview created", "id", iv.ID, "start", iv.StartTime)
	}
	return iv, nil
}

// Update merges partial fields onto an existing interview and
// refreshes its updated timestamp.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Interview, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.CandidateName != nil {
		updated.CandidateName = *req.CandidateName
	}
	if req.CandidateID != nil {
		updated.CandidateID = req.CandidateID
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		updated.EndTime = *req.EndTime
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		updated.Status = *req.Status
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Location != nil {
		updated.Location = *req.Location
	}
	updated.UpdatedAt = time.Now()

	if err := s.persist(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateStatus moves an interview to the given status.
func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) (*Interview, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return s.Update(ctx, id, UpdateRequest{Status: &status})
}

// Reschedule moves an interview to a new start time. A zero duration
// falls back to sixty minutes. The interview status becomes
// "rescheduled".
func (s *Service) Reschedule(ctx context.Context, id int, newStart time.Time, duration time.Duration) (*Interview, error) {
	if duration <= 0 {
		duration = DefaultRescheduleDuration
	}
	end := newStart.Add(duration)
	status := StatusRescheduled
	return s.Update(ctx, id, UpdateRequest{
		StartTime: &newStart,
		EndTime:   &end,
		Status:    &status,
	})
}

// Delete removes an interview and returns the removed record.
func (s *Service) Delete(ctx context.Context, id int) (*Interview, error) {
	iv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("deleting interview: %w", err)
	}
	return iv, nil
}

// AddNote appends a note to the interview. Empty or whitespace-only
// content is rejected.
func (s *Service) AddNote(ctx context.Context, id int, content, author string) (*Interview, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if author == "" {
		author = "Current User"
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:        uuid.NewString(),
		Content:   content,
		Author:    author,
		Timestamp: time.Now(),
	}

	updated := *current
	updated.Notes = append(append([]Note{}, current.Notes...), note)
	updated.UpdatedAt = time.Now()

	if err := s.persist(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddParticipant appends a participant to the interview. Emails are
// unique per interview, compared case-sensitively.
func (s *Service) AddParticipant(ctx context.Context, id int, name, email, role string) (*Interview, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrInvalidInput
	}
	if role == "" {
		role = "Interviewer"
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, p := range current.Participants {
		if p.Email == email {
			return nil, ErrDuplicateParticipant
		}
	}

	participant := Participant{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Role:    role,
		AddedAt: time.Now(),
	}

	updated := *current
	updated.Participants = append(append([]Participant{}, current.Participants...), participant)
	updated.UpdatedAt = time.Now()

	if err := s.persist(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateParticipant
		}
		return nil, err
	}
	return &updated, nil
}

// RemoveParticipant removes the participant with the given id. The
// participants sequence is left unchanged when no participant matches.
func (s *Service) RemoveParticipant(ctx context.Context, id int, participantID string) (*Interview, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range current.Participants {
		if p.ID == participantID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrParticipantNotFound
	}

	updated := *current
	updated.Participants = append(append([]Participant{}, current.Participants[:idx]...), current.Participants[idx+1:]...)
	updated.UpdatedAt = time.Now()

	if err := s.persist(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetByCandidate returns interviews referencing the given candidate.
func (s *Service) GetByCandidate(ctx context.Context, candidateID int) ([]Interview, error) {
	return s.repo.List(ctx, ListOptions{CandidateID: &candidateID})
}

// GetByDateRange returns interviews starting within [start, end],
// inclusive on both bounds.
func (s *Service) GetByDateRange(ctx context.Context, start, end time.Time) ([]Interview, error) {
	return s.repo.List(ctx, ListOptions{From: &start, To: &end})
}

// GetByStatus returns interviews with exactly the given status.
func (s *Service) GetByStatus(ctx context.Context, status Status) ([]Interview, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, ListOptions{Statuses: []Status{status}})
}

// Search returns interviews whose title, candidate name, type, or
// location contains the query as a case-insensitive substring. An
// empty query matches everything.
func (s *Service) Search(ctx context.Context, query string) ([]Interview, error) {
	all, err := s.repo.List(ctx, ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing interviews: %w", err)
	}
	if query == "" {
		return all, nil
	}
	term := strings.ToLower(query)
	matched := make([]Interview, 0, len(all))
	for _, iv := range all {
		if strings.Contains(strings.ToLower(iv.Title), term) ||
			strings.Contains(strings.ToLower(iv.CandidateName), term) ||
			strings.Contains(strings.ToLower(iv.Type), term) ||
			strings.Contains(strings.ToLower(iv.Location), term) {
			matched = append(matched, iv)
		}
	}
	return matched, nil
}

// Upcoming returns scheduled interviews starting within the next seven
// days, ascending by start time.
func (s *Service) Upcoming(ctx context.Context, now time.Time) ([]Interview, error) {
	weekOut := now.Add(7 * 24 * time.Hour)
	upcoming, err := s.repo.List(ctx, ListOptions{
		Statuses: []Status{StatusScheduled},
		From:     &now,
		To:       &weekOut,
	})
	if err != nil {
		return nil, fmt.Errorf("listing interviews: %w", err)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})
	return upcoming, nil
}

// GetStatistics aggregates interview counts by status.
func (s *Service) GetStatistics(ctx context.Context) (*Statistics, error) {
	all, err := s.repo.List(ctx, ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing interviews: %w", err)
	}

	stats := &Statistics{Total: len(all)}
	for _, iv := range all {
		switch iv.Status {
		case StatusScheduled:
			stats.Scheduled++
		case StatusCompleted:
			stats.Completed++
		case StatusCancelled:
			stats.Cancelled++
		case StatusRescheduled:
			stats.Rescheduled++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats, nil
}

func (s *Service) persist(ctx context.Context, iv *Interview) error {
	if err := s.repo.Update(ctx, iv); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInterviewNotFound
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("updating interview: %w", err)
	}
	return nil
}
