package interview

import "time"

// Status represents the scheduling state of an interview.
type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

// Statuses returns all interview statuses.
func Statuses() []Status {
	return []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled}
}

// IsValid reports whether s is a known interview status.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Interview represents a calendar interview. CandidateID is an
// informational reference to the candidate store; it may dangle and is
// never enforced.
type Interview struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	CandidateName string        `json:"candidate_name"`
	CandidateID   *int          `json:"candidate_id,omitempty"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        Status        `json:"status"`
	Type          string        `json:"type"`
	Location      string        `json:"location"`
	Notes         []Note        `json:"notes,omitempty"`
	Participants  []Participant `json:"participants,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Note is a timestamped annotation on an interview, appended at the end.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// Participant is a person attending an interview. No two participants
// on the same interview may share an email.
type Participant struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	AddedAt time.Time `json:"added_at"`
}

// Statistics aggregates interview counts by status. CompletionRate is
// the rounded percentage of completed interviews, 0 when there are none.
type Statistics struct {
	Total          int `json:"total"`
	Scheduled      int `json:"scheduled"`
	Completed      int `json:"completed"`
	Cancelled      int `json:"cancelled"`
	Rescheduled    int `json:"rescheduled"`
	CompletionRate int `json:"completion_rate"`
}
