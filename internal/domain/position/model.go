package position

import "time"

// Status tells whether a position is open for new candidates.
type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

// IsValid reports whether s is a known position status.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusClosed
}

// Position represents an open or closed role candidates apply to.
// CandidateCount is informational and not kept transactionally in sync
// with the candidate store.
type Position struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department,omitempty"`
	Description    string    `json:"description,omitempty"`
	Status         Status    `json:"status"`
	CandidateCount int       `json:"candidate_count"`
	CreatedAt      time.Time `json:"created_at"`
}
