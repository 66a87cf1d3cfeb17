package candidate

import "time"

// Stage classifies where a candidate sits in the hiring pipeline.
// It is a closed enumeration but not a strict state machine: any of the
// five values may be assigned at any time, including backward moves.
type Stage string

const (
	StageApplied   Stage = "Applied"
	StageScreening Stage = "Screening"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
)

// Stages returns the five pipeline stages in board order.
func Stages() []Stage {
	return []Stage{StageApplied, StageScreening, StageInterview, StageOffer, StageHired}
}

// IsValid reports whether s is one of the five pipeline stages.
func (s Stage) IsValid() bool {
	switch s {
	case StageApplied, StageScreening, StageInterview, StageOffer, StageHired:
		return true
	}
	return false
}

// Candidate represents a person tracked through the hiring pipeline
type Candidate struct {
	ID         int                  `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone,omitempty"`
	Position   string               `json:"position"`
	Stage      Stage                `json:"stage"`
	Skills     []string             `json:"skills,omitempty"`
	Notes      []Note               `json:"notes,omitempty"`
	Interviews []ScheduledInterview `json:"interviews,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// Note is a timestamped annotation on a candidate, newest first.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// ScheduledInterview is an ad-hoc interview booked directly on a
// candidate. These entries live on the candidate record and are not
// synchronized with the top-level interview store.
type ScheduledInterview struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CandidateID int       `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}
