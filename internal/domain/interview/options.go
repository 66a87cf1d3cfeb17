package interview

import "time"

// ListOptions provides filtering options for listing interviews.
// Zero-valued fields mean "no filter applied". Date bounds are
// inclusive and compare the interview start time only.
type ListOptions struct {
	Statuses    []Status
	CandidateID *int
	From        *time.Time
	To          *time.Time
}
