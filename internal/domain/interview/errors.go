package interview

import "errors"

var (
	// ErrInterviewNotFound indicates the interview doesn't exist.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrParticipantNotFound indicates no participant matches the given id.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrDuplicateParticipant indicates a participant with the same email
	// is already on the interview.
	ErrDuplicateParticipant = errors.New("participant already added to this interview")
	// ErrInvalidStatus indicates a status outside the enumeration.
	ErrInvalidStatus = errors.New("invalid interview status")
	// ErrEmptyContent indicates a note with empty or whitespace-only content.
	ErrEmptyContent = errors.New("note content is required")
	// ErrInvalidInput indicates invalid input for interview operations.
	ErrInvalidInput = errors.New("invalid interview input")
)
