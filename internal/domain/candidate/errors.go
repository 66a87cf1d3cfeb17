package candidate

import "errors"

var (
	// ErrCandidateNotFound indicates the candidate doesn't exist.
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrInvalidStage indicates a stage value outside the enumeration.
	ErrInvalidStage = errors.New("invalid pipeline stage")
	// ErrEmptyContent indicates a note with empty or whitespace-only content.
	ErrEmptyContent = errors.New("note content is required")
	// ErrInvalidInput indicates invalid input for candidate operations.
	ErrInvalidInput = errors.New("invalid candidate input")
)
