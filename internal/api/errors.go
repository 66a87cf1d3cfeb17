package api

import (
	"errors"
	"fmt"

	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/domain/position"
)

// ErrUnknownMethod is returned when a request names a method the
// handler does not dispatch.
var ErrUnknownMethod = errors.New("unknown method")

// APIError represents a structured error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to structured error codes. It returns
// nil for errors with no mapping.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, candidate.ErrCandidateNotFound):
		return &APIError{Code: "CANDIDATE_NOT_FOUND", Message: "candidate not found", RecoveryHint: "Check the candidate ID"}
	case errors.Is(err, candidate.ErrInvalidStage):
		return &APIError{Code: "INVALID_STAGE", Message: "invalid pipeline stage", Details: candidate.Stages()}
	case errors.Is(err, position.ErrPositionNotFound):
		return &APIError{Code: "POSITION_NOT_FOUND", Message: "position not found", RecoveryHint: "Check the position ID"}
	case errors.Is(err, position.ErrInvalidStatus):
		return &APIError{Code: "INVALID_POSITION_STATUS", Message: "invalid position status"}
	case errors.Is(err, interview.ErrInterviewNotFound):
		return &APIError{Code: "INTERVIEW_NOT_FOUND", Message: "interview not found", RecoveryHint: "Check the interview ID"}
	case errors.Is(err, interview.ErrParticipantNotFound):
		return &APIError{Code: "PARTICIPANT_NOT_FOUND", Message: "participant not found", RecoveryHint: "Check the participant ID"}
	case errors.Is(err, interview.ErrDuplicateParticipant):
		return &APIError{Code: "DUPLICATE_PARTICIPANT", Message: "participant already added to this interview"}
	case errors.Is(err, interview.ErrInvalidStatus):
		return &APIError{Code: "INVALID_STATUS", Message: "invalid interview status", Details: interview.Statuses()}
	case errors.Is(err, candidate.ErrEmptyContent), errors.Is(err, interview.ErrEmptyContent):
		return &APIError{Code: "EMPTY_CONTENT", Message: "note content is required"}
	case errors.Is(err, candidate.ErrInvalidInput),
		errors.Is(err, position.ErrInvalidInput),
		errors.Is(err, interview.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
