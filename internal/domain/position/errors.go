package position

import "errors"

var (
	// ErrPositionNotFound indicates the position doesn't exist.
	ErrPositionNotFound = errors.New("position not found")
	// ErrInvalidStatus indicates a status outside the enumeration.
	ErrInvalidStatus = errors.New("invalid position status")
	// ErrInvalidInput indicates invalid input for position operations.
	ErrInvalidInput = errors.New("invalid position input")
)
