package service

import "errors"

// ErrNotFound signals that the addressed entity does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError covers malformed input and missing referenced entities.
// Field names the offending input when known.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// ConflictError covers uniqueness violations such as a duplicate internal
// code or a duplicate image upload.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
