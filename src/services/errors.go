package services

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfFollow rejects follow(actor, actor).
	ErrSelfFollow = errors.New("you can't follow yourself")

	// ErrNotFound means a referenced user or post does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPermission means the actor is not allowed to touch the record,
	// e.g. editing somebody else's post.
	ErrPermission = errors.New("not authorized")
)

// ValidationError carries field-level detail for bad input. The operation
// that raised it had no side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
