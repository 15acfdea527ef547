package services

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by all services. Controllers translate these to
// HTTP codes; everything else surfaces as a generic 500.

// ErrNotFound marks a record that does not exist or belongs to another user.
var ErrNotFound = errors.New("record not found")

// ValidationError is a recoverable input problem, shown inline on the form.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a failed store call.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
