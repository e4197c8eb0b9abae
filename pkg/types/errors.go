package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors.
var (
	ErrNotAttached     = errors.New("store is not attached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// ErrNotFound is returned by lookups when no entity exists with the
// requested ID. Update and delete operations signal the same condition
// with a false return instead, so callers can treat a missing row as
// "nothing to do" rather than a failure.
var ErrNotFound = errors.New("entity not found")

// ErrNoTasks is returned by the export path when the store holds no tasks,
// so surfaces can report it without producing an empty file.
var ErrNoTasks = errors.New("no tasks to export")

// ValidationError reports input rejected before any write: an empty title
// or name, a malformed date, a value outside an enumeration, or a name
// collision on a unique column.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ReferentialIntegrityError reports a category deletion blocked by tasks
// that still reference it. Raised before the delete is attempted; the
// category and its tasks are left unchanged.
type ReferentialIntegrityError struct {
	CategoryID int64
	Name       string
	Count      int64
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot delete category %q: %d task(s) still reference it", e.Name, e.Count)
}
