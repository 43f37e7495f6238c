package types

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validation sentinels.
var (
	ErrInvalidUUID          = errors.New("invalid UUID format")
	ErrSelfReference        = errors.New("a todo cannot be its own epic")
	ErrEmptyTitle           = errors.New("title must not be empty")
	ErrInvalidBacklogColumn = errors.New("backlog column must be between 0 and 3")
)

// Store lifecycle sentinels.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// NotFoundError reports that no todo exists with the given ID.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo %s not found", e.ID)
}

// EpicNotFoundError reports that an epic link references a todo that
// does not exist.
type EpicNotFoundError struct {
	ID uuid.UUID
}

func (e *EpicNotFoundError) Error() string {
	return fmt.Sprintf("epic %s not found", e.ID)
}

// ProjectMismatchError reports that an explicit project tag conflicts
// with the linked epic's project.
type ProjectMismatchError struct {
	Given string
	Epic  string
}

func (e *ProjectMismatchError) Error() string {
	return fmt.Sprintf("project %q does not match epic's project %q", e.Given, e.Epic)
}

// HasChildrenError blocks deletion of an epic that still has linked
// sub-todos. Count is the number of live references.
type HasChildrenError struct {
	Count int64
}

func (e *HasChildrenError) Error() string {
	return fmt.Sprintf("cannot delete todo: it is an epic with %d sub-todo(s)", e.Count)
}

// DatabaseError wraps an opaque storage-layer failure. The core never
// retries; the underlying error is reachable via Unwrap.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err is caller-correctable: bad input or
// a reference the caller can fix. HasChildren is a business rule, not a
// client error, and database failures are infrastructure; adapters map
// those to their internal-error codes.
func IsClientError(err error) bool {
	var (
		notFound        *NotFoundError
		epicNotFound    *EpicNotFoundError
		projectMismatch *ProjectMismatchError
	)
	switch {
	case errors.As(err, &notFound),
		errors.As(err, &epicNotFound),
		errors.As(err, &projectMismatch):
		return true
	}
	return errors.Is(err, ErrInvalidUUID) ||
		errors.Is(err, ErrSelfReference) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidBacklogColumn)
}
