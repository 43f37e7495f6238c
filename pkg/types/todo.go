package types

import (
	"time"

	"github.com/google/uuid"
)

// Todo statuses. A todo toggles between pending and done; neither is
// terminal.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Backlog column bounds. The column is only meaningful for backlog
// todos (ScheduledFor == nil).
const (
	MinBacklogColumn = 0
	MaxBacklogColumn = 3
)

// Todo is a single tracked item. It lives in a day column (ScheduledFor
// set) or the backlog (ScheduledFor nil). OrderIndex is a relative sort
// key meaningful only within one (scope, status) partition; it is
// neither unique nor contiguous. Project ("" = none) is a free-form
// tag. EpicID (uuid.Nil = none) links the todo to a parent epic, one
// level deep.
type Todo struct {
	ID            uuid.UUID
	Title         string
	Status        string
	ScheduledFor  *Date
	OrderIndex    int64
	Notes         string
	Project       string
	EpicID        uuid.UUID
	BacklogColumn int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Scope returns the column the todo currently belongs to.
func (t *Todo) Scope() Scope {
	if t.ScheduledFor == nil {
		return ScopeBacklog()
	}
	return ScopeDay(*t.ScheduledFor)
}

// Done reports whether the todo is in the done status.
func (t *Todo) Done() bool {
	return t.Status == StatusDone
}

// Validate checks the entity-local invariants: non-empty title, backlog
// column within bounds, and no self-referential epic link.
func (t *Todo) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if t.BacklogColumn < MinBacklogColumn || t.BacklogColumn > MaxBacklogColumn {
		return ErrInvalidBacklogColumn
	}
	if t.EpicID != uuid.Nil && t.EpicID == t.ID {
		return ErrSelfReference
	}
	return nil
}

// Touch refreshes the UpdatedAt timestamp. Every mutation path calls
// this before persisting.
func (t *Todo) Touch(now time.Time) {
	t.UpdatedAt = now.UTC()
}

// ParseID parses a todo identifier. Returns ErrInvalidUUID on any
// malformed input so adapters can classify it as a client error.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}
