package types

import "github.com/google/uuid"

// Store is the persistence collaborator for the todo service. Callers
// attach to a backend, operate on todos, and detach when done.
//
// Mutating methods persist a single row; the service layer issues the
// multiple round trips (load, compute index, write) that one operation
// may need, without any cross-call transaction. Query methods that
// return slices order results by OrderIndex ascending unless stated
// otherwise.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the data directory if needed. Returns ErrAlreadyAttached
	// if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return ErrStoreDetached.
	Detach() error

	// Insert persists a new todo row.
	Insert(t *Todo) error

	// Update rewrites the row for t.ID. Returns *NotFoundError if the
	// row does not exist.
	Update(t *Todo) error

	// Get loads a todo by ID. Returns *NotFoundError if missing.
	Get(id uuid.UUID) (*Todo, error)

	// Delete removes the row for id. Returns *NotFoundError if missing.
	// Referential guards (epic children) are the service's concern.
	Delete(id uuid.UUID) error

	// List returns todos matching opts, sorted pending-before-done then
	// OrderIndex ascending.
	List(opts ListOptions) ([]*Todo, error)

	// Column returns the todos sharing a scope and status filter,
	// sorted by OrderIndex ascending.
	Column(scope Scope, status StatusFilter) ([]*Todo, error)

	// MinOrderIndex returns the smallest OrderIndex in the partition.
	// The second return value is false when the partition is empty.
	MinOrderIndex(scope Scope, status StatusFilter) (int64, bool, error)

	// MaxOrderIndex returns the largest OrderIndex in the partition.
	// The second return value is false when the partition is empty.
	MaxOrderIndex(scope Scope, status StatusFilter) (int64, bool, error)

	// Overdue returns non-done todos scheduled strictly before today,
	// sorted by OrderIndex ascending.
	Overdue(today Date) ([]*Todo, error)

	// CountChildren returns the number of todos whose EpicID is epicID.
	CountChildren(epicID uuid.UUID) (int64, error)

	// CountByProject returns total and done counts across all scopes
	// for the given project tag.
	CountByProject(project string) (total, done int64, err error)

	// CountByEpic returns total and done counts for the children of an
	// epic across all scopes.
	CountByEpic(epicID uuid.UUID) (total, done int64, err error)

	// TitlesByID returns the titles for the given IDs in one query.
	// Missing IDs are absent from the result map.
	TitlesByID(ids []uuid.UUID) (map[uuid.UUID]string, error)

	// FindByTitleOrID returns todos whose ID or exact title matches s.
	FindByTitleOrID(s string) ([]*Todo, error)
}
