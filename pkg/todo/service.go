package todo

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// Service orchestrates todo operations against a Store. Every call is
// load-then-write with no cross-call transaction; validation runs
// before any mutation, so a rejected operation persists nothing.
// Operations that depend on "today" take it as an explicit argument.
type Service struct {
	store types.Store
}

// NewService creates a Service over the given store.
func NewService(store types.Store) *Service {
	return &Service{store: store}
}

// AddParams carries the caller-supplied fields for Add. A nil
// ScheduledFor targets the backlog. EpicID of uuid.Nil means no epic.
type AddParams struct {
	Title        string
	ScheduledFor *types.Date
	Notes        string
	Project      string
	EpicID       uuid.UUID
}

// Add creates a todo at the top of the pending partition of its scope.
// The project tag is resolved against the epic link before anything is
// written.
func (s *Service) Add(p AddParams) (*types.Todo, error) {
	if p.Title == "" {
		return nil, types.ErrEmptyTitle
	}

	project, err := s.resolveEpicProject(p.EpicID, p.Project)
	if err != nil {
		return nil, err
	}

	var scheduled *types.Date
	scope := types.ScopeBacklog()
	if p.ScheduledFor != nil {
		day := *p.ScheduledFor
		scheduled = &day
		scope = types.ScopeDay(day)
	}

	idx, err := s.topIndex(scope)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &types.Todo{
		ID:           newID(),
		Title:        p.Title,
		Status:       types.StatusPending,
		ScheduledFor: scheduled,
		OrderIndex:   idx,
		Notes:        p.Notes,
		Project:      project,
		EpicID:       p.EpicID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Insert(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get loads a todo by id.
func (s *Service) Get(id uuid.UUID) (*types.Todo, error) {
	return s.store.Get(id)
}

// List returns todos matching opts, sorted pending-before-done then by
// order index ascending.
func (s *Service) List(opts types.ListOptions) ([]*types.Todo, error) {
	return s.store.List(opts)
}

// Delete removes a todo. A todo referenced as an epic by live children
// cannot be deleted; the error carries the exact reference count.
func (s *Service) Delete(id uuid.UUID) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}

	children, err := s.store.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return &types.HasChildrenError{Count: children}
	}

	return s.store.Delete(id)
}

// MarkDone completes a todo. Already-done todos are returned unchanged.
// A backlog todo is backfilled into today's column, and the index is
// recomputed so the todo sorts after everything already in the scope.
func (s *Service) MarkDone(id uuid.UUID, today types.Date) (*types.Todo, error) {
	t, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if t.Done() {
		return t, nil
	}

	scheduled := t.ScheduledFor
	if scheduled == nil {
		day := today
		scheduled = &day
	}

	idx, err := s.bottomDoneIndex(types.ScopeDay(*scheduled))
	if err != nil {
		return nil, err
	}

	t.Status = types.StatusDone
	t.ScheduledFor = scheduled
	t.OrderIndex = idx
	t.Touch(time.Now())

	if err := s.store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// MarkPending reverts a completed todo. Already-pending todos are
// returned unchanged. The todo re-enters the top of the pending
// partition of its unchanged scope.
func (s *Service) MarkPending(id uuid.UUID) (*types.Todo, error) {
	t, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !t.Done() {
		return t, nil
	}

	idx, err := s.topIndex(t.Scope())
	if err != nil {
		return nil, err
	}

	t.Status = types.StatusPending
	t.OrderIndex = idx
	t.Touch(time.Now())

	if err := s.store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// MoveToScope relocates a todo to another column, placing it at the top
// or bottom. Bottom placement lands in the done or pending partition
// depending on the todo's current status.
func (s *Service) MoveToScope(id uuid.UUID, scope types.Scope, placement types.MovePlacement) (*types.Todo, error) {
	t, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	var idx int64
	switch {
	case placement == types.PlaceTop:
		idx, err = s.topIndex(scope)
	case t.Done():
		idx, err = s.bottomDoneIndex(scope)
	default:
		idx, err = s.bottomPendingIndex(scope)
	}
	if err != nil {
		return nil, err
	}

	if day, ok := scope.Day(); ok {
		d := day
		t.ScheduledFor = &d
	} else {
		t.ScheduledFor = nil
	}
	t.OrderIndex = idx
	t.Touch(time.Now())

	if err := s.store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// SetBacklogColumn assigns the backlog column (0..3) of a todo.
func (s *Service) SetBacklogColumn(id uuid.UUID, column int) (*types.Todo, error) {
	if column < types.MinBacklogColumn || column > types.MaxBacklogColumn {
		return nil, types.ErrInvalidBacklogColumn
	}

	t, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	t.BacklogColumn = column
	t.Touch(time.Now())

	if err := s.store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTitle replaces the title of a todo.
func (s *Service) UpdateTitle(id uuid.UUID, title string) (*types.Todo, error) {
	if title == "" {
		return nil, types.ErrEmptyTitle
	}
	return s.mutate(id, func(t *types.Todo) error {
		t.Title = title
		return nil
	})
}

// UpdateNotes replaces the notes of a todo. Empty clears them.
func (s *Service) UpdateNotes(id uuid.UUID, notes string) (*types.Todo, error) {
	return s.mutate(id, func(t *types.Todo) error {
		t.Notes = notes
		return nil
	})
}

// UpdateScheduledFor reschedules a todo. A nil date moves it to the
// backlog. The order index is left as-is; use MoveToScope for placed
// moves.
func (s *Service) UpdateScheduledFor(id uuid.UUID, scheduled *types.Date) (*types.Todo, error) {
	return s.mutate(id, func(t *types.Todo) error {
		if scheduled == nil {
			t.ScheduledFor = nil
			return nil
		}
		day := *scheduled
		t.ScheduledFor = &day
		return nil
	})
}

// UpdateProject replaces the project tag. A todo linked to an epic is
// re-validated against the epic's current project, which may itself
// have changed since the link was made.
func (s *Service) UpdateProject(id uuid.UUID, project string) (*types.Todo, error) {
	return s.mutate(id, func(t *types.Todo) error {
		resolved, err := s.resolveEpicProject(t.EpicID, project)
		if err != nil {
			return err
		}
		t.Project = resolved
		return nil
	})
}

// UpdateEpicID re-links a todo to another epic, or clears the link with
// uuid.Nil. Linking re-runs the same resolution as a fresh creation:
// the epic must exist, and the todo inherits the epic's current
// project, silently replacing its own tag. Clearing the link keeps the
// project as-is.
func (s *Service) UpdateEpicID(id uuid.UUID, epicID uuid.UUID) (*types.Todo, error) {
	if epicID == id {
		return nil, types.ErrSelfReference
	}
	return s.mutate(id, func(t *types.Todo) error {
		if epicID == uuid.Nil {
			t.EpicID = uuid.Nil
			return nil
		}
		project, err := s.resolveEpicProject(epicID, "")
		if err != nil {
			return err
		}
		t.EpicID = epicID
		t.Project = project
		return nil
	})
}

// EpicTitles returns the titles for the given epic ids in one query, so
// listing the children of many epics does not fan out into per-child
// lookups. Missing ids are absent from the result.
func (s *Service) EpicTitles(ids []uuid.UUID) (map[uuid.UUID]string, error) {
	return s.store.TitlesByID(ids)
}

// FindByTitleOrID resolves a todo by id or exact title. Returns nil
// with no error when nothing matches, and an error when the title is
// ambiguous.
func (s *Service) FindByTitleOrID(needle string) (*types.Todo, error) {
	matches, err := s.store.FindByTitleOrID(needle)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("multiple todos match %q, use the id instead", needle)
	}
}

// Stats summarizes completion counts for a group of todos.
type Stats struct {
	Total     int64
	Completed int64
	Remaining int64
}

// ProjectStats returns completion counts for a project tag.
func (s *Service) ProjectStats(project string) (Stats, error) {
	total, done, err := s.store.CountByProject(project)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Total: total, Completed: done, Remaining: total - done}, nil
}

// EpicStats returns completion counts for the children of an epic.
func (s *Service) EpicStats(epicID uuid.UUID) (Stats, error) {
	total, done, err := s.store.CountByEpic(epicID)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Total: total, Completed: done, Remaining: total - done}, nil
}

// mutate loads a todo, applies fn, refreshes UpdatedAt, and persists.
// Errors from fn abort before any write.
func (s *Service) mutate(id uuid.UUID, fn func(*types.Todo) error) (*types.Todo, error) {
	t, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(t); err != nil {
		return nil, err
	}
	t.Touch(time.Now())
	if err := s.store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// newID generates a UUID v7 for new todos, falling back to v4 if v7
// generation fails.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
