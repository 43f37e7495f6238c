// This file implements the todo row operations: hydration between
// SQLite rows and *types.Todo, the partition queries backing the
// ordering policy, and JSONL persistence after each mutation.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// todoColumns is the canonical column list for todo queries.
const todoColumns = "id, title, status, scheduled_for, order_index, notes, project, epic_id, backlog_column, created_at, updated_at"

// Insert persists a new todo row and rewrites todos.jsonl.
func (s *Store) Insert(t *types.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT INTO todos ("+todoColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		dehydrateTodo(t)...,
	)
	if err != nil {
		return dbError("inserting todo", err)
	}

	return s.persistTodosJSONL()
}

// Update rewrites the row for t.ID and rewrites todos.jsonl. Returns
// *NotFoundError if the row does not exist.
func (s *Store) Update(t *types.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	args := dehydrateTodo(t)
	// Move the id to the WHERE position.
	args = append(args[1:], args[0])
	res, err := s.db.Exec(
		`UPDATE todos SET title = ?, status = ?, scheduled_for = ?, order_index = ?,
		 notes = ?, project = ?, epic_id = ?, backlog_column = ?, created_at = ?, updated_at = ?
		 WHERE id = ?`,
		args...,
	)
	if err != nil {
		return dbError("updating todo", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("updating todo", err)
	}
	if n == 0 {
		return &types.NotFoundError{ID: t.ID}
	}

	return s.persistTodosJSONL()
}

// Get loads a todo by ID. Returns *NotFoundError if missing.
func (s *Store) Get(id uuid.UUID) (*types.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow("SELECT "+todoColumns+" FROM todos WHERE id = ?", id.String())
	t, err := hydrateTodo(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &types.NotFoundError{ID: id}
		}
		return nil, dbError(fmt.Sprintf("getting todo %s", id), err)
	}
	return t, nil
}

// Delete removes the row for id and rewrites todos.jsonl. Returns
// *NotFoundError if missing.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM todos WHERE id = ?", id.String())
	if err != nil {
		return dbError("deleting todo", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("deleting todo", err)
	}
	if n == 0 {
		return &types.NotFoundError{ID: id}
	}

	return s.persistTodosJSONL()
}

// List returns todos matching opts, sorted by the composite display
// key: pending before done, then order_index ascending.
func (s *Store) List(opts types.ListOptions) ([]*types.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	cond, args := scopeCondition(opts.Scope)
	conditions := []string{cond}

	if !opts.IncludeDone {
		conditions = append(conditions, "status != '"+types.StatusDone+"'")
	}

	if name, ok := opts.Project.Equals(); ok {
		conditions = append(conditions, "project = ?")
		args = append(args, name)
	} else if opts.Project.IsNull() {
		conditions = append(conditions, "project IS NULL")
	}

	if opts.EpicID != uuid.Nil {
		conditions = append(conditions, "epic_id = ?")
		args = append(args, opts.EpicID.String())
	}

	query := "SELECT " + todoColumns + " FROM todos WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY CASE WHEN status = '" + types.StatusDone + "' THEN 1 ELSE 0 END, order_index ASC"

	return s.queryTodos(query, args...)
}

// Column returns the todos in one (scope, status) partition sorted by
// order_index ascending.
func (s *Store) Column(scope types.Scope, status types.StatusFilter) ([]*types.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	cond, args := scopeCondition(scope)
	conditions := []string{cond}
	if sc, ok := statusCondition(status); ok {
		conditions = append(conditions, sc)
	}

	query := "SELECT " + todoColumns + " FROM todos WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY order_index ASC"

	return s.queryTodos(query, args...)
}

// MinOrderIndex returns the smallest order_index in the partition, or
// ok=false when the partition is empty.
func (s *Store) MinOrderIndex(scope types.Scope, status types.StatusFilter) (int64, bool, error) {
	return s.orderIndexExtremum("MIN", scope, status)
}

// MaxOrderIndex returns the largest order_index in the partition, or
// ok=false when the partition is empty.
func (s *Store) MaxOrderIndex(scope types.Scope, status types.StatusFilter) (int64, bool, error) {
	return s.orderIndexExtremum("MAX", scope, status)
}

func (s *Store) orderIndexExtremum(fn string, scope types.Scope, status types.StatusFilter) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return 0, false, err
	}

	cond, args := scopeCondition(scope)
	conditions := []string{cond}
	if sc, ok := statusCondition(status); ok {
		conditions = append(conditions, sc)
	}

	query := "SELECT " + fn + "(order_index) FROM todos WHERE " + strings.Join(conditions, " AND ")

	var idx sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&idx); err != nil {
		return 0, false, dbError("querying order index extremum", err)
	}
	return idx.Int64, idx.Valid, nil
}

// Overdue returns non-done todos scheduled strictly before today,
// sorted by order_index ascending. The YYYY-MM-DD text encoding makes
// the lexicographic comparison a date comparison.
func (s *Store) Overdue(today types.Date) ([]*types.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	query := "SELECT " + todoColumns + ` FROM todos
		WHERE scheduled_for IS NOT NULL AND scheduled_for < ? AND status != ?
		ORDER BY order_index ASC`

	return s.queryTodos(query, today.String(), types.StatusDone)
}

// CountChildren returns the number of todos whose epic_id is epicID.
func (s *Store) CountChildren(epicID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return 0, err
	}

	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM todos WHERE epic_id = ?", epicID.String()).Scan(&n)
	if err != nil {
		return 0, dbError("counting children", err)
	}
	return n, nil
}

// CountByProject returns total and done counts for a project tag.
func (s *Store) CountByProject(project string) (int64, int64, error) {
	return s.statusCounts("project = ?", project)
}

// CountByEpic returns total and done counts for the children of an epic.
func (s *Store) CountByEpic(epicID uuid.UUID) (int64, int64, error) {
	return s.statusCounts("epic_id = ?", epicID.String())
}

func (s *Store) statusCounts(cond string, arg any) (int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return 0, 0, err
	}

	query := "SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) FROM todos WHERE " + cond

	var total, done int64
	if err := s.db.QueryRow(query, types.StatusDone, arg).Scan(&total, &done); err != nil {
		return 0, 0, dbError("counting todos", err)
	}
	return total, done, nil
}

// TitlesByID returns the titles for the given IDs in one query. IDs
// with no row are absent from the result.
func (s *Store) TitlesByID(ids []uuid.UUID) (map[uuid.UUID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	titles := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id.String()
	}

	rows, err := s.db.Query(
		"SELECT id, title FROM todos WHERE id IN ("+strings.Join(placeholders, ", ")+")",
		args...,
	)
	if err != nil {
		return nil, dbError("querying titles", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rawID, title string
		if err := rows.Scan(&rawID, &title); err != nil {
			return nil, dbError("scanning title", err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, dbError("parsing stored id", err)
		}
		titles[id] = title
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterating titles", err)
	}
	return titles, nil
}

// FindByTitleOrID returns todos whose ID or exact title matches s.
func (s *Store) FindByTitleOrID(needle string) ([]*types.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	query := "SELECT " + todoColumns + " FROM todos WHERE id = ? OR title = ? ORDER BY created_at ASC"
	return s.queryTodos(query, needle, needle)
}

// queryTodos runs a SELECT over todoColumns and hydrates every row.
// The caller must hold s.mu.
func (s *Store) queryTodos(query string, args ...any) ([]*types.Todo, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, dbError("querying todos", err)
	}
	defer rows.Close()

	var results []*types.Todo
	for rows.Next() {
		t, err := hydrateTodo(rows.Scan)
		if err != nil {
			return nil, dbError("hydrating todo", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterating todos", err)
	}
	return results, nil
}

// scopeCondition returns the WHERE fragment selecting one column.
func scopeCondition(scope types.Scope) (string, []any) {
	if day, ok := scope.Day(); ok {
		return "scheduled_for = ?", []any{day.String()}
	}
	return "scheduled_for IS NULL", nil
}

// statusCondition returns the WHERE fragment for a status filter, or
// ok=false for FilterAny.
func statusCondition(f types.StatusFilter) (string, bool) {
	switch f {
	case types.FilterPending:
		return "status != '" + types.StatusDone + "'", true
	case types.FilterDone:
		return "status = '" + types.StatusDone + "'", true
	default:
		return "", false
	}
}

// dehydrateTodo converts a todo into the argument list matching
// todoColumns. Optional fields map to NULL.
func dehydrateTodo(t *types.Todo) []any {
	var scheduled any
	if t.ScheduledFor != nil {
		scheduled = t.ScheduledFor.String()
	}
	var notes any
	if t.Notes != "" {
		notes = t.Notes
	}
	var project any
	if t.Project != "" {
		project = t.Project
	}
	var epicID any
	if t.EpicID != uuid.Nil {
		epicID = t.EpicID.String()
	}

	return []any{
		t.ID.String(),
		t.Title,
		t.Status,
		scheduled,
		t.OrderIndex,
		notes,
		project,
		epicID,
		t.BacklogColumn,
		t.CreatedAt.UTC().Format(time.RFC3339Nano),
		t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// hydrateTodo converts one SQLite row into a *types.Todo. scan is
// either (*sql.Row).Scan or (*sql.Rows).Scan.
func hydrateTodo(scan func(...any) error) (*types.Todo, error) {
	var (
		t             types.Todo
		rawID         string
		scheduled     sql.NullString
		notes         sql.NullString
		project       sql.NullString
		epicID        sql.NullString
		backlogColumn int64
		createdAt     string
		updatedAt     string
	)

	err := scan(&rawID, &t.Title, &t.Status, &scheduled, &t.OrderIndex,
		&notes, &project, &epicID, &backlogColumn, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	t.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parsing id: %w", err)
	}
	if scheduled.Valid {
		day, err := types.ParseDate(scheduled.String)
		if err != nil {
			return nil, fmt.Errorf("parsing scheduled_for: %w", err)
		}
		t.ScheduledFor = &day
	}
	t.Notes = notes.String
	t.Project = project.String
	if epicID.Valid {
		t.EpicID, err = uuid.Parse(epicID.String)
		if err != nil {
			return nil, fmt.Errorf("parsing epic_id: %w", err)
		}
	}
	t.BacklogColumn = int(backlogColumn)
	t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &t, nil
}

// todoJSONLRecord is the line format for todos.jsonl. Optional fields
// serialize as null so the file diffs cleanly under version control.
type todoJSONLRecord struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	ScheduledFor  *string `json:"scheduled_for"`
	OrderIndex    int64   `json:"order_index"`
	Notes         *string `json:"notes"`
	Project       *string `json:"project"`
	EpicID        *string `json:"epic_id"`
	BacklogColumn int64   `json:"backlog_column"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// persistTodosJSONL reads all todos from SQLite and writes them to
// todos.jsonl using the atomic write pattern. The caller must hold
// s.mu for writing.
func (s *Store) persistTodosJSONL() error {
	rows, err := s.db.Query("SELECT " + todoColumns + " FROM todos ORDER BY created_at ASC")
	if err != nil {
		return dbError("querying todos for JSONL", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var (
			id, title, status, createdAt, updatedAt string
			scheduled, notes, project, epicID       sql.NullString
			orderIndex, backlogColumn               int64
		)
		err := rows.Scan(&id, &title, &status, &scheduled, &orderIndex,
			&notes, &project, &epicID, &backlogColumn, &createdAt, &updatedAt)
		if err != nil {
			return dbError("scanning todo for JSONL", err)
		}

		rec := todoJSONLRecord{
			ID:            id,
			Title:         title,
			Status:        status,
			ScheduledFor:  nullableString(scheduled),
			OrderIndex:    orderIndex,
			Notes:         nullableString(notes),
			Project:       nullableString(project),
			EpicID:        nullableString(epicID),
			BacklogColumn: backlogColumn,
			CreatedAt:     createdAt,
			UpdatedAt:     updatedAt,
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return dbError("marshaling todo for JSONL", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return dbError("iterating todos for JSONL", err)
	}

	if err := writeJSONL(todosJSONLPath(s.config.DataDir), records); err != nil {
		return dbError("persisting todos.jsonl", err)
	}
	return nil
}

// nullableString maps a NULL column to a nil pointer for JSONL output.
func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
