// Shared helpers for dayboard CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mesh-intelligence/dayboard/pkg/sqlite"
	"github.com/mesh-intelligence/dayboard/pkg/todo"
	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// openService resolves the data directory, attaches a SQLite store, and
// wraps it in a Service. The caller must defer the returned cleanup.
func openService() (*todo.Service, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := store.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}

	return todo.NewService(store), func() { _ = store.Detach() }, nil
}

// today returns the current calendar date in the local timezone. The
// CLI owns the ambient clock; the core always receives today
// explicitly.
func today() types.Date {
	return types.DateOf(time.Now())
}

// resolveTodo resolves a command argument to a todo, accepting either
// an id or an exact title.
func resolveTodo(svc *todo.Service, arg string) (*types.Todo, error) {
	if id, err := types.ParseID(arg); err == nil {
		return svc.Get(id)
	}
	t, err := svc.FindByTitleOrID(arg)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("no todo matches %q", arg)
	}
	return t, nil
}

// parseScope parses a scope argument: "today", "backlog" (or
// "someday"), or a YYYY-MM-DD date.
func parseScope(s string, today types.Date) (types.Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return types.ScopeDay(today), nil
	case "backlog", "someday":
		return types.ScopeBacklog(), nil
	default:
		day, err := types.ParseDate(strings.TrimSpace(s))
		if err != nil {
			return types.Scope{}, fmt.Errorf("invalid scope %q, expected 'today', 'backlog', or YYYY-MM-DD", s)
		}
		return types.ScopeDay(day), nil
	}
}

// todoJSON is the CLI's JSON projection of a todo.
type todoJSON struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	ScheduledFor  *string `json:"scheduled_for"`
	OrderIndex    int64   `json:"order_index"`
	Notes         string  `json:"notes,omitempty"`
	Project       string  `json:"project,omitempty"`
	EpicID        *string `json:"epic_id,omitempty"`
	BacklogColumn int     `json:"backlog_column"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func toTodoJSON(t *types.Todo) todoJSON {
	out := todoJSON{
		ID:            t.ID.String(),
		Title:         t.Title,
		Status:        t.Status,
		OrderIndex:    t.OrderIndex,
		Notes:         t.Notes,
		Project:       t.Project,
		BacklogColumn: t.BacklogColumn,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
	if t.ScheduledFor != nil {
		s := t.ScheduledFor.String()
		out.ScheduledFor = &s
	}
	if t.EpicID != uuid.Nil {
		s := t.EpicID.String()
		out.EpicID = &s
	}
	return out
}

// printTodo renders one todo, honoring the --json flag.
func printTodo(t *types.Todo) error {
	if flagJSON {
		return printJSON(toTodoJSON(t))
	}
	fmt.Printf("%s  %s [%s]\n", shortID(t.ID), t.Title, t.Status)
	fmt.Println("  scope:  ", t.Scope())
	if t.Project != "" {
		fmt.Println("  project:", t.Project)
	}
	if t.EpicID != uuid.Nil {
		fmt.Println("  epic:   ", t.EpicID)
	}
	if t.Notes != "" {
		fmt.Println("  notes:  ", t.Notes)
	}
	return nil
}

// printTodoTable renders todos as a table with epic titles resolved in
// one batched lookup.
func printTodoTable(svc *todo.Service, todos []*types.Todo) error {
	if flagJSON {
		out := make([]todoJSON, 0, len(todos))
		for _, t := range todos {
			out = append(out, toTodoJSON(t))
		}
		return printJSON(out)
	}

	epicIDs := make([]uuid.UUID, 0, len(todos))
	seen := make(map[uuid.UUID]bool)
	for _, t := range todos {
		if t.EpicID != uuid.Nil && !seen[t.EpicID] {
			seen[t.EpicID] = true
			epicIDs = append(epicIDs, t.EpicID)
		}
	}
	epicTitles, err := svc.EpicTitles(epicIDs)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Title", "Status", "Scope", "Project", "Epic"})
	for _, t := range todos {
		epic := ""
		if t.EpicID != uuid.Nil {
			epic = epicTitles[t.EpicID]
		}
		tw.AppendRow(table.Row{shortID(t.ID), t.Title, t.Status, t.Scope().String(), t.Project, epic})
	}
	tw.Render()
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// shortID returns the first UUID group, enough to disambiguate in a
// personal board.
func shortID(id uuid.UUID) string {
	s := id.String()
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}
