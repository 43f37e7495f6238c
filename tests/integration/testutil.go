// Package integration exercises the public dayboard API end to end:
// the SQLite store, the todo service, and JSONL persistence across
// store restarts.
package integration

import (
	"testing"

	"github.com/mesh-intelligence/dayboard/pkg/sqlite"
	"github.com/mesh-intelligence/dayboard/pkg/todo"
	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// TestEnv bundles an attached store and service over a temp data
// directory.
type TestEnv struct {
	t       *testing.T
	DataDir string
	Store   types.Store
	Service *todo.Service
}

// NewTestEnv attaches a store over a fresh temp directory and registers
// cleanup.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return newEnvAt(t, t.TempDir())
}

func newEnvAt(t *testing.T, dataDir string) *TestEnv {
	t.Helper()

	store := sqlite.NewStore()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	if err := store.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { store.Detach() })

	return &TestEnv{
		t:       t,
		DataDir: dataDir,
		Store:   store,
		Service: todo.NewService(store),
	}
}

// Restart detaches the current store and attaches a fresh one over the
// same data directory, forcing a JSONL reload.
func (e *TestEnv) Restart() {
	e.t.Helper()

	if err := e.Store.Detach(); err != nil {
		e.t.Fatalf("Detach failed: %v", err)
	}
	fresh := newEnvAt(e.t, e.DataDir)
	e.Store = fresh.Store
	e.Service = fresh.Service
}

// MustAdd creates a todo and fails the test on error.
func (e *TestEnv) MustAdd(p todo.AddParams) *types.Todo {
	e.t.Helper()
	created, err := e.Service.Add(p)
	if err != nil {
		e.t.Fatalf("Add(%q) failed: %v", p.Title, err)
	}
	return created
}
