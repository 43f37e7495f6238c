// Tests for JSONL persistence: the file is the source of truth and must
// survive malformed edits and round-trips.
package sqlite

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

func TestJSONLWrittenOnMutation(t *testing.T) {
	s, dataDir := newAttachedStore(t)

	todo := newTodo("Tracked in JSONL")
	if err := s.Insert(todo); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	records := readJSONLFile(t, dataDir)
	if len(records) != 1 {
		t.Fatalf("todos.jsonl has %d records, want 1", len(records))
	}
	if records[0]["id"] != todo.ID.String() {
		t.Errorf("record id = %v, want %s", records[0]["id"], todo.ID)
	}
	if records[0]["title"] != "Tracked in JSONL" {
		t.Errorf("record title = %v", records[0]["title"])
	}
	// Unset optionals serialize as explicit nulls.
	for _, key := range []string{"scheduled_for", "notes", "project", "epic_id"} {
		v, ok := records[0][key]
		if !ok {
			t.Errorf("record missing key %q", key)
			continue
		}
		if v != nil {
			t.Errorf("record %s = %v, want null", key, v)
		}
	}

	if err := s.Delete(todo.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	records = readJSONLFile(t, dataDir)
	if len(records) != 0 {
		t.Errorf("todos.jsonl has %d records after delete, want 0", len(records))
	}
}

func TestJSONLOptionalFieldsRoundTrip(t *testing.T) {
	s, dataDir := newAttachedStore(t)

	day := types.NewDate(2026, 8, 25)
	epic := newTodo("Epic")
	child := newTodo("Child")
	child.ScheduledFor = &day
	child.Notes = "some notes"
	child.Project = "home"
	child.EpicID = epic.ID
	child.BacklogColumn = 1

	for _, todo := range []*types.Todo{epic, child} {
		if err := s.Insert(todo); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	s2 := NewStore()
	if err := s2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer s2.Detach()

	got, err := s2.Get(child.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ScheduledFor == nil || !got.ScheduledFor.Equal(day) {
		t.Errorf("scheduled_for = %v, want %v", got.ScheduledFor, day)
	}
	if got.Notes != "some notes" || got.Project != "home" {
		t.Errorf("notes/project = %q/%q", got.Notes, got.Project)
	}
	if got.EpicID != epic.ID {
		t.Errorf("epic_id = %s, want %s", got.EpicID, epic.ID)
	}
	if got.BacklogColumn != 1 {
		t.Errorf("backlog_column = %d, want 1", got.BacklogColumn)
	}
}

func TestJSONLSkipsMalformedLines(t *testing.T) {
	s, dataDir := newAttachedStore(t)

	keeper := newTodo("Keeper")
	if err := s.Insert(keeper); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Simulate a hand-edited file with garbage lines.
	path := todosJSONLPath(dataDir)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading todos.jsonl: %v", err)
	}
	data = append(data, []byte("this is not json\n\n{broken\n")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing todos.jsonl: %v", err)
	}

	s2 := NewStore()
	if err := s2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		t.Fatalf("Attach over edited file failed: %v", err)
	}
	defer s2.Detach()

	todos, err := s2.List(types.ListOptions{Scope: types.ScopeBacklog(), IncludeDone: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != keeper.ID {
		t.Errorf("loaded %d todos, want just the valid record", len(todos))
	}
}

func TestInitTodosJSONL(t *testing.T) {
	dataDir := t.TempDir()

	if err := initTodosJSONL(dataDir); err != nil {
		t.Fatalf("initTodosJSONL failed: %v", err)
	}
	info, err := os.Stat(todosJSONLPath(dataDir))
	if err != nil {
		t.Fatalf("stat todos.jsonl: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("fresh todos.jsonl has size %d, want 0", info.Size())
	}

	// Existing file is left alone.
	if err := os.WriteFile(todosJSONLPath(dataDir), []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("writing todos.jsonl: %v", err)
	}
	if err := initTodosJSONL(dataDir); err != nil {
		t.Fatalf("second initTodosJSONL failed: %v", err)
	}
	data, err := os.ReadFile(todosJSONLPath(dataDir))
	if err != nil {
		t.Fatalf("reading todos.jsonl: %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("existing file overwritten: %q", data)
	}
}

func TestWriteJSONLAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jsonl")

	records := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":2}`),
	}
	if err := writeJSONL(path, records); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	got, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d records, want 2", len(got))
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only out.jsonl", len(entries))
	}
}

// readJSONLFile parses every line of todos.jsonl into a generic map.
func readJSONLFile(t *testing.T, dataDir string) []map[string]any {
	t.Helper()

	f, err := os.Open(todosJSONLPath(dataDir))
	if err != nil {
		t.Fatalf("opening todos.jsonl: %v", err)
	}
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("unmarshaling line: %v", err)
		}
		records = append(records, obj)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanning todos.jsonl: %v", err)
	}
	return records
}
