// Package sqlite implements the SQLite storage backend for dayboard.
// SQLite is the query engine; todos.jsonl in the data directory is the
// durable source of truth, loaded at Attach and rewritten atomically
// after every mutation.
package sqlite

// Schema DDL for the todos table.
const createTodos = `CREATE TABLE todos (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    status TEXT NOT NULL,
    scheduled_for TEXT,
    order_index INTEGER NOT NULL DEFAULT 0,
    notes TEXT,
    project TEXT,
    epic_id TEXT,
    backlog_column INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// Index DDL for the partition and reference queries.
const (
	idxTodosScope   = `CREATE INDEX idx_todos_scope ON todos(scheduled_for, status, order_index);`
	idxTodosEpic    = `CREATE INDEX idx_todos_epic ON todos(epic_id);`
	idxTodosProject = `CREATE INDEX idx_todos_project ON todos(project);`
)

// schemaDDL lists all statements executed at Attach, in order.
var schemaDDL = []string{
	createTodos,
	idxTodosScope,
	idxTodosEpic,
	idxTodosProject,
}
