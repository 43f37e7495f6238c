// This file implements JSONL loading for Attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// todoLoadColumns lists the columns extracted from each JSONL record,
// in INSERT order. Unknown fields in a record are silently ignored so
// files written by newer versions still load.
var todoLoadColumns = []string{
	"id", "title", "status", "scheduled_for", "order_index",
	"notes", "project", "epic_id", "backlog_column", "created_at", "updated_at",
}

// loadTodosJSONL reads todos.jsonl from dataDir and inserts the records
// into the todos table. Loading is transactional: all records load or
// the table stays empty. Malformed lines are skipped. Returns the
// number of records loaded.
func loadTodosJSONL(db *sql.DB, dataDir string) (int, error) {
	records, err := readJSONL(todosJSONLPath(dataDir))
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", todosJSONLFile, err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	placeholders := make([]string, len(todoLoadColumns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	stmt, err := tx.Prepare(
		"INSERT INTO todos (" + joinColumns(todoLoadColumns) + ") VALUES (" + joinColumns(placeholders) + ")",
	)
	if err != nil {
		return 0, fmt.Errorf("preparing todo insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			continue
		}

		args := make([]any, len(todoLoadColumns))
		for i, col := range todoLoadColumns {
			val, ok := obj[col]
			if !ok {
				args[i] = nil
				continue
			}
			args[i] = val
		}

		if _, err := stmt.Exec(args...); err != nil {
			return 0, fmt.Errorf("inserting todo record: %w", err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}

	return loaded, nil
}

// joinColumns joins a column list with commas.
func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
