// Package sqlite provides the public factory for the SQLite-backed
// store while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/dayboard/internal/sqlite"
	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".dayboard-db",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewStore()
}
