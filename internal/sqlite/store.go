package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/dayboard/pkg/types"
)

// dbFileName is the SQLite database rebuilt from JSONL at every Attach.
const dbFileName = "dayboard.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements types.Store using SQLite as the query engine and
// todos.jsonl as the source of truth.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates
// the data directory if needed, rebuilds the SQLite database from
// todos.jsonl, and prepares the schema. Returns ErrAlreadyAttached if
// already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database file is a rebuildable cache; remove any stale copy
	// so the schema is always fresh.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	if err := initTodosJSONL(dataDir); err != nil {
		db.Close()
		return err
	}

	loaded, err := loadTodosJSONL(db, dataDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	s.db = db
	s.config = config
	s.config.DataDir = dataDir
	s.attached = true

	log.Debug().Str("data_dir", dataDir).Int("todos", loaded).Msg("store attached")

	return nil
}

// Detach releases the SQLite connection. Idempotent; after Detach all
// operations return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}

	s.attached = false
	log.Debug().Msg("store detached")

	return nil
}

// guard returns ErrStoreDetached when the store is not attached. The
// caller must hold s.mu (read or write).
func (s *Store) guard() error {
	if !s.attached {
		return types.ErrStoreDetached
	}
	return nil
}

// dbError wraps an infrastructure failure in the opaque Database error
// the service contract promises.
func dbError(msg string, err error) error {
	return &types.DatabaseError{Err: fmt.Errorf("%s: %w", msg, err)}
}
