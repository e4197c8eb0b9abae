// Package sqlite implements the SQLite persistence gateway for taskdesk.
// The Backend is the sole reader and writer of the relational store: it
// owns schema creation, default-category seeding, every CRUD and aggregate
// operation, and the append-only history log. All writes run inside a
// single transaction so no partial state is ever visible.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dmaldon/taskdesk/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "taskdesk.db"

// Backend implements the persistence gateway over a local SQLite file.
// Construct with NewBackend, initialize with Attach, release with Detach.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, creates missing schema objects, and seeds
// the default categories. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return err
	}

	dbPath := filepath.Join(config.DataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	if err := seedDefaultCategories(db); err != nil {
		db.Close()
		return fmt.Errorf("seeding default categories: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	return nil
}

// Detach releases the database connection. After Detach, all operations
// return ErrNotAttached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false

	return nil
}

// handle returns the open database handle, or ErrNotAttached.
func (b *Backend) handle() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrNotAttached
	}
	return b.db, nil
}
