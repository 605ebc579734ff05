// Package sqlite implements the metadata store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/bnema/hoard/internal/domain"
)

const (
	// DBFilename is the default database file name inside the data directory.
	DBFilename = "hoard.db"

	pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)

// Store is the SQLite metadata store. Every write unit runs in its own
// transaction under a single mutex shared by all callers.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Open opens or creates the database at dir/file and bootstraps the schema.
func Open(ctx context.Context, dir, file string) (*Store, error) {
	if file == "" {
		file = DBFilename
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create database directory: %w", domain.ErrStore, err)
	}

	path := filepath.Join(dir, file)
	log.Debug("Opening database", "path", path)

	db, err := sql.Open("sqlite", "file:"+path+"?"+pragmas)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrStore, path, err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.bootstrap(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction holding the write lock. The transaction is
// rolled back when fn fails.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %w", domain.ErrStore, op, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warn("Rollback failed", "op", op, "error", rbErr)
		}
		if errors.Is(err, domain.ErrStore) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %w", domain.ErrStore, op, err)
	}
	return nil
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
