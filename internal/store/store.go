// Package store owns the durable word and deck records. All SM-2 fields,
// mastery tiers, and review dates are written through a single transactional
// path, WordRepo.RecordAnswer.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	// PostgreSQL driver, selected by DSN.
	_ "github.com/lib/pq"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database described by dsn and bootstraps the schema.
// A postgres:// URL (or a key=value connection string) selects PostgreSQL;
// anything else is treated as a SQLite file path.
func Open(dsn string) (*Store, error) {
	driver := driverFor(dsn)

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == "sqlite" {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying sqlx handle for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Words returns a WordRepo backed by this store.
func (s *Store) Words() *WordRepo {
	return &WordRepo{db: s.db, now: time.Now}
}

// Decks returns a DeckRepo backed by this store.
func (s *Store) Decks() *DeckRepo {
	return &DeckRepo{db: s.db, now: time.Now}
}

// driverFor picks the sql driver from the DSN shape.
func driverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return "postgres"
	}
	return "sqlite"
}

// applyPragmas configures SQLite for single-user durability and speed.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEXI_DB environment variable
// 2. $XDG_DATA_HOME/lexi/lexi.db
// 3. ~/.local/share/lexi/lexi.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEXI_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lexi", "lexi.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
