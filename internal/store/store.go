package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// migrations upgrade an existing render log. Entry i moves user_version
// from i to i+1; the log is at version len(migrations) once opened.
var migrations = []string{
	// v1: history by tree, whatever the layout options.
	`CREATE INDEX IF NOT EXISTS idx_renders_tree_hash ON renders(tree_hash)`,
}

// connection settings applied to every opened log.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// Store is an open render log.
type Store struct {
	db *sql.DB
}

// Open opens the render log at path, creating the file and the renders
// table when missing and bringing an older log up to date.
// ":memory:" gives a private in-memory log.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open render log %s: %w", path, err)
	}
	// SQLite has a single writer; one connection also keeps ":memory:"
	// logs from splitting across connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initialize(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("open render log %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func initialize(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return migrate(db)
}

func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	for ; version < len(migrations); version++ {
		if _, err := db.Exec(migrations[version]); err != nil {
			return fmt.Errorf("migrate to v%d: %w", version+1, err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("write user_version: %w", err)
	}
	return nil
}

// Close closes the log. Closing a zero Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// verifyPragma reports whether pragma name currently reads as expected.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
