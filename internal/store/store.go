// Package store is the SQLite-backed repository for time entries,
// customers and configuration. The report pipeline never touches it
// directly; callers load snapshots and hand them to the pure
// aggregation functions.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at dbPath and runs
// migrations.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory store for testing.
func OpenMemory() (*Store, error) {
	return Open(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS entries (
		id           TEXT PRIMARY KEY,
		description  TEXT NOT NULL DEFAULT 'No description',
		customer     TEXT NOT NULL DEFAULT 'Unassigned',
		duration_ms  INTEGER NOT NULL DEFAULT 0 CHECK (duration_ms >= 0),
		timestamp    TEXT NOT NULL,
		type         TEXT NOT NULL DEFAULT 'manual'
	);

	CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON entries(timestamp);
	CREATE INDEX IF NOT EXISTS idx_entries_customer  ON entries(customer);

	CREATE TABLE IF NOT EXISTS customers (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL UNIQUE,
		email           TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		billing_contact TEXT NOT NULL DEFAULT '',
		billing_email   TEXT NOT NULL DEFAULT '',
		billing_phone   TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS timer (
		id          INTEGER PRIMARY KEY CHECK (id = 1),
		started_at  TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		customer    TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS config (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.timeaccount/timeaccount.db
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".timeaccount", "timeaccount.db"), nil
}
