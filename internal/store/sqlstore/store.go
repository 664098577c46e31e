// Package sqlstore implements the catalog store on top of a relational
// engine. One set of queries serves both the hosted Postgres backend and the
// embedded SQLite backend; the only dialect differences are the placeholder
// syntax (handled by rebind) and the connection setup (handled by the
// backend selector).
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Dialect selects the placeholder convention of the underlying engine.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Store provides relational persistence for apps, badges, users and
// settings.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New constructs a Store over an open connection.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Name identifies the backend for startup logging.
func (s *Store) Name() string {
	return string(s.dialect)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// schemaStatements is the minimum relational shape, written in the portable
// subset both engines accept (TEXT/INTEGER/REAL columns, RFC3339 text
// timestamps, 0/1 flag columns).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_banned INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS apps (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		developer TEXT NOT NULL,
		category TEXT NOT NULL,
		rating REAL NOT NULL,
		description TEXT NOT NULL,
		icon TEXT NOT NULL,
		download_url TEXT NOT NULL,
		is_hot INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS badges (
		app_id TEXT NOT NULL REFERENCES apps (id),
		badge_type TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (app_id, badge_type)
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// EnsureSchema creates the four relations if they do not already exist.
// Safe to invoke on every process start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// rebind translates the $n placeholders the queries are written with into
// the ?n convention when the embedded engine is active.
func (s *Store) rebind(query string) string {
	if s.dialect == DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", raw, err)
	}
	return t, nil
}
