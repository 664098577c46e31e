// Package db selects the active storage backend at process start. It tries,
// in order: hosted Postgres via DATABASE_URL, embedded SQLite at a local
// path, and the flat JSON file store. The first backend that connects wins
// for the remainder of the process lifetime; selection is never revisited.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/acuestore/apiserver/config"
	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/internal/store/filestore"
	"github.com/acuestore/apiserver/internal/store/sqlstore"
	"github.com/rs/zerolog"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	defaultPingTimeout  = 5 * time.Second
	defaultConnMaxIdle  = 2 * time.Minute
	defaultConnMaxLife  = 30 * time.Minute
	defaultMaxIdleConns = 5
	defaultMaxOpenConns = 25
)

// Connect walks the backend fallback chain and returns the first store that
// responds. Only a failure of every backend is an error.
func Connect(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		st, err := openPostgres(ctx, cfg.DatabaseURL)
		if err == nil {
			log.Info().Str("backend", st.Name()).Msg("connected to hosted database")
			return st, nil
		}
		log.Warn().Err(err).Msg("hosted database unreachable, falling back to embedded database")
	}

	if cfg.SQLitePath != "" {
		st, err := openSQLite(ctx, cfg.SQLitePath)
		if err == nil {
			log.Info().Str("backend", st.Name()).Str("path", cfg.SQLitePath).Msg("using embedded database")
			return st, nil
		}
		log.Warn().Err(err).Msg("embedded database unavailable, falling back to file storage")
	}

	fs, err := filestore.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open file store: %w", err)
	}
	log.Info().Str("backend", fs.Name()).Str("dir", cfg.DataDir).Msg("using JSON file storage")
	return fs, nil
}

func openPostgres(ctx context.Context, dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(defaultConnMaxIdle)
	db.SetConnMaxLifetime(defaultConnMaxLife)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return sqlstore.New(db, sqlstore.DialectPostgres), nil
}

func openSQLite(ctx context.Context, path string) (*sqlstore.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Low connection ceiling; SQLite serializes writers anyway.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return sqlstore.New(db, sqlstore.DialectSQLite), nil
}

func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
