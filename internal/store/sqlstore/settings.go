package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/acuestore/apiserver/internal/store"
)

func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM settings WHERE key = $1`
	var value string
	if err := s.db.QueryRowContext(ctx, s.rebind(query), key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	_, err := s.db.ExecContext(ctx, s.rebind(query), key, value)
	return err
}
