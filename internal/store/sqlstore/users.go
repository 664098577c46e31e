package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
)

const userColumns = `id, username, email, password_hash, is_banned, created_at`

func (s *Store) GetUserByUsername(ctx context.Context, username string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1`
	user, err := scanUser(s.db.QueryRowContext(ctx, s.rebind(query), username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, store.ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (s *Store) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	user.CreatedAt = time.Now()

	const query = `
		INSERT INTO users (id, username, email, password_hash, is_banned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO NOTHING`
	result, err := s.db.ExecContext(
		ctx,
		s.rebind(query),
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		boolToInt(user.IsBanned),
		formatTime(user.CreatedAt),
	)
	if err != nil {
		return types.User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.User{}, err
	}
	if affected == 0 {
		return types.User{}, store.ErrDuplicate
	}
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at, username`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]types.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) SetUserBanned(ctx context.Context, username string, banned bool) error {
	const query = `UPDATE users SET is_banned = $1 WHERE username = $2`
	result, err := s.db.ExecContext(ctx, s.rebind(query), boolToInt(banned), username)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanUser(scanner interface{ Scan(dest ...any) error }) (types.User, error) {
	var (
		user      types.User
		isBanned  int
		createdAt string
	)
	if err := scanner.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&isBanned,
		&createdAt,
	); err != nil {
		return types.User{}, err
	}

	user.IsBanned = isBanned != 0
	var err error
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.User{}, err
	}
	return user, nil
}
