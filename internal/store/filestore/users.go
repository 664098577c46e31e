package filestore

import (
	"context"
	"time"

	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
)

// fileUser is the persisted account record. The hash is stored under the
// original file layout's "password" key.
type fileUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	IsBanned     bool      `json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
}

func (f fileUser) canonical() types.User {
	return types.User{
		ID:           f.ID,
		Username:     f.Username,
		Email:        f.Email,
		PasswordHash: f.PasswordHash,
		IsBanned:     f.IsBanned,
		CreatedAt:    f.CreatedAt,
	}
}

func toFileUser(user types.User) fileUser {
	return fileUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsBanned:     user.IsBanned,
		CreatedAt:    user.CreatedAt,
	}
}

func (s *Store) loadUsers() ([]fileUser, error) {
	users := make([]fileUser, 0)
	if err := s.readJSON(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.loadUsers()
	if err != nil {
		return types.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u.canonical(), nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return types.User{}, err
	}
	for _, u := range users {
		if u.Username == user.Username {
			return types.User{}, store.ErrDuplicate
		}
	}

	user.CreatedAt = time.Now()
	users = append(users, toFileUser(user))
	if err := s.writeJSON(usersFile, users); err != nil {
		return types.User{}, err
	}
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	users := make([]types.User, 0, len(raw))
	for _, u := range raw {
		users = append(users, u.canonical())
	}
	return users, nil
}

func (s *Store) SetUserBanned(ctx context.Context, username string, banned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == username {
			users[i].IsBanned = banned
			return s.writeJSON(usersFile, users)
		}
	}
	return store.ErrNotFound
}
