package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// defaultEmailDomain fills in a contact address when registration omits one.
const defaultEmailDomain = "acuestore.com"

// UserService encapsulates account use-cases. Password hashes never leave
// this layer except inside types.User, whose hash field is excluded from
// serialization.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates an account. The secret is bcrypt-hashed before storage;
// the returned user carries the hash only in-process.
func (s *UserService) Register(ctx context.Context, username, password, email string) (types.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return types.User{}, validationErrorf("username is required")
	}
	if len(password) < minPasswordLength {
		return types.User{}, validationErrorf("password must be at least %d characters long", minPasswordLength)
	}
	if email == "" {
		email = fmt.Sprintf("%s@%s", username, defaultEmailDomain)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.users.CreateUser(ctx, types.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	})
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password produce the same error; a ban is only revealed once the
// credentials verify.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredential
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredential
	}

	if user.IsBanned {
		return types.User{}, ErrBanned
	}
	return user, nil
}

// List returns all accounts. Hashes stay out of responses via the type's
// serialization rules.
func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	return s.users.ListUsers(ctx)
}

// SetBanned flips the ban flag on the named account.
func (s *UserService) SetBanned(ctx context.Context, username string, banned bool) error {
	return s.users.SetUserBanned(ctx, strings.TrimSpace(username), banned)
}
