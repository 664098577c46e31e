package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/acuestore/apiserver/internal/store/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	st, err := filestore.Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return NewUserService(st)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.Register(ctx, "frank", "hunter22", "")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "frank", user.Username)
	assert.Equal(t, "frank@acuestore.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.False(t, user.IsBanned)

	user, err = svc.Register(ctx, "grace", "hunter22", "grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", user.Email)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	var verr *ValidationError

	_, err := svc.Register(ctx, "   ", "hunter22", "")
	assert.ErrorAs(t, err, &verr)

	// Five characters is one short of the minimum.
	_, err = svc.Register(ctx, "frank", "12345", "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Register(ctx, "frank", "123456", "")
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "frank", "hunter22", "")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "frank", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "frank", user.Username)

	// Unknown name and wrong password are indistinguishable to the caller.
	_, wrongPass := svc.Authenticate(ctx, "frank", "nope")
	_, unknownName := svc.Authenticate(ctx, "ghost", "hunter22")
	assert.ErrorIs(t, wrongPass, ErrInvalidCredential)
	assert.ErrorIs(t, unknownName, ErrInvalidCredential)
}

func TestAuthenticateBanned(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, err := svc.Register(ctx, "frank", "hunter22", "")
	require.NoError(t, err)
	require.NoError(t, svc.SetBanned(ctx, "frank", true))

	_, err = svc.Authenticate(ctx, "frank", "hunter22")
	assert.ErrorIs(t, err, ErrBanned)

	// Wrong password on a banned account must not reveal the ban.
	_, err = svc.Authenticate(ctx, "frank", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	require.NoError(t, svc.SetBanned(ctx, "frank", false))
	_, err = svc.Authenticate(ctx, "frank", "hunter22")
	assert.NoError(t, err)
}
