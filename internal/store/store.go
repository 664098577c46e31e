package store

import (
	"context"

	"github.com/acuestore/apiserver/types"
)

// AppStore defines catalog persistence operations. Implementations return
// ErrNotFound / ErrDuplicate for the corresponding conditions so callers
// never branch on backend identity.
type AppStore interface {
	// ListApps returns every app with its badge labels attached, ordered by
	// display name ascending (case-insensitive).
	ListApps(ctx context.Context) ([]types.App, error)
	GetApp(ctx context.Context, id string) (types.App, error)
	// CreateApp inserts a new app. Returns ErrDuplicate when the id is taken.
	CreateApp(ctx context.Context, app types.App) (types.App, error)
	// UpsertApp inserts the app or, when the id already exists, replaces its
	// mutable fields. Used by the seed importer.
	UpsertApp(ctx context.Context, app types.App) error
	UpdateApp(ctx context.Context, app types.App) (types.App, error)
	// DeleteApp removes the app and all of its badges in one logical
	// operation.
	DeleteApp(ctx context.Context, id string) error
	// AddBadge attaches a badge label to an app. Attaching an existing pair
	// is a no-op, not an error. Returns ErrNotFound when the app is absent.
	AddBadge(ctx context.Context, appID, badgeType string) error
	// RemoveBadge detaches a badge label. Returns ErrNotFound when the pair
	// does not exist.
	RemoveBadge(ctx context.Context, appID, badgeType string) error
	CountApps(ctx context.Context) (int, error)
	// WipeCatalog deletes all badges, then all apps.
	WipeCatalog(ctx context.Context) error
}

// UserStore defines account persistence operations.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (types.User, error)
	// CreateUser inserts a new account. Returns ErrDuplicate when the
	// username is taken.
	CreateUser(ctx context.Context, user types.User) (types.User, error)
	ListUsers(ctx context.Context) ([]types.User, error)
	SetUserBanned(ctx context.Context, username string, banned bool) error
}

// SettingsStore is a small key/value relation used for operator settings.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Store is the uniform contract every backend implements. The backend is
// selected once at startup and injected into the layers above; upper layers
// never learn which engine is live.
type Store interface {
	AppStore
	UserStore
	SettingsStore

	// EnsureSchema creates the minimum relational shape if it does not
	// already exist. Idempotent; a no-op for schema-less backends.
	EnsureSchema(ctx context.Context) error

	// Name identifies the backend for startup logging.
	Name() string

	Close() error
}
