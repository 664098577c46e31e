package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/acuestore/apiserver/internal/seed"
	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/internal/store/filestore"
	"github.com/acuestore/apiserver/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	st, err := filestore.Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return NewCatalogService(st, zerolog.Nop())
}

func validTestApp(id string) types.App {
	return types.App{
		ID:          id,
		Name:        "App " + id,
		Developer:   "Acme",
		Category:    "productivity",
		Rating:      4.2,
		Description: "Does things.",
		Icon:        "fas fa-cube",
		DownloadURL: "https://example.com/" + id,
	}
}

func TestCatalogAddValidation(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	var verr *ValidationError

	app := validTestApp("")
	_, err := svc.Add(ctx, app)
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "id is required")

	app = validTestApp("alpha")
	app.Name = "  "
	_, err = svc.Add(ctx, app)
	assert.ErrorAs(t, err, &verr)

	app = validTestApp("alpha")
	app.Category = "gardening"
	_, err = svc.Add(ctx, app)
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "category")

	app = validTestApp("alpha")
	app.Rating = 7.0
	_, err = svc.Add(ctx, app)
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "out of range")

	app = validTestApp("alpha")
	app.Rating = 0.5
	_, err = svc.Add(ctx, app)
	assert.ErrorAs(t, err, &verr)

	app = validTestApp("alpha")
	app.Badges = []string{"gold-star"}
	_, err = svc.Add(ctx, app)
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "badge")

	created, err := svc.Add(ctx, validTestApp("alpha"))
	require.NoError(t, err)
	assert.Equal(t, []string{}, created.Badges)

	_, err = svc.Add(ctx, validTestApp("alpha"))
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestCatalogUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	_, err := svc.Add(ctx, validTestApp("alpha"))
	require.NoError(t, err)

	changed := validTestApp("ignored")
	changed.Name = "Alpha Prime"
	// The path parameter wins over any id carried in the body.
	updated, err := svc.Update(ctx, "alpha", changed)
	require.NoError(t, err)
	assert.Equal(t, "alpha", updated.ID)
	assert.Equal(t, "Alpha Prime", updated.Name)

	_, err = svc.Update(ctx, "ghost", validTestApp("ghost"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalogBadges(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	_, err := svc.Add(ctx, validTestApp("alpha"))
	require.NoError(t, err)

	var verr *ValidationError
	err = svc.AddBadge(ctx, "alpha", "gold-star")
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, svc.AddBadge(ctx, "alpha", "trending"))
	assert.ErrorIs(t, svc.AddBadge(ctx, "ghost", "trending"), store.ErrNotFound)

	got, err := svc.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"trending"}, got.Badges)

	require.NoError(t, svc.RemoveBadge(ctx, "alpha", "trending"))
	assert.ErrorIs(t, svc.RemoveBadge(ctx, "alpha", "trending"), store.ErrNotFound)
}

func TestCatalogReseed(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	_, err := svc.Add(ctx, validTestApp("alpha"))
	require.NoError(t, err)

	n, err := svc.Reseed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seed.Catalog), n)

	_, err = svc.Get(ctx, "alpha")
	assert.ErrorIs(t, err, store.ErrNotFound)

	apps, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, len(seed.Catalog))
	for _, app := range apps {
		assert.NotNil(t, app.Badges)
	}
}
