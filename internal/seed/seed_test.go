package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/acuestore/apiserver/internal/store/filestore"
	"github.com/acuestore/apiserver/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *filestore.Store {
	t.Helper()
	st, err := filestore.Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return st
}

func TestImportSkipsPopulatedCatalog(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.CreateApp(ctx, types.App{
		ID: "custom", Name: "Custom", Developer: "Me", Category: "games",
		Rating: 4.0, DownloadURL: "https://example.com/custom",
	})
	require.NoError(t, err)

	n, err := Import(ctx, st, false, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := st.CountApps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportPopulatesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	n, err := Import(ctx, st, false, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), n)

	apps, err := st.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, apps, len(Catalog))

	byID := make(map[string]types.App, len(apps))
	for _, app := range apps {
		byID[app.ID] = app
	}
	for _, entry := range Catalog {
		got, ok := byID[entry.ID]
		require.True(t, ok, "missing app %q", entry.ID)
		assert.Equal(t, entry.Name, got.Name)
		assert.ElementsMatch(t, entry.Badges, got.Badges)
	}
}

func TestImportForceReplacesCatalog(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.CreateApp(ctx, types.App{
		ID: "custom", Name: "Custom", Developer: "Me", Category: "games",
		Rating: 4.0, DownloadURL: "https://example.com/custom",
	})
	require.NoError(t, err)
	require.NoError(t, st.AddBadge(ctx, "custom", "trending"))

	n, err := Import(ctx, st, true, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), n)

	count, err := st.CountApps(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), count)

	_, err = st.GetApp(ctx, "custom")
	assert.Error(t, err)

	// Forcing again must not duplicate apps or badges.
	_, err = Import(ctx, st, true, zerolog.Nop())
	require.NoError(t, err)
	count, err = st.CountApps(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), count)
}

func TestCatalogEntriesAreValid(t *testing.T) {
	seen := make(map[string]bool, len(Catalog))
	for _, entry := range Catalog {
		assert.NotEmpty(t, entry.ID)
		assert.False(t, seen[entry.ID], "duplicate catalog id %q", entry.ID)
		seen[entry.ID] = true
		assert.True(t, types.ValidCategory(entry.Category), "app %q category %q", entry.ID, entry.Category)
		for _, badge := range entry.Badges {
			assert.True(t, types.ValidBadgeType(badge), "app %q badge %q", entry.ID, badge)
		}
		assert.GreaterOrEqual(t, entry.Rating, 1.0, "app %q", entry.ID)
		assert.LessOrEqual(t, entry.Rating, 5.0, "app %q", entry.ID)
	}
}
