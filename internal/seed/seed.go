// Package seed populates the active backend from the built-in catalog.
package seed

import (
	"context"
	"fmt"

	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
	"github.com/rs/zerolog"
)

// Import upserts the built-in catalog into st. It runs only when the apps
// relation is empty, unless force is set, in which case badges and apps are
// wiped first (badges reference apps, so they go first). Idempotent: records
// upsert by id and badges conflict-do-nothing, so re-running never
// duplicates either. Returns the number of apps imported, zero when skipped.
func Import(ctx context.Context, st store.AppStore, force bool, log zerolog.Logger) (int, error) {
	count, err := st.CountApps(ctx)
	if err != nil {
		return 0, fmt.Errorf("count apps: %w", err)
	}
	if count > 0 && !force {
		log.Debug().Int("count", count).Msg("catalog already populated, skipping seed import")
		return 0, nil
	}

	if force {
		if err := st.WipeCatalog(ctx); err != nil {
			return 0, fmt.Errorf("wipe catalog: %w", err)
		}
	}

	imported := 0
	for _, entry := range Catalog {
		app := types.App{
			ID:          entry.ID,
			Name:        entry.Name,
			Developer:   entry.Developer,
			Category:    entry.Category,
			Rating:      entry.Rating,
			Description: entry.Description,
			Icon:        entry.Icon,
			DownloadURL: entry.DownloadURL,
			IsHot:       entry.IsHot,
		}
		if err := st.UpsertApp(ctx, app); err != nil {
			return imported, fmt.Errorf("upsert app %q: %w", entry.ID, err)
		}
		for _, badge := range entry.Badges {
			if err := st.AddBadge(ctx, entry.ID, badge); err != nil {
				return imported, fmt.Errorf("add badge %q to %q: %w", badge, entry.ID, err)
			}
		}
		imported++
	}

	log.Info().Int("count", imported).Bool("force", force).Msg("seeded catalog")
	return imported, nil
}
