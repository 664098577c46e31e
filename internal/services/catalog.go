package services

import (
	"context"
	"strings"

	"github.com/acuestore/apiserver/internal/seed"
	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
	"github.com/rs/zerolog"
)

const (
	minRating = 1.0
	maxRating = 5.0
)

// CatalogService encapsulates catalog use-cases: listing the denormalized
// catalog, operator edits, badge management and reseeding. All input
// validation happens here, before anything touches storage.
type CatalogService struct {
	apps store.AppStore
	log  zerolog.Logger
}

func NewCatalogService(apps store.AppStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{apps: apps, log: log}
}

// List returns every app in canonical denormalized form, ordered by display
// name.
func (s *CatalogService) List(ctx context.Context) ([]types.App, error) {
	apps, err := s.apps.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		normalize(&apps[i])
	}
	return apps, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (types.App, error) {
	app, err := s.apps.GetApp(ctx, id)
	if err != nil {
		return types.App{}, err
	}
	normalize(&app)
	return app, nil
}

func (s *CatalogService) Add(ctx context.Context, app types.App) (types.App, error) {
	app.ID = strings.TrimSpace(app.ID)
	if app.ID == "" {
		return types.App{}, validationErrorf("app id is required")
	}
	if err := validateApp(app); err != nil {
		return types.App{}, err
	}

	created, err := s.apps.CreateApp(ctx, app)
	if err != nil {
		return types.App{}, err
	}
	normalize(&created)
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, app types.App) (types.App, error) {
	app.ID = id
	if err := validateApp(app); err != nil {
		return types.App{}, err
	}

	updated, err := s.apps.UpdateApp(ctx, app)
	if err != nil {
		return types.App{}, err
	}
	normalize(&updated)
	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.apps.DeleteApp(ctx, id)
}

func (s *CatalogService) AddBadge(ctx context.Context, id, badgeType string) error {
	if !types.ValidBadgeType(badgeType) {
		return validationErrorf("unknown badge type %q", badgeType)
	}
	return s.apps.AddBadge(ctx, id, badgeType)
}

func (s *CatalogService) RemoveBadge(ctx context.Context, id, badgeType string) error {
	return s.apps.RemoveBadge(ctx, id, badgeType)
}

// Reseed forces a full reimport of the built-in catalog and returns the
// number of apps imported.
func (s *CatalogService) Reseed(ctx context.Context) (int, error) {
	return seed.Import(ctx, s.apps, true, s.log)
}

// validateApp enforces write-side constraints. Out-of-range input fails
// loudly rather than being clamped; silent defaulting is reserved for the
// read side, where it covers missing fields only.
func validateApp(app types.App) error {
	if strings.TrimSpace(app.Name) == "" {
		return validationErrorf("app name is required")
	}
	if !types.ValidCategory(app.Category) {
		return validationErrorf("unknown category %q", app.Category)
	}
	if app.Rating < minRating || app.Rating > maxRating {
		return validationErrorf("rating %.1f out of range [%.0f, %.0f]", app.Rating, minRating, maxRating)
	}
	for _, badge := range app.Badges {
		if !types.ValidBadgeType(badge) {
			return validationErrorf("unknown badge type %q", badge)
		}
	}
	return nil
}

// normalize guarantees the canonical result shape regardless of which
// backend produced the record.
func normalize(app *types.App) {
	if app.Badges == nil {
		app.Badges = []string{}
	}
}
