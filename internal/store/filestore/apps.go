package filestore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
	"github.com/google/uuid"
)

// fileApp is the persisted app record. Older data files carry the joined
// spellings downloadUrl/isHot; both are accepted on decode and only the
// separated form is ever written back.
type fileApp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Developer   string    `json:"developer"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	DownloadURL string    `json:"download_url,omitempty"`
	LegacyURL   string    `json:"downloadUrl,omitempty"`
	IsHot       *bool     `json:"is_hot,omitempty"`
	LegacyHot   *bool     `json:"isHot,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f fileApp) canonical() types.App {
	url := f.DownloadURL
	if url == "" {
		url = f.LegacyURL
	}
	hot := false
	switch {
	case f.IsHot != nil:
		hot = *f.IsHot
	case f.LegacyHot != nil:
		hot = *f.LegacyHot
	}
	return types.App{
		ID:          f.ID,
		Name:        f.Name,
		Developer:   f.Developer,
		Category:    f.Category,
		Rating:      f.Rating,
		Description: f.Description,
		Icon:        f.Icon,
		DownloadURL: url,
		IsHot:       hot,
		Badges:      []string{},
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFileApp(app types.App) fileApp {
	hot := app.IsHot
	return fileApp{
		ID:          app.ID,
		Name:        app.Name,
		Developer:   app.Developer,
		Category:    app.Category,
		Rating:      app.Rating,
		Description: app.Description,
		Icon:        app.Icon,
		DownloadURL: app.DownloadURL,
		IsHot:       &hot,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

func (s *Store) loadApps() ([]fileApp, error) {
	apps := make([]fileApp, 0)
	if err := s.readJSON(appsFile, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *Store) loadBadges() ([]types.Badge, error) {
	badges := make([]types.Badge, 0)
	if err := s.readJSON(badgesFile, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}

func (s *Store) ListApps(ctx context.Context) ([]types.App, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mergedApps()
}

// mergedApps performs the join the relational backends do in SQL: group
// badges by app id and attach them, ordered by display name. Callers hold
// the lock.
func (s *Store) mergedApps() ([]types.App, error) {
	raw, err := s.loadApps()
	if err != nil {
		return nil, err
	}
	badges, err := s.loadBadges()
	if err != nil {
		return nil, err
	}

	byApp := make(map[string][]string)
	for _, b := range badges {
		byApp[b.AppID] = append(byApp[b.AppID], b.BadgeType)
	}

	apps := make([]types.App, 0, len(raw))
	for _, f := range raw {
		app := f.canonical()
		if labels, ok := byApp[app.ID]; ok {
			app.Badges = labels
		}
		apps = append(apps, app)
	}

	sort.Slice(apps, func(i, j int) bool {
		ni, nj := strings.ToLower(apps[i].Name), strings.ToLower(apps[j].Name)
		if ni != nj {
			return ni < nj
		}
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

func (s *Store) GetApp(ctx context.Context, id string) (types.App, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps, err := s.mergedApps()
	if err != nil {
		return types.App{}, err
	}
	for _, app := range apps {
		if app.ID == id {
			return app, nil
		}
	}
	return types.App{}, store.ErrNotFound
}

func (s *Store) CreateApp(ctx context.Context, app types.App) (types.App, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.loadApps()
	if err != nil {
		return types.App{}, err
	}
	for _, existing := range apps {
		if existing.ID == app.ID {
			return types.App{}, store.ErrDuplicate
		}
	}

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	// Badges are managed through AddBadge; a freshly created app has none.
	app.Badges = []string{}

	apps = append(apps, toFileApp(app))
	if err := s.writeJSON(appsFile, apps); err != nil {
		return types.App{}, err
	}
	return app, nil
}

func (s *Store) UpsertApp(ctx context.Context, app types.App) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.loadApps()
	if err != nil {
		return err
	}

	now := time.Now()
	app.UpdatedAt = now
	for i, existing := range apps {
		if existing.ID == app.ID {
			app.CreatedAt = existing.CreatedAt
			apps[i] = toFileApp(app)
			return s.writeJSON(appsFile, apps)
		}
	}

	app.CreatedAt = now
	apps = append(apps, toFileApp(app))
	return s.writeJSON(appsFile, apps)
}

func (s *Store) UpdateApp(ctx context.Context, app types.App) (types.App, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.loadApps()
	if err != nil {
		return types.App{}, err
	}
	for i, existing := range apps {
		if existing.ID != app.ID {
			continue
		}
		app.CreatedAt = existing.CreatedAt
		app.UpdatedAt = time.Now()
		apps[i] = toFileApp(app)
		if err := s.writeJSON(appsFile, apps); err != nil {
			return types.App{}, err
		}

		badges, err := s.loadBadges()
		if err != nil {
			return types.App{}, err
		}
		app.Badges = []string{}
		for _, b := range badges {
			if b.AppID == app.ID {
				app.Badges = append(app.Badges, b.BadgeType)
			}
		}
		return app, nil
	}
	return types.App{}, store.ErrNotFound
}

func (s *Store) DeleteApp(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.loadApps()
	if err != nil {
		return err
	}
	kept := apps[:0]
	found := false
	for _, existing := range apps {
		if existing.ID == id {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return store.ErrNotFound
	}
	if err := s.writeJSON(appsFile, kept); err != nil {
		return err
	}

	badges, err := s.loadBadges()
	if err != nil {
		return err
	}
	keptBadges := badges[:0]
	for _, b := range badges {
		if b.AppID != id {
			keptBadges = append(keptBadges, b)
		}
	}
	return s.writeJSON(badgesFile, keptBadges)
}

func (s *Store) AddBadge(ctx context.Context, appID, badgeType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.loadApps()
	if err != nil {
		return err
	}
	found := false
	for _, existing := range apps {
		if existing.ID == appID {
			found = true
			break
		}
	}
	if !found {
		return store.ErrNotFound
	}

	badges, err := s.loadBadges()
	if err != nil {
		return err
	}
	for _, b := range badges {
		if b.AppID == appID && b.BadgeType == badgeType {
			return nil
		}
	}

	badges = append(badges, types.Badge{
		ID:        uuid.NewString(),
		AppID:     appID,
		BadgeType: badgeType,
		CreatedAt: time.Now(),
	})
	return s.writeJSON(badgesFile, badges)
}

func (s *Store) RemoveBadge(ctx context.Context, appID, badgeType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	badges, err := s.loadBadges()
	if err != nil {
		return err
	}
	kept := badges[:0]
	found := false
	for _, b := range badges {
		if b.AppID == appID && b.BadgeType == badgeType {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return store.ErrNotFound
	}
	return s.writeJSON(badgesFile, kept)
}

func (s *Store) CountApps(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps, err := s.loadApps()
	if err != nil {
		return 0, err
	}
	return len(apps), nil
}

func (s *Store) WipeCatalog(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeJSON(badgesFile, []types.Badge{}); err != nil {
		return err
	}
	return s.writeJSON(appsFile, []fileApp{})
}
