package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/acuestore/apiserver/internal/store"
	"github.com/acuestore/apiserver/types"
)

// listQuery joins apps with their badges; consecutive rows for one app are
// folded into a single denormalized record while scanning.
const listQuery = `
	SELECT a.id, a.name, a.developer, a.category, a.rating, a.description,
		a.icon, a.download_url, a.is_hot, a.created_at, a.updated_at,
		b.badge_type
	FROM apps a
	LEFT JOIN badges b ON b.app_id = a.id`

func (s *Store) ListApps(ctx context.Context) ([]types.App, error) {
	const query = listQuery + `
	ORDER BY lower(a.name), a.id`
	rows, err := s.db.QueryContext(ctx, s.rebind(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return foldAppRows(rows)
}

func (s *Store) GetApp(ctx context.Context, id string) (types.App, error) {
	const query = listQuery + `
	WHERE a.id = $1`
	rows, err := s.db.QueryContext(ctx, s.rebind(query), id)
	if err != nil {
		return types.App{}, err
	}
	defer rows.Close()

	apps, err := foldAppRows(rows)
	if err != nil {
		return types.App{}, err
	}
	if len(apps) == 0 {
		return types.App{}, store.ErrNotFound
	}
	return apps[0], nil
}

func (s *Store) CreateApp(ctx context.Context, app types.App) (types.App, error) {
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	// Badges are managed through AddBadge; a freshly created app has none.
	app.Badges = []string{}

	const query = `
		INSERT INTO apps (id, name, developer, category, rating, description, icon, download_url, is_hot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`
	result, err := s.db.ExecContext(
		ctx,
		s.rebind(query),
		app.ID,
		app.Name,
		app.Developer,
		app.Category,
		app.Rating,
		app.Description,
		app.Icon,
		app.DownloadURL,
		boolToInt(app.IsHot),
		formatTime(app.CreatedAt),
		formatTime(app.UpdatedAt),
	)
	if err != nil {
		return types.App{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.App{}, err
	}
	if affected == 0 {
		return types.App{}, store.ErrDuplicate
	}
	return app, nil
}

func (s *Store) UpsertApp(ctx context.Context, app types.App) error {
	now := time.Now()
	if app.CreatedAt.IsZero() {
		app.CreatedAt = now
	}
	app.UpdatedAt = now

	const query = `
		INSERT INTO apps (id, name, developer, category, rating, description, icon, download_url, is_hot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			developer = excluded.developer,
			category = excluded.category,
			rating = excluded.rating,
			description = excluded.description,
			icon = excluded.icon,
			download_url = excluded.download_url,
			is_hot = excluded.is_hot,
			updated_at = excluded.updated_at`
	_, err := s.db.ExecContext(
		ctx,
		s.rebind(query),
		app.ID,
		app.Name,
		app.Developer,
		app.Category,
		app.Rating,
		app.Description,
		app.Icon,
		app.DownloadURL,
		boolToInt(app.IsHot),
		formatTime(app.CreatedAt),
		formatTime(app.UpdatedAt),
	)
	return err
}

func (s *Store) UpdateApp(ctx context.Context, app types.App) (types.App, error) {
	app.UpdatedAt = time.Now()

	const query = `
		UPDATE apps
		SET name = $1,
			developer = $2,
			category = $3,
			rating = $4,
			description = $5,
			icon = $6,
			download_url = $7,
			is_hot = $8,
			updated_at = $9
		WHERE id = $10`
	result, err := s.db.ExecContext(
		ctx,
		s.rebind(query),
		app.Name,
		app.Developer,
		app.Category,
		app.Rating,
		app.Description,
		app.Icon,
		app.DownloadURL,
		boolToInt(app.IsHot),
		formatTime(app.UpdatedAt),
		app.ID,
	)
	if err != nil {
		return types.App{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.App{}, err
	}
	if affected == 0 {
		return types.App{}, store.ErrNotFound
	}

	return s.GetApp(ctx, app.ID)
}

// DeleteApp removes the app and its badges in one transaction so no orphaned
// associations can survive.
func (s *Store) DeleteApp(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM badges WHERE app_id = $1`), id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM apps WHERE id = $1`), id)
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
	return tx.Commit()
}

func (s *Store) AddBadge(ctx context.Context, appID, badgeType string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT 1 FROM apps WHERE id = $1`), appID).Scan(&exists)
	if err == sql.ErrNoRows {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO badges (app_id, badge_type, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (app_id, badge_type) DO NOTHING`
	_, err = s.db.ExecContext(ctx, s.rebind(query), appID, badgeType, formatTime(time.Now()))
	return err
}

func (s *Store) RemoveBadge(ctx context.Context, appID, badgeType string) error {
	const query = `DELETE FROM badges WHERE app_id = $1 AND badge_type = $2`
	result, err := s.db.ExecContext(ctx, s.rebind(query), appID, badgeType)
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

func (s *Store) CountApps(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM apps`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// WipeCatalog deletes all badges, then all apps. Deletion order matters:
// badges reference apps.
func (s *Store) WipeCatalog(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM badges`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM apps`); err != nil {
		return err
	}
	return tx.Commit()
}

func foldAppRows(rows *sql.Rows) ([]types.App, error) {
	apps := make([]types.App, 0)
	for rows.Next() {
		var (
			app       types.App
			isHot     int
			createdAt string
			updatedAt string
			badge     sql.NullString
		)
		if err := rows.Scan(
			&app.ID,
			&app.Name,
			&app.Developer,
			&app.Category,
			&app.Rating,
			&app.Description,
			&app.Icon,
			&app.DownloadURL,
			&isHot,
			&createdAt,
			&updatedAt,
			&badge,
		); err != nil {
			return nil, err
		}

		if n := len(apps); n > 0 && apps[n-1].ID == app.ID {
			if badge.Valid {
				apps[n-1].Badges = append(apps[n-1].Badges, badge.String)
			}
			continue
		}

		app.IsHot = isHot != 0
		var err error
		if app.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if app.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		app.Badges = []string{}
		if badge.Valid {
			app.Badges = append(app.Badges, badge.String)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}
