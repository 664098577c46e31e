package types

import "time"

// Categories is the fixed set of catalog categories an app may belong to.
var Categories = []string{
	"entertainment",
	"games",
	"music",
	"photography",
	"productivity",
	"social",
}

// BadgeTypes is the fixed set of badge labels that can be attached to an app.
var BadgeTypes = []string{
	"data-sharing",
	"unstable",
	"editors-choice",
	"featured",
	"trending",
	"new",
	"popular",
}

// ValidCategory reports whether category is a member of Categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidBadgeType reports whether badgeType is a member of BadgeTypes.
func ValidBadgeType(badgeType string) bool {
	for _, b := range BadgeTypes {
		if b == badgeType {
			return true
		}
	}
	return false
}

// App represents one catalog entry in its denormalized form: the record
// itself plus the badge labels attached to it.
type App struct {
	// ID is the unique slug identifying the app. It is immutable once created
	// and is the join key for badges.
	ID string `json:"id"`

	// Name is the display name shown in the catalog.
	Name string `json:"name"`

	// Developer is the publisher name.
	Developer string `json:"developer"`

	// Category is one of the fixed Categories values.
	Category string `json:"category"`

	// Rating is the star rating in [1.0, 5.0], one decimal of precision.
	Rating float64 `json:"rating"`

	// Description is free-text copy shown on the listing.
	Description string `json:"description"`

	// Icon is the icon reference (a CSS class name).
	Icon string `json:"icon"`

	// DownloadURL is the external acquisition link.
	DownloadURL string `json:"download_url"`

	// IsHot marks the app as featured on the storefront.
	IsHot bool `json:"is_hot"`

	// Badges holds the badge labels attached to this app. Never nil in
	// results returned by the catalog layer.
	Badges []string `json:"badges"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Badge is a single (app, label) association. A given pair is unique;
// attaching the same label twice is a no-op.
type Badge struct {
	ID        string    `json:"id"`
	AppID     string    `json:"app_id"`
	BadgeType string    `json:"badge_type"`
	CreatedAt time.Time `json:"created_at"`
}

// SeedApp is one entry of the built-in catalog used to populate an empty
// backend on first run.
type SeedApp struct {
	ID          string
	Name        string
	Developer   string
	Category    string
	Rating      float64
	Description string
	Icon        string
	DownloadURL string
	IsHot       bool
	Badges      []string
}
