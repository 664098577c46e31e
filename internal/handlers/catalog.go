package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acuestore/apiserver/internal/services"
	"github.com/acuestore/apiserver/types"
	"github.com/rs/zerolog"
)

// CatalogHandler serves the public catalog listing.
type CatalogHandler struct {
	catalogService *services.CatalogService
	log            zerolog.Logger
}

func NewCatalogHandler(catalogService *services.CatalogService, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, log: log}
}

// CatalogRouter registers public catalog routes on the given router.
func CatalogRouter(r chi.Router, catalogService *services.CatalogService, log zerolog.Logger) {
	handler := NewCatalogHandler(catalogService, log)

	r.Get("/", handler.ListApps)
	r.Get("/{appID}", handler.GetApp)
}

func (h *CatalogHandler) ListApps(w http.ResponseWriter, r *http.Request) {
	apps, err := h.catalogService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *CatalogHandler) GetApp(w http.ResponseWriter, r *http.Request) {
	app, err := h.catalogService.Get(r.Context(), chi.URLParam(r, "appID"))
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// AppUpsertRequest is the operator payload for creating or updating an app.
// Both the separated and the joined historical spellings of the acquisition
// link and featured flag are accepted; toApp emits the canonical shape.
type AppUpsertRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Developer   string   `json:"developer"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	DownloadURL string   `json:"download_url"`
	LegacyURL   string   `json:"downloadUrl"`
	IsHot       *bool    `json:"is_hot"`
	LegacyHot   *bool    `json:"isHot"`
	Badges      []string `json:"badges"`
}

func (req AppUpsertRequest) toApp() types.App {
	url := req.DownloadURL
	if url == "" {
		url = req.LegacyURL
	}
	hot := false
	switch {
	case req.IsHot != nil:
		hot = *req.IsHot
	case req.LegacyHot != nil:
		hot = *req.LegacyHot
	}
	return types.App{
		ID:          req.ID,
		Name:        req.Name,
		Developer:   req.Developer,
		Category:    req.Category,
		Rating:      req.Rating,
		Description: req.Description,
		Icon:        req.Icon,
		DownloadURL: url,
		IsHot:       hot,
		Badges:      req.Badges,
	}
}
