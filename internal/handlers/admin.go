package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/acuestore/apiserver/internal/services"
	"github.com/rs/zerolog"
)

const operatorTokenTTL = 12 * time.Hour
const operatorSubject = "operator"

// AdminHandler provides the operator surface: operator sign-in, account
// administration and catalog administration. Every route except the session
// endpoint requires a bearer token issued by CreateSession.
type AdminHandler struct {
	adminService   *services.AdminService
	userService    *services.UserService
	catalogService *services.CatalogService
	secret         []byte
	tokenTTL       time.Duration
	log            zerolog.Logger
}

func NewAdminHandler(
	adminService *services.AdminService,
	userService *services.UserService,
	catalogService *services.CatalogService,
	sessionSecret string,
	log zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		userService:    userService,
		catalogService: catalogService,
		secret:         []byte(sessionSecret),
		tokenTTL:       operatorTokenTTL,
		log:            log,
	}
}

// AdminRouter registers admin routes on the given router.
func AdminRouter(
	r chi.Router,
	adminService *services.AdminService,
	userService *services.UserService,
	catalogService *services.CatalogService,
	sessionSecret string,
	log zerolog.Logger,
) {
	handler := NewAdminHandler(adminService, userService, catalogService, sessionSecret, log)

	r.Post("/session", handler.CreateSession)

	r.Group(func(r chi.Router) {
		r.Use(handler.RequireOperator)
		r.Get("/settings", handler.GetSettings)
		r.Get("/users", handler.ListUsers)
		r.Put("/users/{username}/ban", handler.SetBanned)
		r.Post("/apps", handler.CreateApp)
		r.Put("/apps/{appID}", handler.UpdateApp)
		r.Delete("/apps/{appID}", handler.DeleteApp)
		r.Post("/apps/{appID}/badges", handler.AddBadge)
		r.Delete("/apps/{appID}/badges/{badgeType}", handler.RemoveBadge)
		r.Post("/reseed", handler.Reseed)
	})
}

type SessionRequest struct {
	Username       string `json:"username"`
	PrimaryPin     string `json:"primary_pin"`
	SecurityPin    string `json:"security_pin"`
	SecurityAnswer string `json:"security_answer"`
}

type SessionResponse struct {
	Token string `json:"token"`
}

// CreateSession verifies the full operator credential set and exchanges it
// for a short-lived bearer token.
func (h *AdminHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	ok, err := h.adminService.Verify(r.Context(), req.Username, req.PrimaryPin, req.SecurityPin, req.SecurityAnswer)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid operator credentials")
		return
	}

	token, err := issueOperatorToken(h.secret, h.tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create token")
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{Token: token})
}

// RequireOperator enforces a valid operator bearer token.
func (h *AdminHandler) RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := verifyOperatorToken(tokenString, h.secret); err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.adminService.Settings(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type BanRequest struct {
	Banned bool `json:"banned"`
}

func (h *AdminHandler) SetBanned(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req BanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.userService.SetBanned(r.Context(), username, req.Banned); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	action := "unbanned"
	if req.Banned {
		action = "banned"
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("User %s has been %s", username, action)})
}

func (h *AdminHandler) CreateApp(w http.ResponseWriter, r *http.Request) {
	var req AppUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.catalogService.Add(r.Context(), req.toApp())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateApp(w http.ResponseWriter, r *http.Request) {
	var req AppUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.catalogService.Update(r.Context(), chi.URLParam(r, "appID"), req.toApp())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteApp(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.Delete(r.Context(), chi.URLParam(r, "appID")); err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "App deleted successfully"})
}

type BadgeRequest struct {
	BadgeType string `json:"badge_type"`
}

func (h *AdminHandler) AddBadge(w http.ResponseWriter, r *http.Request) {
	var req BadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.catalogService.AddBadge(r.Context(), chi.URLParam(r, "appID"), req.BadgeType); err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Badge added successfully"})
}

func (h *AdminHandler) RemoveBadge(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")
	badgeType := chi.URLParam(r, "badgeType")

	if err := h.catalogService.RemoveBadge(r.Context(), appID, badgeType); err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Badge removed successfully"})
}

type ReseedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (h *AdminHandler) Reseed(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalogService.Reseed(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ReseedResponse{Message: "Catalog reloaded from built-in seed", Count: count})
}

func issueOperatorToken(secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   operatorSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func verifyOperatorToken(tokenString string, secret []byte) error {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	if claims.Subject != operatorSubject {
		return errors.New("invalid subject")
	}
	return nil
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
