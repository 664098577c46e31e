package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/acuestore/apiserver/internal/services"
	"github.com/acuestore/apiserver/internal/store"
	"github.com/rs/zerolog"
)

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError translates service and store errors into HTTP statuses.
// Anything unrecognized is a storage failure: logged in full, surfaced as an
// opaque server error.
func writeServiceError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, store.ErrDuplicate):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidCredential):
		writeError(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, services.ErrBanned):
		writeError(w, http.StatusForbidden, "Your account has been banned. Please contact support.")
	default:
		log.Error().Err(err).Msg("storage operation failed")
		writeError(w, http.StatusInternalServerError, "server error")
	}
}

// Healthz is a trivial liveness endpoint.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}
