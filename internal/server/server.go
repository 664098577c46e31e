package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/acuestore/apiserver/config"
	"github.com/acuestore/apiserver/internal/db"
	"github.com/acuestore/apiserver/internal/handlers"
	"github.com/acuestore/apiserver/internal/seed"
	"github.com/acuestore/apiserver/internal/services"
	"github.com/acuestore/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	store      store.Store
	log        zerolog.Logger
}

// New selects the storage backend, prepares it (schema, operator settings,
// first-run seed) and wires the routers. Schema or seed trouble is logged
// but does not abort startup; the affected operations will fail individually
// with a storage error instead.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Server, error) {
	st, err := db.Connect(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	if err := st.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Msg("schema initialization failed, queries may fail")
	}

	adminService := services.NewAdminService(st)
	userService := services.NewUserService(st)
	catalogService := services.NewCatalogService(st, log)

	if err := adminService.Init(ctx, cfg.Admin); err != nil {
		log.Error().Err(err).Msg("operator settings initialization failed")
	}
	if _, err := seed.Import(ctx, st, false, log); err != nil {
		log.Error().Err(err).Msg("seed import failed")
	}

	sessionSecret := cfg.SessionSecret
	if sessionSecret == "" {
		sessionSecret = randomSecret()
		log.Warn().Msg("SESSION_SECRET not set, operator sessions will not survive restarts")
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/apps", func(r chi.Router) {
		handlers.CatalogRouter(r, catalogService, log)
	})
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, log)
	})
	router.Route("/admin", func(r chi.Router) {
		handlers.AdminRouter(r, adminService, userService, catalogService, sessionSecret, log)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		store:      st,
		log:        log,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.store != nil {
		_ = s.store.Close()
	}
	return s.httpServer.Close()
}

func randomSecret() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
