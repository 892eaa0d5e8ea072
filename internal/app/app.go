// Package app wires configuration, middleware, the JSON API and the web UI
// into one HTTP handler.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"insertkit/internal/api"
	"insertkit/internal/config"
	"insertkit/internal/middleware"
	"insertkit/internal/ui"
)

// Deps holds what main must provide.
type Deps struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Version string
}

// NewRouter builds the server's handler tree. ctx bounds background work
// started by middleware (the rate limiter sweep).
func NewRouter(ctx context.Context, deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := deps.Cfg

	apiHandler := api.NewHandler(logger, cfg.MaxBodyBytes, deps.Version)
	uiHandler := ui.NewHandler(logger, cfg.IsProduction())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger.With("component", "http")))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader, "X-CSRF-Token"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	r.Get("/health", apiHandler.Health)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui", http.StatusFound)
	})
	r.Route("/v1", apiHandler.Mount)
	r.Route("/ui", func(r chi.Router) {
		ui.MountRoutes(r, uiHandler)
	})

	return r
}
