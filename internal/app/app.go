// Package app provides application-level wiring for the dashboard server and
// the CLI: configuration in, a loaded survival service and HTTP router out.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"titanic-dash/internal/api"
	"titanic-dash/internal/config"
	"titanic-dash/internal/dataset"
	"titanic-dash/internal/middleware"
	"titanic-dash/internal/service/survival"
	"titanic-dash/internal/source"
	"titanic-dash/internal/ui"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Survival *survival.Service

	cfg    *config.Config
	logger *slog.Logger
}

// New loads the passenger table and wires the services around it. A dataset
// that cannot be loaded is fatal: the returned error is a
// *domain.DataUnavailableError.
func New(ctx context.Context, deps Deps) (*App, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	svc, err := LoadSurvival(ctx, deps.Cfg, logger)
	if err != nil {
		return nil, err
	}
	return &App{Survival: svc, cfg: deps.Cfg, logger: logger}, nil
}

// LoadSurvival reads the configured dataset once and returns a service over it.
func LoadSurvival(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*survival.Service, error) {
	opener := source.NewOpener(cfg.Storage, cfg.Dataset.Format)
	loader := dataset.NewLoader(cfg.Dataset, opener, logger)
	table, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load passengers: %w", err)
	}
	return survival.NewService(table, logger), nil
}

// Router builds the HTTP handler tree. ctx bounds background work owned by
// middleware (rate-limiter cleanup).
func (a *App) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
		RequestsPerSecond: a.cfg.RateLimitRPS,
		Burst:             a.cfg.RateLimitBurst,
		ExemptPrefixes:    []string{"/healthz", "/ui/static/"},
	}))

	apiHandler := api.NewHandler(a.Survival, a.logger)
	uiHandler := ui.NewHandler(a.Survival, a.logger)

	r.Get("/healthz", apiHandler.Healthz)
	r.Get("/openapi.json", api.ServeOpenAPI)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui", http.StatusFound)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
			ExposedHeaders: []string{middleware.HeaderRequestID},
			MaxAge:         300,
		}))
		r.Mount("/", apiHandler.Routes())
	})

	r.Route("/ui", func(r chi.Router) {
		ui.MountRoutes(r, uiHandler)
	})

	return r
}
