package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/frontend"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
)

// Config holds the HTTP server settings
type Config struct {
	addr            string
	refreshInterval time.Duration
	categories      *model.CategoryStyles
}

// NewConfig creates a server configuration
func NewConfig(addr string, refreshInterval time.Duration, categories *model.CategoryStyles) *Config {
	if refreshInterval <= 0 {
		refreshInterval = usecase.DefaultRefreshInterval
	}
	if categories == nil {
		categories = model.DefaultCategoryStyles()
	}
	return &Config{
		addr:            addr,
		refreshInterval: refreshInterval,
		categories:      categories,
	}
}

// UseCases bundles the use cases the HTTP layer calls
type UseCases struct {
	dashboard usecase.DashboardReader
	refresher usecase.Refresher
	submitter usecase.FormSubmitter
}

// NewUseCases creates a UseCases bundle
func NewUseCases(dashboard usecase.DashboardReader, refresher usecase.Refresher, submitter usecase.FormSubmitter) *UseCases {
	return &UseCases{
		dashboard: dashboard,
		refresher: refresher,
		submitter: submitter,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg *Config, uc *UseCases) (*Server, error) {
	if uc == nil || uc.dashboard == nil || uc.refresher == nil || uc.submitter == nil {
		return nil, goerr.New("dashboard, refresher and submitter are required")
	}

	view, err := NewView(cfg.categories, cfg.refreshInterval)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load page templates")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewDashboardHandler(uc, view)

	// Health check
	router.Get("/health", handleHealth)

	router.Get("/", handler.HandlePage)
	router.Post("/reports", handler.HandleSubmit)

	router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", handler.HandleDashboard)
		r.Get("/charts/{name}", handler.HandleChart)
		r.Post("/refresh", handler.HandleRefresh)
	})

	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Embedded static assets are missing, charts will not be drawn",
			"error", err,
		)
	} else {
		router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(fs)))
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ecotrack",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}
