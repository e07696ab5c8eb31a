// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Unmatched paths and unsupported verbs are answered here, through the same
    classification pipeline as domain failures.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/newsboard/internal/core/article"
	"github.com/taibuivan/newsboard/internal/core/comment"
	"github.com/taibuivan/newsboard/internal/core/topic"
	"github.com/taibuivan/newsboard/internal/platform/classify"
	"github.com/taibuivan/newsboard/internal/platform/config"
	"github.com/taibuivan/newsboard/internal/platform/constants"
	"github.com/taibuivan/newsboard/internal/platform/middleware"
	"github.com/taibuivan/newsboard/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. Always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. 200 only when every dependency answers.
	Readiness http.HandlerFunc

	Topic   *topic.Handler
	Article *article.Handler
	Comment *comment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. HTTP metrics are registered on registry and
// exposed on /metrics.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, registry *prometheus.Registry, h Handlers) *Server {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics(registry)

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.PanicRecovery())
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Fallbacks
	// Registered before any sub-router so mounted routers inherit them.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, classify.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, classify.ErrMethodNotAllowed)
	})

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/", landing)
		api.Route("/topics", h.Topic.RegisterRoutes)
		api.Route("/articles", func(articles chi.Router) {
			h.Article.RegisterRoutes(articles)
			h.Comment.RegisterRoutes(articles)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// landing handles GET /api.
func landing(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]bool{constants.FieldOK: true})
}

// Handler returns the root router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
