// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Newsboard HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when REDIS_URL is set.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/newsboard/internal/api"
	"github.com/taibuivan/newsboard/internal/core/article"
	"github.com/taibuivan/newsboard/internal/core/comment"
	"github.com/taibuivan/newsboard/internal/core/topic"
	"github.com/taibuivan/newsboard/internal/platform/config"
	"github.com/taibuivan/newsboard/internal/platform/constants"
	"github.com/taibuivan/newsboard/internal/platform/existence"
	"github.com/taibuivan/newsboard/internal/platform/migration"
	pgstore "github.com/taibuivan/newsboard/internal/platform/postgres"
	redisstore "github.com/taibuivan/newsboard/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("topic_cache", cfg.CacheEnabled()),
	)

	// Process-lifetime context, cancelled on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, cfg.RequestTimeout, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.CacheEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 6. Health handlers ────────────────────────────────────────────────
	checks := []api.Check{{
		Name:  "postgres",
		Probe: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}}
	if rdb != nil {
		checks = append(checks, api.Check{
			Name:  "redis",
			Probe: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	}
	liveness, readiness := api.NewHealthHandlers(log, checks...)

	// ── 7. Domain wiring ──────────────────────────────────────────────────
	resolver := existence.NewResolver(pool)

	var topicRepository topic.Repository = topic.NewPostgresRepository(pool)
	if rdb != nil {
		topicRepository = topic.NewCachedRepository(topicRepository, rdb, cfg.TopicCacheTTL, log)
	}

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Topic:     topic.NewHandler(topic.NewService(topicRepository, log)),
		Article:   article.NewHandler(article.NewService(article.NewPostgresRepository(pool), resolver, log)),
		Comment:   comment.NewHandler(comment.NewService(comment.NewPostgresRepository(pool), resolver, log)),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(appCtx, cfg, log, registry, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	appCancel()

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		return
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON root logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "newsboard"))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
