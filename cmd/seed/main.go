// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed resets the database to the development dataset.
//
// It reads the same environment as cmd/api, applies migrations and then
// replaces every table's contents in one transaction.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/newsboard/internal/platform/config"
	"github.com/taibuivan/newsboard/internal/platform/migration"
	pgstore "github.com/taibuivan/newsboard/internal/platform/postgres"
	"github.com/taibuivan/newsboard/internal/seed"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "newsboard-seed"))

	if err := run(log); err != nil {
		log.Error("seed_failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("seed_completed")
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return err
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, time.Minute, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := seed.Load(ctx, tx, seed.Development(), log); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
