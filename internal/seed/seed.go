// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package seed replaces the contents of every table with a [Dataset].
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"

	"github.com/taibuivan/newsboard/internal/platform/database/schema"
	"github.com/taibuivan/newsboard/internal/platform/postgres"
	"github.com/taibuivan/newsboard/pkg/slug"
)

// Load truncates all tables, restarting identities, then inserts data.
// Run it inside a transaction so a failure leaves the previous contents.
func Load(ctx context.Context, db postgres.Querier, data Dataset, logger *slog.Logger) error {
	truncate := fmt.Sprintf("TRUNCATE %s, %s, %s, %s RESTART IDENTITY CASCADE",
		schema.Comments.Table, schema.Articles.Table, schema.Users.Table, schema.Topics.Table)
	if _, err := db.Exec(ctx, truncate); err != nil {
		return fmt.Errorf("seed: truncate: %w", err)
	}

	slugs := make(map[string]string, len(data.Topics))
	topics := postgres.SQL.Insert(schema.Topics.Table).Columns(schema.Topics.Columns()...)
	for _, topic := range data.Topics {
		key := slug.From(topic.Name)
		slugs[topic.Name] = key
		topics = topics.Values(key, topic.Description)
	}

	users := postgres.SQL.Insert(schema.Users.Table).Columns(schema.Users.Columns()...)
	for _, user := range data.Users {
		users = users.Values(user.Username, user.Name, user.AvatarURL)
	}

	articles := postgres.SQL.Insert(schema.Articles.Table).Columns(
		schema.Articles.Title, schema.Articles.Body, schema.Articles.Topic,
		schema.Articles.Author, schema.Articles.CreatedAt, schema.Articles.Votes,
	)
	for _, article := range data.Articles {
		key, ok := slugs[article.Topic]
		if !ok {
			return fmt.Errorf("seed: article %q references unknown topic %q", article.Title, article.Topic)
		}
		articles = articles.Values(article.Title, article.Body, key, article.Author, article.CreatedAt, article.Votes)
	}

	comments := postgres.SQL.Insert(schema.Comments.Table).Columns(
		schema.Comments.Body, schema.Comments.Author, schema.Comments.BelongsTo,
		schema.Comments.CreatedAt, schema.Comments.Votes,
	)
	for _, comment := range data.Comments {
		if comment.BelongsTo < 1 || comment.BelongsTo > len(data.Articles) {
			return fmt.Errorf("seed: comment references article %d of %d", comment.BelongsTo, len(data.Articles))
		}
		comments = comments.Values(comment.Body, comment.Author, comment.BelongsTo, comment.CreatedAt, comment.Votes)
	}

	steps := []struct {
		table string
		rows  int
		query squirrel.Sqlizer
	}{
		{schema.Topics.Table, len(data.Topics), topics},
		{schema.Users.Table, len(data.Users), users},
		{schema.Articles.Table, len(data.Articles), articles},
		{schema.Comments.Table, len(data.Comments), comments},
	}

	for _, step := range steps {
		if step.rows == 0 {
			continue
		}
		statement, args, err := step.query.ToSql()
		if err != nil {
			return fmt.Errorf("seed: build %s insert: %w", step.table, err)
		}
		if _, err := db.Exec(ctx, statement, args...); err != nil {
			return fmt.Errorf("seed: insert %s: %w", step.table, err)
		}
		logger.Info("seed_table_loaded", slog.String("table", step.table), slog.Int("rows", step.rows))
	}
	return nil
}
