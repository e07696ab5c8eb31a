// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package topic

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/newsboard/internal/platform/constants"
)

// Cache is the subset of [redis.Client] used by [CachedRepository].
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedRepository is a read-through Redis cache in front of another Repository.
//
// Topics are immutable once created, so a TTL is the only invalidation.
// A cache outage degrades to reading the store directly.
type CachedRepository struct {
	next   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a Redis cache.
func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

/*
ListTopics serves topics from Redis when present, otherwise from the store.

Parameters:
  - context: context.Context

Returns:
  - []*Topic: All topics
  - error: Store errors only; cache errors are logged and skipped
*/
func (repository *CachedRepository) ListTopics(context context.Context) ([]*Topic, error) {

	// Try the cache first
	raw, err := repository.cache.Get(context, constants.RedisKeyTopics).Bytes()
	switch {
	case err == nil:
		var topics []*Topic
		if jsonErr := json.Unmarshal(raw, &topics); jsonErr == nil {
			return topics, nil
		}
		repository.logger.Warn("topic_cache_corrupt", slog.String("key", constants.RedisKeyTopics))
	case !errors.Is(err, redis.Nil):
		repository.logger.Warn("topic_cache_get_failed", slog.Any("error", err))
	}

	// Fall through to the store
	topics, err := repository.next.ListTopics(context)
	if err != nil {
		return nil, err
	}

	// Populate the cache, best effort
	if payload, jsonErr := json.Marshal(topics); jsonErr == nil {
		if setErr := repository.cache.Set(context, constants.RedisKeyTopics, payload, repository.ttl).Err(); setErr != nil {
			repository.logger.Warn("topic_cache_set_failed", slog.Any("error", setErr))
		}
	}

	return topics, nil
}
