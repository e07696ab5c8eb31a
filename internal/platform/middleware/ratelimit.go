// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/newsboard/internal/platform/constants"
	"github.com/taibuivan/newsboard/internal/platform/respond"
)

// MsgTooManyRequests is the body of a throttled response.
const MsgTooManyRequests = "Too Many Requests"

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*rateLimitClient),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether a request from ip may proceed.
func (limiter *RateLimiter) Allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, found := limiter.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[ip] = client
	}
	client.lastSeen = limiter.now()

	return client.limiter.Allow()
}

// Sweep forgets clients idle for longer than ttl and returns how many were removed.
func (limiter *RateLimiter) Sweep(ttl time.Duration) int {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	removed := 0
	for ip, client := range limiter.clients {
		if limiter.now().Sub(client.lastSeen) > ttl {
			delete(limiter.clients, ip)
			removed++
		}
	}
	return removed
}

// Run sweeps idle clients periodically until context is cancelled.
func (limiter *RateLimiter) Run(context context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.Sweep(constants.RateLimitClientTTL)
		case <-context.Done():
			return
		}
	}
}

// Middleware throttles requests per client IP.
func (limiter *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !limiter.Allow(RealIP(request)) {
			respond.JSON(writer, http.StatusTooManyRequests, respond.ErrorEnvelope{Msg: MsgTooManyRequests})
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RateLimit builds a limiter with the platform defaults and starts its sweeper.
func RateLimit(context context.Context) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Run(context)
	return limiter.Middleware
}
