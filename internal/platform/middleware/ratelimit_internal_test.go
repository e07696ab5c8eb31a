// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

/*
TestRateLimiter_Sweep forgets only idle clients.
*/
func TestRateLimiter_Sweep(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(10, 10)
	limiter.now = func() time.Time { return clock }

	limiter.Allow("10.0.0.1")
	clock = clock.Add(2 * time.Minute)
	limiter.Allow("10.0.0.2")
	clock = clock.Add(2 * time.Minute)

	assert.Equal(t, 1, limiter.Sweep(3*time.Minute))
	assert.Len(t, limiter.clients, 1)
	assert.Contains(t, limiter.clients, "10.0.0.2")
}
