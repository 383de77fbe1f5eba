// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter provides per-IP rate limiting for the admin endpoints,
// counting requests in Valkey so the limit holds across replicas.
type RateLimiter struct {
	client *redis.Client
	limit  int           // max requests per window
	window time.Duration // counting window duration
}

// NewRateLimiter creates a rate limiter that allows limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// allow increments the counter for key and reports whether it is within
// the limit. The first hit in a window sets the key's expiry.
func (rl *RateLimiter) allow(r *http.Request, key string) bool {
	ctx := r.Context()

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		// Valkey down must not take the API with it.
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}
	if count == 1 {
		rl.client.Expire(ctx, key, rl.window)
	}
	return count <= int64(rl.limit)
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:" + clientIP(r)
		if !rl.allow(r, key) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
