// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// limiterKeyPrefix namespaces limiter keys in Valkey.
	limiterKeyPrefix = "ratelimit:login:"

	// limiterWindow is the fixed counting window per client IP.
	limiterWindow = time.Minute
)

// RateLimiter throttles login attempts per client IP using a fixed window
// counter in Valkey. Counting in Valkey keeps the limit consistent across
// replicas of this service.
type RateLimiter struct {
	client     *redis.Client
	limit      int
	trustProxy bool
}

// NewRateLimiter creates a limiter allowing limit requests per minute per
// client IP. A nil client disables limiting entirely. trustProxy controls
// whether forwarding headers are honored when resolving the client IP;
// without a trusted proxy in front they are attacker-controlled and would
// let a caller rotate its limiter key.
func NewRateLimiter(client *redis.Client, limit int, trustProxy bool) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, trustProxy: trustProxy}
}

// Middleware returns an HTTP middleware enforcing the limit. When Valkey
// is unavailable the request is allowed through — the limiter protects
// against brute force, it must not take the login path down with it.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.client == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := limiterKeyPrefix + rl.clientIP(r)

		count, err := rl.client.Incr(r.Context(), key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			rl.client.Expire(r.Context(), key, limiterWindow)
		}

		if count > int64(rl.limit) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"Too many login attempts, try again later"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the address to throttle on. Forwarding headers are
// consulted only in trust-proxy mode.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// The leftmost entry is the original client.
			if idx := strings.IndexByte(xff, ','); idx != -1 {
				return strings.TrimSpace(xff[:idx])
			}
			return strings.TrimSpace(xff)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
