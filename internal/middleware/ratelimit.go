package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// ratelimitKeyPrefix namespaces limiter counters in Valkey.
const ratelimitKeyPrefix = "ratelimit:"

// RateLimiter provides per-IP fixed-window rate limiting backed by
// Valkey, so limits hold across multiple server instances. It guards
// the write endpoints (counter bumps, ratings, content mutations)
// against abuse without affecting read traffic.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window
// per client IP. A limit of zero disables limiting.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window}
}

// allow increments the caller's window counter and reports whether the
// request is within the limit. Valkey errors fail open: a broken cache
// must not take write traffic down with it.
func (rl *RateLimiter) allow(r *http.Request, ip string) bool {
	ctx := r.Context()
	key := fmt.Sprintf("%s%s:%d", ratelimitKeyPrefix, ip, time.Now().Unix()/int64(rl.window.Seconds()))

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}

	return incr.Val() <= int64(rl.limit)
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ip := ClientIP(r)
		if !rl.allow(r, ip) {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
