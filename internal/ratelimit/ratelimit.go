// Package ratelimit enforces fixed-window request limits keyed by client
// network address. Counters live in an injected CounterStore so that tests
// can drive a fake clock and deployments can share quota through Redis.
package ratelimit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Policy names one fixed-window budget. Policies are independent: draining
// one never touches another's counters for the same address.
type Policy struct {
	Name   string
	Window time.Duration
	Max    int
}

// CounterStore increments and returns the counter for (policy, key) within
// the current fixed window. Implementations must be safe for concurrent
// use; the increment-and-read must not lose updates.
type CounterStore interface {
	Incr(ctx context.Context, policy, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// Limiter applies policies against a shared counter store.
type Limiter struct {
	store             CounterStore
	trustedProxyCount int
}

// New creates a Limiter. It assumes a single trusted reverse proxy when
// reading X-Forwarded-For.
func New(store CounterStore) *Limiter {
	return &Limiter{store: store, trustedProxyCount: 1}
}

type limitResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter"`
}

// Middleware enforces the policy before the wrapped handler runs. Every
// arriving request consumes quota, including ones the downstream handler
// would reject. On exceed it responds 429 with the seconds remaining until
// the window resets and never invokes next.
func (l *Limiter) Middleware(p Policy, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr := l.ClientAddress(r)

			count, resetAt, err := l.store.Incr(r.Context(), p.Name, addr, p.Window)
			if err != nil {
				// A broken counter store must not take the API down.
				slog.Error("rate limit counter failed", "policy", p.Name, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > p.Max {
				retryAfter := int(time.Until(resetAt).Seconds()) + 1
				if retryAfter < 1 {
					retryAfter = 1
				}
				slog.Warn("rate limit exceeded", "policy", p.Name, "addr", addr, "count", count)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(limitResponse{
					Success:    false,
					Message:    message,
					RetryAfter: retryAfter,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MiddlewareForPrefix is Middleware restricted to request paths under
// prefix; anything else passes through without consuming quota.
func (l *Limiter) MiddlewareForPrefix(prefix string, p Policy, message string) func(http.Handler) http.Handler {
	limited := l.Middleware(p, message)
	return func(next http.Handler) http.Handler {
		guarded := limited(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) {
				guarded.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientAddress extracts the real client IP, reading from the rightmost
// trusted proxy position in X-Forwarded-For to prevent spoofing.
func (l *Limiter) ClientAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && l.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - l.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			if ip := strings.TrimSpace(parts[idx]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
