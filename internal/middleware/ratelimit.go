package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for the rate limiter middleware.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit (tokens added per second).
	RequestsPerSecond float64
	// Burst is the maximum number of requests allowed in a burst.
	Burst int
	// IdleTTL is how long an idle client's limiter is kept (default 10m).
	IdleTTL time.Duration
}

// clientLimiter tracks a per-client rate limiter and when it was last seen.
type clientLimiter struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

func (c *clientLimiter) touch(now time.Time) {
	c.mu.Lock()
	c.lastSeen = now
	c.mu.Unlock()
}

func (c *clientLimiter) idleSince(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastSeen)
}

// RateLimiter returns an HTTP middleware that enforces a per-client token-bucket
// rate limit. When the limit is exceeded, it responds with 429 Too Many Requests
// and sets standard rate-limit headers. Stale client entries are swept until
// ctx is done.
func RateLimiter(ctx context.Context, cfg RateLimitConfig) func(http.Handler) http.Handler {
	var clients sync.Map // map[string]*clientLimiter

	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				clients.Range(func(key, value any) bool {
					if value.(*clientLimiter).idleSince(now) > ttl {
						clients.Delete(key)
					}
					return true
				})
			}
		}
	}()

	getLimiter := func(ip string) *rate.Limiter {
		now := time.Now()
		if v, ok := clients.Load(ip); ok {
			cl := v.(*clientLimiter)
			cl.touch(now)
			return cl.limiter
		}
		cl := &clientLimiter{
			limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
			lastSeen: now,
		}
		actual, _ := clients.LoadOrStore(ip, cl)
		return actual.(*clientLimiter).limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := getLimiter(clientIP(r))

			reservation := limiter.Reserve()
			if !reservation.OK() {
				// Limiter cannot grant the request even with infinite wait.
				writeTooManyRequests(w, 0)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()
				writeTooManyRequests(w, int(delay.Seconds())+1)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Burst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Second).Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client IP address from the request, stripping the port.
// Only uses RemoteAddr; X-Forwarded-For is untrusted and ignored.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeTooManyRequests(w http.ResponseWriter, retryAfterSecs int) {
	if retryAfterSecs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSecs))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    http.StatusTooManyRequests,
		"kind":    "RATE_LIMITED",
		"message": "rate limit exceeded",
	})
}
