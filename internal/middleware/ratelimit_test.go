package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newLimited(t *testing.T, cfg RateLimitConfig) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return RateLimiter(ctx, cfg)(okHandler())
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	handler := newLimited(t, RateLimitConfig{RequestsPerSecond: 100, Burst: 10})

	for range 5 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	handler := newLimited(t, RateLimitConfig{RequestsPerSecond: 1, Burst: 2})

	// Exhaust the burst
	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.InDelta(t, float64(429), body["code"], 0.001)
	assert.Equal(t, "RATE_LIMITED", body["kind"])
	assert.Equal(t, "rate limit exceeded", body["message"])
}

func TestRateLimiter_PerClientIsolation(t *testing.T) {
	handler := newLimited(t, RateLimitConfig{RequestsPerSecond: 1, Burst: 2})

	// Client A exhausts its burst.
	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Same IP, different port: still client A.
	reqA := httptest.NewRequest(http.MethodGet, "/", nil)
	reqA.RemoteAddr = "10.0.0.1:5678"
	recA := httptest.NewRecorder()
	handler.ServeHTTP(recA, reqA)
	assert.Equal(t, http.StatusTooManyRequests, recA.Code)

	reqB := httptest.NewRequest(http.MethodGet, "/", nil)
	reqB.RemoteAddr = "10.0.0.2:1234"
	recB := httptest.NewRecorder()
	handler.ServeHTTP(recB, reqB)
	assert.Equal(t, http.StatusOK, recB.Code, "different client should not be affected by Client A's rate limit")
}

func TestClientIP_ExtractsHost(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{name: "IPv4 with port", remoteAddr: "192.168.1.1:12345", want: "192.168.1.1"},
		{name: "IPv6 with port", remoteAddr: "[::1]:12345", want: "::1"},
		{name: "no port", remoteAddr: "192.168.1.1", want: "192.168.1.1"},
		{name: "X-Forwarded-For ignored", remoteAddr: "10.0.0.1:1234", xff: "203.0.113.50", want: "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
