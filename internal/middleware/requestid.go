// Package middleware provides the HTTP middleware shared by the API and UI:
// request IDs, per-client rate limiting and structured request logging.
package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// Incoming IDs end up in log lines; anything outside this set is replaced.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// RequestID returns an HTTP middleware that assigns a unique request ID to each
// request. A well-formed incoming X-Request-ID header is reused; otherwise a
// new UUID is generated. The ID is set on the response header and stored in
// the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
