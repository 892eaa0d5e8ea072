// Package api serves the INSERT editor and column list operations as JSON
// over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insertkit/internal/middleware"
)

// DefaultMaxBodyBytes is used when NewHandler is given a non-positive limit.
const DefaultMaxBodyBytes = 1 << 20

// Handler implements the /v1 endpoints. It is stateless; every request
// carries the full pair list it operates on.
type Handler struct {
	logger       *slog.Logger
	maxBodyBytes int64
	version      string
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, maxBodyBytes int64, version string) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{logger: logger, maxBodyBytes: maxBodyBytes, version: version}
}

// Mount registers the API routes on r.
func (h *Handler) Mount(r chi.Router) {
	r.Post("/insert/parse", h.ParseInsert)
	r.Post("/insert/build", h.BuildInsert)
	r.Post("/values/format", h.FormatValues)
	r.Post("/columns/convert", h.ConvertColumns)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// decode reads a single JSON object from the request body into dst.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &badRequestError{Message: fmt.Sprintf("invalid request body: %v", err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &badRequestError{Message: "invalid request body: trailing data after JSON object"}
	}
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody(err)
	body.RequestID = middleware.RequestIDFromContext(r.Context())
	if body.Code >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "request_id", body.RequestID, "error", err)
	} else {
		h.logger.Debug("request rejected", "path", r.URL.Path, "kind", body.Kind, "request_id", body.RequestID)
	}
	writeJSON(w, body.Code, body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
