// Package ui serves the browser front end: the INSERT editor and the column
// list converter, rendered server-side with gomponents.
package ui

import (
	"log/slog"
	"net/http"

	gomponents "maragu.dev/gomponents"
)

// Handler renders the UI pages. Every page is derived from the posted form,
// so the handler keeps no per-user state.
type Handler struct {
	Logger     *slog.Logger
	Production bool
}

func NewHandler(logger *slog.Logger, production bool) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		Logger:     logger.With("component", "ui"),
		Production: production,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
