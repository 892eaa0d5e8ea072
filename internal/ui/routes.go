package ui

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the UI under the router it is given, normally the
// /ui subrouter.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/static/app.css", h.Stylesheet)

	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)
		r.Get("/", h.InsertEditor)
		r.Post("/insert/parse", h.InsertParse)
		r.Post("/insert/edit", h.InsertEdit)
		r.Get("/columns", h.ColumnsPage)
		r.Post("/columns/convert", h.ColumnsConvert)
	})
}
