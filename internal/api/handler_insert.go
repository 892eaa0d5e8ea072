package api

import (
	"net/http"

	"insertkit/internal/sqlinsert"
)

// ParseInsert handles POST /v1/insert/parse.
func (h *Handler) ParseInsert(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	parsed, err := sqlinsert.Parse(req.SQL)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parsed)
}

// BuildInsert handles POST /v1/insert/build.
func (h *Handler) BuildInsert(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	stmt, err := sqlinsert.Build(req.TableName, req.Pairs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BuildResponse{SQL: stmt})
}

// FormatValues handles POST /v1/values/format.
func (h *Handler) FormatValues(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	literals := make([]string, len(req.Values))
	for i, v := range req.Values {
		literals[i] = sqlinsert.FormatValue(v)
	}
	writeJSON(w, http.StatusOK, FormatResponse{Literals: literals})
}
