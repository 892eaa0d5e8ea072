package api

import (
	"net/http"

	"insertkit/internal/columnlist"
)

// ConvertColumns handles POST /v1/columns/convert.
func (h *Handler) ConvertColumns(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, columnlist.Convert(req.Text))
}
