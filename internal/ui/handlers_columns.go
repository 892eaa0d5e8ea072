package ui

import (
	"net/http"

	"insertkit/internal/columnlist"
)

const noColumnDataMessage = "Please paste some column data."

func (h *Handler) ColumnsPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, columnsPage(r, columnsView{}))
}

func (h *Handler) ColumnsConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, columnsPage(r, columnsView{Error: "Invalid form submission."}))
		return
	}

	view := columnsView{Text: formRaw(r.PostForm, "columns")}
	res := columnlist.Convert(view.Text)
	if res.LineCount == 0 {
		view.Error = noColumnDataMessage
		renderHTML(w, http.StatusUnprocessableEntity, columnsPage(r, view))
		return
	}
	view.Result = &res
	renderHTML(w, http.StatusOK, columnsPage(r, view))
}
