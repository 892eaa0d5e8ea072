package ui

import (
	"errors"
	"net/http"

	"insertkit/internal/editor"
	"insertkit/internal/sqlinsert"
)

const noDataMessage = "No data to generate SQL."

func (h *Handler) InsertEditor(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, editorPage(r, editorView{}))
}

func (h *Handler) InsertParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, editorPage(r, editorView{Error: "Invalid form submission."}))
		return
	}

	view := editorView{SQL: formRaw(r.PostForm, "sql")}
	s := &editor.Session{}
	if err := s.Load(view.SQL); err != nil {
		h.Logger.Debug("insert parse rejected", "error", err)
		view.Error = err.Error()
		renderHTML(w, statusFromError(err), editorPage(r, view))
		return
	}
	view.Session = s
	renderHTML(w, http.StatusOK, editorPage(r, view))
}

// InsertEdit rebuilds the session from the posted row table, applies one
// action and re-renders.
func (h *Handler) InsertEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, editorPage(r, editorView{Error: "Invalid form submission."}))
		return
	}

	view := editorView{
		SQL:     formRaw(r.PostForm, "sql"),
		Session: editor.New(formString(r.PostForm, "table_name"), formRows(r.PostForm)),
	}

	action, err := parseEditAction(formString(r.PostForm, "action"))
	if err != nil {
		view.Error = err.Error()
		renderHTML(w, http.StatusBadRequest, editorPage(r, view))
		return
	}

	switch action.Name {
	case "add":
		view.Session.AddRow("", "")
	case "remove":
		if err := view.Session.RemoveRow(action.Index); err != nil {
			view.Error = err.Error()
			renderHTML(w, http.StatusBadRequest, editorPage(r, view))
			return
		}
	case "clear":
		renderHTML(w, http.StatusOK, editorPage(r, editorView{}))
		return
	case "generate":
		if view.Session.Len() == 0 {
			view.Error = noDataMessage
			renderHTML(w, http.StatusUnprocessableEntity, editorPage(r, view))
			return
		}
		out, err := view.Session.Generate()
		if err != nil {
			view.Error = err.Error()
			renderHTML(w, statusFromError(err), editorPage(r, view))
			return
		}
		view.Output = out
	}

	renderHTML(w, http.StatusOK, editorPage(r, view))
}

func statusFromError(err error) int {
	var parseErr *sqlinsert.ParseError
	var buildErr *sqlinsert.BuildError
	if errors.As(err, &parseErr) || errors.As(err, &buildErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
