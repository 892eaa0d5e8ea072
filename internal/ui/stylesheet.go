package ui

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

const stylesheetPath = "/ui/static/app.css"

// stylesheetETag is derived from the stylesheet body so browsers revalidate
// only when it changes.
var stylesheetETag = func() string {
	sum := sha256.Sum256([]byte(appStylesheet))
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

func uiStylesheetHref() string {
	return stylesheetPath + "?v=" + stylesheetETag[1:len(stylesheetETag)-1]
}

// Stylesheet serves the UI stylesheet.
func (h *Handler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("If-None-Match") == stylesheetETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("ETag", stylesheetETag)
	_, _ = w.Write([]byte(appStylesheet))
}

const appStylesheet = `:root {
  --bg: #f6f8fa;
  --fg: #1f2328;
  --muted: #59636e;
  --card: #ffffff;
  --border: #d1d9e0;
  --accent: #0969da;
  --accent-fg: #ffffff;
  --danger-bg: #ffebe9;
  --danger-fg: #82071e;
  --code-bg: #eff2f5;
}
[data-theme="dark"] {
  --bg: #0d1117;
  --fg: #e6edf3;
  --muted: #9198a1;
  --card: #151b23;
  --border: #3d444d;
  --accent: #4493f8;
  --accent-fg: #0d1117;
  --danger-bg: #3c1618;
  --danger-fg: #ffa198;
  --code-bg: #212830;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  background: var(--bg);
  color: var(--fg);
}
.app-shell { max-width: 64rem; margin: 0 auto; padding: 1.5rem 1rem; }
.topbar { display: flex; align-items: center; justify-content: space-between; margin-bottom: 1rem; }
.page-title { font-size: 1.5rem; margin: 0; }
.tabs { display: flex; gap: 0.25rem; border-bottom: 1px solid var(--border); margin-bottom: 1rem; }
.tab { padding: 0.5rem 1rem; color: var(--muted); text-decoration: none; border-bottom: 2px solid transparent; }
.tab.active { color: var(--fg); border-bottom-color: var(--accent); font-weight: 600; }
.card { background: var(--card); border: 1px solid var(--border); border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
.color-fg-muted { color: var(--muted); }
.text-small { font-size: 0.875rem; }
.flash-error { background: var(--danger-bg); color: var(--danger-fg); border-radius: 6px; padding: 0.75rem 1rem; margin-bottom: 1rem; }
label { display: block; font-weight: 600; margin-bottom: 0.25rem; }
textarea, input[type="text"] {
  width: 100%;
  font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
  font-size: 0.875rem;
  padding: 0.5rem;
  color: var(--fg);
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 6px;
}
textarea { min-height: 8rem; resize: vertical; }
.btn {
  display: inline-block;
  padding: 0.375rem 0.875rem;
  font-size: 0.875rem;
  color: var(--fg);
  background: var(--card);
  border: 1px solid var(--border);
  border-radius: 6px;
  cursor: pointer;
}
.btn-primary { background: var(--accent); color: var(--accent-fg); border-color: var(--accent); }
.btn-danger { color: var(--danger-fg); }
.actions { display: flex; gap: 0.5rem; margin-top: 0.75rem; flex-wrap: wrap; }
table.rows { width: 100%; border-collapse: collapse; }
table.rows th, table.rows td { text-align: left; padding: 0.375rem; border-bottom: 1px solid var(--border); }
table.rows td.row-actions { width: 1%; white-space: nowrap; }
pre.output {
  background: var(--code-bg);
  padding: 0.75rem;
  border-radius: 6px;
  overflow-x: auto;
  white-space: pre-wrap;
  word-break: break-all;
}
.output-header { display: flex; align-items: center; justify-content: space-between; }
`
