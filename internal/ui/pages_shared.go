package ui

import (
	"strconv"
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

var navItems = []navItem{
	{Label: "INSERT editor", Href: "/ui", Key: "insert"},
	{Label: "Column list", Href: "/ui/columns", Key: "columns"},
}

func pageHead(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | insertkit")),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("stylesheet"), Href(uiStylesheetHref())),
		Script(Raw(themeInitScript)),
		Script(
			Type("module"),
			Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
		),
	)
}

func appPage(title, active string, body ...Node) Node {
	tabs := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := "tab"
		if item.Key == active {
			className += " active"
		}
		tabs = append(tabs, A(Href(item.Href), Class(className), Text(item.Label)))
	}

	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(Class("app-shell"),
				Div(
					Class("topbar"),
					H1(Class("page-title"), Text("SQL INSERT tools")),
					Button(Type("button"), ID("theme-toggle"), Class(secondaryButtonClass()), Text("Dark mode")),
				),
				Nav(Class("tabs"), Group(tabs)),
				Div(Class("content"), Group(body)),
			),
			Script(Raw(themeBehaviorScript)),
			Script(Raw(copyBehaviorScript)),
		),
	)
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(
				Class("app-shell"),
				H1(Class("page-title"), Text(title)),
				P(Text(message)),
				P(A(Href("/ui"), Text("Back to the editor"))),
			),
		),
	)
}

// alertBox renders msg as an error banner, or nothing when msg is empty.
func alertBox(msg string) Node {
	if msg == "" {
		return nil
	}
	return Div(Class("flash-error"), Role("alert"), Text(msg))
}

// outputBlock renders a labelled read-only result with a copy button.
func outputBlock(id, label, text string) Node {
	return Div(
		Class(cardClass()),
		Div(
			Class("output-header"),
			Label(For(id), Text(label)),
			Button(Type("button"), Class(secondaryButtonClass()), Attr("data-copy-target", id), Text("Copy")),
		),
		Pre(ID(id), Class("output"), Text(text)),
	)
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func cardClass(extra ...string) string {
	parts := []string{"card"}
	parts = append(parts, extra...)
	return strings.Join(parts, " ")
}

func mutedClass() string {
	return "color-fg-muted text-small"
}

func primaryButtonClass() string {
	return "btn btn-primary"
}

func secondaryButtonClass() string {
	return "btn"
}
