package ui

import (
	"net/http"
	"strconv"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"

	"insertkit/internal/editor"
)

// editorView is everything the INSERT editor page shows.
type editorView struct {
	SQL     string          // pasted statement, echoed back into the textarea
	Session *editor.Session // nil until a statement parses
	Error   string
	Output  string
}

func editorPage(r *http.Request, v editorView) Node {
	return appPage("INSERT editor", "insert",
		alertBox(v.Error),
		Form(
			Method("post"),
			Action("/ui/insert/parse"),
			Class(cardClass()),
			csrfField(r),
			Label(For("sql-input"), Text("INSERT statement")),
			P(Class(mutedClass()), Text("Paste a single INSERT INTO ... VALUES (...) statement.")),
			Textarea(ID("sql-input"), Name("sql"), Rows("8"), Attr("spellcheck", "false"), Text(v.SQL)),
			Div(
				Class("actions"),
				Button(Type("submit"), Class(primaryButtonClass()), Text("Parse")),
			),
		),
		rowEditor(r, v),
		If(v.Output != "", outputBlock("sql-output", "Generated SQL", v.Output)),
	)
}

func rowEditor(r *http.Request, v editorView) Node {
	if v.Session == nil {
		return nil
	}
	s := v.Session

	rows := make([]Node, 0, s.Len())
	for i, row := range s.Rows {
		idx := strconv.Itoa(i)
		rows = append(rows, Tr(
			data.Show(containsExpr(row.Column)),
			Td(Input(Type("text"), Name("column"), Value(row.Column), Aria("label", "Column "+idx))),
			Td(Input(Type("text"), Name("value"), Value(row.Value), Aria("label", "Value "+idx))),
			Td(
				Class("row-actions"),
				Button(Type("submit"), Name("action"), Value("remove:"+idx), Class(secondaryButtonClass()+" btn-danger"), Text("Remove")),
			),
		))
	}

	var table Node
	if len(rows) == 0 {
		table = P(Class(mutedClass()), Text("No rows. Add one to start building a statement."))
	} else {
		table = Table(
			Class("rows"),
			THead(Tr(Th(Text("Column")), Th(Text("Value")), Th())),
			TBody(Group(rows)),
		)
	}

	return Form(
		Method("post"),
		Action("/ui/insert/edit"),
		Class(cardClass()),
		data.Signals(map[string]any{"q": ""}),
		csrfField(r),
		Input(Type("hidden"), Name("sql"), Value(v.SQL)),
		Label(For("table-name"), Text("Table name")),
		Input(Type("text"), ID("table-name"), Name("table_name"), Value(s.TableName)),
		Div(
			Class("actions"),
			Button(Type("submit"), Name("action"), Value("generate"), Class(primaryButtonClass()), Text("Generate SQL")),
			Button(Type("submit"), Name("action"), Value("add"), Class(secondaryButtonClass()), Text("Add row")),
			Button(Type("submit"), Name("action"), Value("clear"), Class(secondaryButtonClass()), Text("Clear")),
		),
		If(len(rows) > 0, Div(
			Class("actions"),
			Input(Type("text"), data.Bind("q"), Placeholder("Filter rows by column name"), Aria("label", "Quick filter")),
		)),
		table,
		P(Class(mutedClass()), Text(strconv.Itoa(s.Len())+" row(s)")),
	)
}
