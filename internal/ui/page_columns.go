package ui

import (
	"net/http"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"insertkit/internal/columnlist"
)

type columnsView struct {
	Text   string
	Result *columnlist.Result
	Error  string
}

func columnsPage(r *http.Request, v columnsView) Node {
	var results Node
	if v.Result != nil {
		results = Group([]Node{
			P(Class(mutedClass()), Text(strconv.Itoa(v.Result.LineCount)+" column(s)")),
			outputBlock("columns-comma", "Comma separated", v.Result.CommaJoined),
			outputBlock("columns-quoted", "Quoted and comma separated", v.Result.QuotedCommaJoined),
		})
	}

	return appPage("Column list", "columns",
		alertBox(v.Error),
		Form(
			Method("post"),
			Action("/ui/columns/convert"),
			Class(cardClass()),
			csrfField(r),
			Label(For("columns-input"), Text("Column names")),
			P(Class(mutedClass()), Text("One column per line, for example copied from a spreadsheet.")),
			Textarea(ID("columns-input"), Name("columns"), Rows("10"), Attr("spellcheck", "false"), Text(v.Text)),
			Div(
				Class("actions"),
				Button(Type("submit"), Class(primaryButtonClass()), Text("Convert")),
				A(Href("/ui/columns"), Class(secondaryButtonClass()), Text("Clear")),
			),
		),
		results,
	)
}
