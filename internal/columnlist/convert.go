// Package columnlist turns a pasted, newline-separated list (a column copied
// out of a spreadsheet or query result) into SQL-ready comma lists.
package columnlist

import (
	"regexp"
	"strings"
)

var lineBreakRe = regexp.MustCompile(`\r?\n`)

// Result holds both renderings of a converted list.
type Result struct {
	CommaJoined       string `json:"comma_joined"`
	QuotedCommaJoined string `json:"quoted_comma_joined"`
	LineCount         int    `json:"line_count"`
}

// Lines splits text on LF or CRLF and drops lines that are blank. Kept
// lines are returned verbatim, surrounding whitespace included.
func Lines(text string) []string {
	raw := lineBreakRe.Split(text, -1)
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Convert joins the non-blank lines of text with ",", once as-is and once
// with every line single-quoted (embedded quotes doubled).
func Convert(text string) Result {
	lines := Lines(text)
	quoted := make([]string, len(lines))
	for i, l := range lines {
		quoted[i] = "'" + strings.ReplaceAll(l, "'", "''") + "'"
	}
	return Result{
		CommaJoined:       strings.Join(lines, ","),
		QuotedCommaJoined: strings.Join(quoted, ","),
		LineCount:         len(lines),
	}
}
