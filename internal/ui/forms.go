package ui

import (
	"fmt"
	"strconv"
	"strings"

	"insertkit/internal/sqlinsert"
)

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

// formRaw returns the first value for key without trimming, for pasted text
// whose whitespace is meaningful to the parser.
func formRaw(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return first(values[key])
}

// formRows zips the repeated column and value fields of the row table. Values
// keep their whitespace; Build trims them when generating.
func formRows(values map[string][]string) []sqlinsert.Pair {
	columns := values["column"]
	vals := values["value"]
	n := len(columns)
	if len(vals) > n {
		n = len(vals)
	}
	rows := make([]sqlinsert.Pair, 0, n)
	for i := 0; i < n; i++ {
		var p sqlinsert.Pair
		if i < len(columns) {
			p.Column = columns[i]
		}
		if i < len(vals) {
			p.Value = vals[i]
		}
		rows = append(rows, p)
	}
	return rows
}

// editAction is one button press on the row table.
type editAction struct {
	Name  string // add, remove, generate, clear
	Index int    // row index for remove
}

func parseEditAction(raw string) (editAction, error) {
	raw = strings.TrimSpace(raw)
	name, arg, hasArg := strings.Cut(raw, ":")
	switch name {
	case "add", "generate", "clear":
		if hasArg {
			return editAction{}, fmt.Errorf("action %q takes no argument", name)
		}
		return editAction{Name: name}, nil
	case "remove":
		i, err := strconv.Atoi(arg)
		if !hasArg || err != nil {
			return editAction{}, fmt.Errorf("action %q needs a row index", raw)
		}
		return editAction{Name: name, Index: i}, nil
	default:
		return editAction{}, fmt.Errorf("unknown action %q", raw)
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
