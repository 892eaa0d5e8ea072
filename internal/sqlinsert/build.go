package sqlinsert

import "strings"

// Build renders an INSERT statement for table from pairs:
//
//	INSERT INTO <table> (<c1>, <c2>)
//	VALUES (<v1>, <v2>);
//
// Pairs with a blank column are skipped along with their value. Values are
// trimmed and passed through FormatValue. Identifiers are emitted as given,
// without re-quoting. If no pair survives the error is a *BuildError.
func Build(table string, pairs []Pair) (string, error) {
	cols := make([]string, 0, len(pairs))
	vals := make([]string, 0, len(pairs))
	for _, p := range pairs {
		col := strings.TrimSpace(p.Column)
		if col == "" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, FormatValue(strings.TrimSpace(p.Value)))
	}
	if len(cols) == 0 {
		return "", errNoColumns()
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(")\nVALUES (")
	b.WriteString(strings.Join(vals, ", "))
	b.WriteString(");")
	return b.String(), nil
}
