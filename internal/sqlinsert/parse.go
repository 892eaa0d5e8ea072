// Package sqlinsert parses a single INSERT statement into column/value pairs
// and regenerates a normalized statement from an edited pair list.
//
// The accepted grammar is deliberately narrow:
//
//	INSERT INTO <table> (<col>, ...) VALUES (<val>, ...) [;]
//
// Multi-row VALUES lists, multiple statements and expressions are not
// recognized. All functions are pure and safe for concurrent use.
package sqlinsert

import (
	"regexp"
	"strings"
)

// Pair is one column and its raw, unformatted value.
type Pair struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// ParsedInsert is the result of a successful Parse.
type ParsedInsert struct {
	TableName string `json:"table_name"`
	Pairs     []Pair `json:"pairs"`
}

// Columns returns the column names in order.
func (p *ParsedInsert) Columns() []string {
	cols := make([]string, len(p.Pairs))
	for i := range p.Pairs {
		cols[i] = p.Pairs[i].Column
	}
	return cols
}

// Values returns the raw values in order.
func (p *ParsedInsert) Values() []string {
	vals := make([]string, len(p.Pairs))
	for i := range p.Pairs {
		vals[i] = p.Pairs[i].Value
	}
	return vals
}

// The column and value captures are lazy and stop at the first ')'.
var insertRe = regexp.MustCompile("(?i)insert\\s+into\\s+([`\"\\\\]?\\w+[`\"\\\\]?)\\s*\\(([\\s\\S]+?)\\)\\s*values\\s*\\(([\\s\\S]+?)\\)\\s*;?")

const identifierQuotes = "`\"\\"

// Parse extracts the table name and the ordered column/value pairs from the
// first INSERT statement in text. Errors are always *ParseError.
func Parse(text string) (*ParsedInsert, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return nil, errEmptyInput()
	}

	m := insertRe.FindStringSubmatch(input)
	if m == nil {
		return nil, errMalformed()
	}

	columns := splitColumns(m[2])
	values := splitValues(m[3])
	if len(columns) != len(values) {
		return nil, errArity(len(columns), len(values))
	}

	pairs := make([]Pair, len(columns))
	for i := range columns {
		pairs[i] = Pair{Column: columns[i], Value: values[i]}
	}
	return &ParsedInsert{TableName: unquoteIdentifier(m[1]), Pairs: pairs}, nil
}

func splitColumns(s string) []string {
	parts := strings.Split(s, ",")
	cols := make([]string, len(parts))
	for i, p := range parts {
		cols[i] = unquoteIdentifier(strings.TrimSpace(p))
	}
	return cols
}

// splitValues splits a VALUES list on commas outside single-quoted runs.
// Inside a run '' is an escaped quote; a quote with no closing partner is an
// ordinary character. Zero-length segments are dropped.
func splitValues(s string) []string {
	var vals []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			if end := closingQuote(s, i); end >= 0 {
				i = end
			}
		case ',':
			vals = appendValue(vals, s[start:i])
			start = i + 1
		}
	}
	return appendValue(vals, s[start:])
}

func appendValue(vals []string, tok string) []string {
	if tok == "" {
		return vals
	}
	return append(vals, unquoteLiteral(strings.TrimSpace(tok)))
}

// closingQuote returns the index of the quote that closes the run opened at
// s[open], or -1 if the run is unterminated.
func closingQuote(s string, open int) int {
	for i := open + 1; i < len(s); i++ {
		if s[i] != '\'' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			i++
			continue
		}
		return i
	}
	return -1
}

// unquoteIdentifier strips one layer of backtick, double-quote or backslash
// wrapping. The opening and closing characters need not match.
func unquoteIdentifier(s string) string {
	if s != "" && strings.IndexByte(identifierQuotes, s[0]) >= 0 {
		s = s[1:]
	}
	if s != "" && strings.IndexByte(identifierQuotes, s[len(s)-1]) >= 0 {
		s = s[:len(s)-1]
	}
	return s
}

// unquoteLiteral strips one layer of single quotes. Doubled quotes inside
// are left as-is; FormatValue doubles quotes again on output.
func unquoteLiteral(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
