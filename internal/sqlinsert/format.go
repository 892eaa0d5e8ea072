package sqlinsert

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	pseudoLiteralRe = regexp.MustCompile(`(?i)^(current_date|sysdate)$`)
	nextvalRe       = regexp.MustCompile(`(?i)^\w+\.nextval$`)
)

// FormatValue returns the SQL literal for a raw value. NULL, CURRENT_DATE,
// SYSDATE, <seq>.NEXTVAL and numbers pass through unchanged; anything else
// is single-quoted with embedded quotes doubled. Callers should pass trimmed
// values: the numeric check trims but the returned text does not.
func FormatValue(v string) string {
	switch {
	case strings.EqualFold(v, "null"):
		return v
	case pseudoLiteralRe.MatchString(v), nextvalRe.MatchString(v):
		return v
	case IsNumeric(v):
		return v
	}
	return QuoteString(v)
}

// IsNumeric reports whether v, once trimmed, is a complete decimal number
// such as 42, -1.5, .5 or 6.02e23.
func IsNumeric(v string) bool {
	t := strings.TrimSpace(v)
	if t == "" {
		return false
	}
	_, err := decimal.NewFromString(t)
	return err == nil
}

// QuoteString wraps s in single quotes, doubling any embedded quote.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
