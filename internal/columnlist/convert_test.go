package columnlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantComma  string
		wantQuoted string
		wantLines  int
	}{
		{
			name:       "blank line dropped",
			in:         "x\ny\n\nz",
			wantComma:  "x,y,z",
			wantQuoted: "'x','y','z'",
			wantLines:  3,
		},
		{
			name:       "crlf",
			in:         "a\r\nb\r\n",
			wantComma:  "a,b",
			wantQuoted: "'a','b'",
			wantLines:  2,
		},
		{
			name:       "whitespace-only lines dropped",
			in:         "a\n   \n\t\nb",
			wantComma:  "a,b",
			wantQuoted: "'a','b'",
			wantLines:  2,
		},
		{
			name:       "lines kept verbatim",
			in:         " a \nb c",
			wantComma:  " a ,b c",
			wantQuoted: "' a ','b c'",
			wantLines:  2,
		},
		{
			name:       "quotes doubled",
			in:         "o'brien\nx",
			wantComma:  "o'brien,x",
			wantQuoted: "'o''brien','x'",
			wantLines:  2,
		},
		{
			name:       "single line",
			in:         "only",
			wantComma:  "only",
			wantQuoted: "'only'",
			wantLines:  1,
		},
		{
			name:       "empty",
			in:         "\n\n",
			wantComma:  "",
			wantQuoted: "",
			wantLines:  0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(tc.in)
			assert.Equal(t, tc.wantComma, got.CommaJoined)
			assert.Equal(t, tc.wantQuoted, got.QuotedCommaJoined)
			assert.Equal(t, tc.wantLines, got.LineCount)
		})
	}
}

func TestLines_BareCarriageReturnIsContent(t *testing.T) {
	assert.Equal(t, []string{"a\rb"}, Lines("a\rb"))
}
