package sqlinsert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_RoundTrip(t *testing.T) {
	parsed, err := Parse("INSERT INTO t (a,b) VALUES (1,'x')")
	require.NoError(t, err)

	got, err := Build(parsed.TableName, parsed.Pairs)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t (a, b)\nVALUES (1, 'x');", got)
}

func TestBuild_SkipsBlankColumns(t *testing.T) {
	got, err := Build("t", []Pair{{Column: "", Value: "1"}, {Column: "b", Value: "2"}})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t (b)\nVALUES (2);", got)

	got, err = Build("t", []Pair{{Column: "  ", Value: "x"}, {Column: "c", Value: "y"}, {Column: "\t", Value: ""}})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t (c)\nVALUES ('y');", got)
}

func TestBuild_TrimsAndFormats(t *testing.T) {
	got, err := Build("people", []Pair{
		{Column: " id ", Value: " seq_people.NEXTVAL "},
		{Column: "name", Value: " O'Hara "},
		{Column: "born", Value: "SYSDATE"},
		{Column: "note", Value: "null"},
		{Column: "score", Value: "9.5"},
		{Column: "empty", Value: "   "},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO people (id, name, born, note, score, empty)\nVALUES (seq_people.NEXTVAL, 'O''Hara', SYSDATE, null, 9.5, '');",
		got)
}

func TestBuild_IdentifiersNotRequoted(t *testing.T) {
	got, err := Build("Orders", []Pair{{Column: "Order Id", Value: "1"}})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO Orders (Order Id)\nVALUES (1);", got)
}

func TestBuild_NoColumns(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
	}{
		{name: "nil", pairs: nil},
		{name: "empty", pairs: []Pair{}},
		{name: "all blank", pairs: []Pair{{Column: "", Value: "1"}, {Column: " ", Value: "2"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Build("t", tc.pairs)
			assert.Empty(t, got)
			var be *BuildError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, KindNoColumns, be.Kind)
			assert.Equal(t, "Please provide at least one column name.", be.Error())
		})
	}
}

func TestBuild_PreservesOrder(t *testing.T) {
	pairs := []Pair{{Column: "z", Value: "1"}, {Column: "a", Value: "2"}, {Column: "m", Value: "3"}}
	got, err := Build("t", pairs)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t (z, a, m)\nVALUES (1, 2, 3);", got)
}
