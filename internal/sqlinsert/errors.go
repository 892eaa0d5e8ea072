package sqlinsert

import "fmt"

// ErrorKind classifies why a parse or build was rejected.
type ErrorKind string

// Error kinds reported by Parse and Build.
const (
	KindEmptyInput         ErrorKind = "EMPTY_INPUT"
	KindMalformedStatement ErrorKind = "MALFORMED_STATEMENT"
	KindArityMismatch      ErrorKind = "ARITY_MISMATCH"
	KindNoColumns          ErrorKind = "NO_COLUMNS"
)

// ParseError reports that the input was not a single INSERT statement
// of the supported shape, or that its column and value counts differ.
// ColumnCount and ValueCount are only set for KindArityMismatch.
type ParseError struct {
	Kind        ErrorKind
	Message     string
	ColumnCount int
	ValueCount  int
}

func (e *ParseError) Error() string { return e.Message }

// BuildError reports that no statement could be generated from a pair list.
type BuildError struct {
	Kind    ErrorKind
	Message string
}

func (e *BuildError) Error() string { return e.Message }

func errEmptyInput() *ParseError {
	return &ParseError{Kind: KindEmptyInput, Message: "Please paste an INSERT script."}
}

func errMalformed() *ParseError {
	return &ParseError{
		Kind:    KindMalformedStatement,
		Message: "Invalid INSERT statement format. Could not parse the script. Ensure it is a single INSERT statement.",
	}
}

func errArity(columns, values int) *ParseError {
	return &ParseError{
		Kind:        KindArityMismatch,
		Message:     fmt.Sprintf("Number of columns (%d) and values (%d) do not match.", columns, values),
		ColumnCount: columns,
		ValueCount:  values,
	}
}

func errNoColumns() *BuildError {
	return &BuildError{Kind: KindNoColumns, Message: "Please provide at least one column name."}
}
