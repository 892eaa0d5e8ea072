// Package editor holds the editable state of one parse, edit, generate cycle.
//
// A Session is owned by its caller (a request handler, a CLI invocation) and
// is not safe for concurrent use. The parsing and formatting rules live in
// sqlinsert; Session only sequences them.
package editor

import (
	"fmt"
	"strings"

	"insertkit/internal/sqlinsert"
)

// Session is the table name and ordered rows currently being edited.
type Session struct {
	TableName string           `json:"table_name"`
	Rows      []sqlinsert.Pair `json:"rows"`
}

// New returns a session for table with a copy of rows.
func New(table string, rows []sqlinsert.Pair) *Session {
	s := &Session{TableName: table}
	s.Rows = append(s.Rows, rows...)
	return s
}

// Load parses text and replaces the session contents. On error the session
// is left unchanged.
func (s *Session) Load(text string) error {
	parsed, err := sqlinsert.Parse(text)
	if err != nil {
		return err
	}
	s.TableName = parsed.TableName
	s.Rows = parsed.Pairs
	return nil
}

// Len returns the number of rows.
func (s *Session) Len() int { return len(s.Rows) }

// AddRow appends a row.
func (s *Session) AddRow(column, value string) {
	s.Rows = append(s.Rows, sqlinsert.Pair{Column: column, Value: value})
}

// RemoveRow deletes the row at index i.
func (s *Session) RemoveRow(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Rows = append(s.Rows[:i], s.Rows[i+1:]...)
	return nil
}

// UpdateRow replaces the row at index i.
func (s *Session) UpdateRow(i int, column, value string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Rows[i] = sqlinsert.Pair{Column: column, Value: value}
	return nil
}

// Set assigns value to the first row whose column matches (case-insensitive,
// ignoring surrounding whitespace), appending a new row if none does.
func (s *Session) Set(column, value string) {
	if i := s.Index(column); i >= 0 {
		s.Rows[i].Value = value
		return
	}
	s.AddRow(column, value)
}

// Drop removes the first row whose column matches. It reports whether a row
// was removed.
func (s *Session) Drop(column string) bool {
	i := s.Index(column)
	if i < 0 {
		return false
	}
	s.Rows = append(s.Rows[:i], s.Rows[i+1:]...)
	return true
}

// Index returns the position of the first row for column, or -1.
func (s *Session) Index(column string) int {
	want := strings.TrimSpace(column)
	for i := range s.Rows {
		if strings.EqualFold(strings.TrimSpace(s.Rows[i].Column), want) {
			return i
		}
	}
	return -1
}

// Generate builds the INSERT statement for the current rows.
func (s *Session) Generate() (string, error) {
	return sqlinsert.Build(s.TableName, s.Rows)
}

// Clear resets the session.
func (s *Session) Clear() {
	s.TableName = ""
	s.Rows = nil
}

// Clone returns an independent copy.
func (s *Session) Clone() *Session {
	return New(s.TableName, s.Rows)
}

func (s *Session) checkIndex(i int) error {
	if i < 0 || i >= len(s.Rows) {
		return fmt.Errorf("row %d out of range (have %d rows)", i, len(s.Rows))
	}
	return nil
}
