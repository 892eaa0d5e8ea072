package api

import (
	"insertkit/internal/columnlist"
	"insertkit/internal/sqlinsert"
)

// ParseRequest is the body of POST /v1/insert/parse.
type ParseRequest struct {
	SQL string `json:"sql"`
}

// ParseResponse is the parsed table name and ordered pairs.
type ParseResponse = sqlinsert.ParsedInsert

// BuildRequest is the body of POST /v1/insert/build.
type BuildRequest struct {
	TableName string           `json:"table_name"`
	Pairs     []sqlinsert.Pair `json:"pairs"`
}

// BuildResponse carries the generated statement.
type BuildResponse struct {
	SQL string `json:"sql"`
}

// FormatRequest is the body of POST /v1/values/format.
type FormatRequest struct {
	Values []string `json:"values"`
}

// FormatResponse holds one literal per requested value, in order.
type FormatResponse struct {
	Literals []string `json:"literals"`
}

// ConvertRequest is the body of POST /v1/columns/convert.
type ConvertRequest struct {
	Text string `json:"text"`
}

// ConvertResponse is both renderings of the converted list.
type ConvertResponse = columnlist.Result

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code        int    `json:"code"`
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	ColumnCount *int   `json:"column_count,omitempty"`
	ValueCount  *int   `json:"value_count,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

func (e *Error) Error() string { return e.Message }
