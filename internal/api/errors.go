package api

import (
	"errors"
	"net/http"

	"insertkit/internal/sqlinsert"
)

// Error kinds that do not come from sqlinsert.
const (
	kindBadRequest      = "BAD_REQUEST"
	kindPayloadTooLarge = "PAYLOAD_TOO_LARGE"
	kindInternal        = "INTERNAL"
)

// badRequestError marks a request body that could not be decoded.
type badRequestError struct {
	Message string
}

func (e *badRequestError) Error() string { return e.Message }

// httpStatusFromError maps errors to HTTP status codes. Unknown errors
// return 500 Internal Server Error.
func httpStatusFromError(err error) int {
	var parseErr *sqlinsert.ParseError
	var buildErr *sqlinsert.BuildError
	var badReq *badRequestError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &parseErr), errors.As(err, &buildErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &badReq):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody converts err into the wire error. Internal errors are not
// echoed to the client.
func errorBody(err error) *Error {
	status := httpStatusFromError(err)
	body := &Error{Code: status, Message: err.Error()}

	var parseErr *sqlinsert.ParseError
	var buildErr *sqlinsert.BuildError
	switch {
	case errors.As(err, &parseErr):
		body.Kind = string(parseErr.Kind)
		body.Message = parseErr.Message
		if parseErr.Kind == sqlinsert.KindArityMismatch {
			cols, vals := parseErr.ColumnCount, parseErr.ValueCount
			body.ColumnCount, body.ValueCount = &cols, &vals
		}
	case errors.As(err, &buildErr):
		body.Kind = string(buildErr.Kind)
		body.Message = buildErr.Message
	case status == http.StatusRequestEntityTooLarge:
		body.Kind = kindPayloadTooLarge
		body.Message = "request body too large"
	case status == http.StatusBadRequest:
		body.Kind = kindBadRequest
	default:
		body.Kind = kindInternal
		body.Message = "internal error"
	}
	return body
}
