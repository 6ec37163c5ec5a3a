package db

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for store operations.
var (
	ErrTransport     = errors.New("db: transport failure")
	ErrBadRequest    = errors.New("db: bad request")
	ErrIndexNotFound = errors.New("db: index not found")
	ErrIndexExists   = errors.New("db: index already exists")
	ErrUnauthorized  = errors.New("db: request not authorized")
)

// Op constants map to Elasticsearch API names for error context.
const (
	OpPing        = "ping"
	OpIndexExists = "indices.exists"
	OpCreateIndex = "indices.create"
	OpIndex       = "index"
	OpSearch      = "search"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// TransportError is a failed round trip: the store was not reached or the
// connection dropped. It matches both ErrTransport and the cause.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// ResponseError is an error reply sent by the store.
type ResponseError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ResponseError) Error() string {
	switch {
	case e.Type != "" && e.Reason != "":
		return fmt.Sprintf("[%s] %s", e.Type, e.Reason)
	case e.Reason != "":
		return e.Reason
	case e.Type != "":
		return e.Type
	default:
		return fmt.Sprintf("status %d", e.StatusCode)
	}
}

// Unwrap classifies the reply into one of the store sentinels.
func (e *ResponseError) Unwrap() error {
	switch {
	case e.Type == "index_not_found_exception":
		return ErrIndexNotFound
	case e.Type == "resource_already_exists_exception":
		return ErrIndexExists
	case e.StatusCode >= http.StatusInternalServerError,
		e.StatusCode == http.StatusTooManyRequests:
		return ErrTransport
	case e.StatusCode == http.StatusUnauthorized,
		e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound && e.Type == "":
		return ErrIndexNotFound
	default:
		return ErrBadRequest
	}
}
