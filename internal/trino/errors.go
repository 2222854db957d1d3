package trino

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind classifies executor failures coarsely. Callers only need to know
// whether the generated SQL was bad, the engine or a federated source failed,
// or the network did.
type ErrorKind string

const (
	// KindUser indicates a malformed query was rejected by the engine.
	KindUser ErrorKind = "user_error"
	// KindExternal indicates the engine or one of its federated sources failed.
	KindExternal ErrorKind = "external_error"
	// KindTransport indicates a network or timeout failure reaching the engine.
	KindTransport ErrorKind = "transport_error"
)

// Error is the failure type returned by the executor.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("trino: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("trino: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps err with a classification and context message.
func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the classification of err, or KindExternal when err is not
// an executor error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindExternal
}

// userErrorMarkers are Trino error names that indicate the query itself was
// invalid. They appear verbatim in the driver's error text.
var userErrorMarkers = []string{
	"SYNTAX_ERROR",
	"COLUMN_NOT_FOUND",
	"TABLE_NOT_FOUND",
	"SCHEMA_NOT_FOUND",
	"CATALOG_NOT_FOUND",
	"TYPE_MISMATCH",
	"INVALID_FUNCTION_ARGUMENT",
}

// classify maps a raw driver error to an executor error.
func classify(message string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newError(KindTransport, message, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return newError(KindTransport, message, err)
	}

	text := err.Error()
	for _, marker := range userErrorMarkers {
		if strings.Contains(text, marker) {
			return newError(KindUser, message, err)
		}
	}
	if strings.Contains(text, "connection refused") || strings.Contains(text, "no such host") {
		return newError(KindTransport, message, err)
	}
	return newError(KindExternal, message, err)
}
