// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the closed set of error kinds the Newsboard API can
surface to a client.

Architecture:

  - AppError: A struct carrying a Kind, a machine-readable Code and a client-safe message.
  - Kind: A closed enumeration. Every failure that reaches the wire is one of these.
  - Mapping: Each Kind has exactly one HTTP status code.

Domain packages return *AppError values directly. Anything else that escapes
them is classified later by package classify.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies the category of an [AppError].
type Kind uint8

const (
	// KindInternal is anything unanticipated, including store connectivity failures.
	KindInternal Kind = iota
	// KindValidation is a malformed or disallowed caller-supplied parameter.
	KindValidation
	// KindNotFound is a syntactically valid reference that does not resolve.
	KindNotFound
	// KindMethodNotAllowed is a verb not supported on an otherwise valid path.
	KindMethodNotAllowed
)

// String returns the machine-readable code of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	case KindMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL_ERROR"
	}
}

// Status returns the HTTP status code bound to the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Messages shared between packages.
const (
	MsgBadRequest       = "Bad Request"
	MsgRouteNotFound    = "Route Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgInternal         = "Internal Server Error"
)

// AppError is the canonical error type for the Newsboard API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Kind is the error category.
	Kind Kind `json:"-"`
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"msg"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause returns a copy of e that records cause for logging.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func newError(kind Kind, msg string) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       kind.String(),
		Message:    msg,
		HTTPStatus: kind.Status(),
	}
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] carrying msg verbatim.
//
// Example:
//
//	apperr.NotFound("User Not Found")
func NotFound(msg string) *AppError {
	return newError(KindNotFound, msg)
}

// RouteNotFound creates the 404 [AppError] used for unmatched paths.
func RouteNotFound() *AppError {
	return newError(KindNotFound, MsgRouteNotFound)
}

// ValidationError creates a 400 [AppError].
func ValidationError(msg string) *AppError {
	return newError(KindValidation, msg)
}

// BadRequest creates the generic 400 [AppError].
func BadRequest() *AppError {
	return newError(KindValidation, MsgBadRequest)
}

// MethodNotAllowed creates a 405 [AppError].
func MethodNotAllowed() *AppError {
	return newError(KindMethodNotAllowed, MsgMethodNotAllowed)
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	internal := newError(KindInternal, MsgInternal)
	internal.Cause = cause
	return internal
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsKind reports whether err carries an [*AppError] of the given kind.
func IsKind(err error, kind Kind) bool {
	ae := As(err)
	return ae != nil && ae.Kind == kind
}
