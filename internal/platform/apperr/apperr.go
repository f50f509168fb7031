// Copyright (c) 2026 Librarium. All rights reserved.

/*
Package apperr defines the centralized error taxonomy for Librarium.

It provides a rich error type that bridges the gap between low-level
Domain/Storage errors and high-level HTTP responses.

Architecture:

  - AppError: A struct carrying a response Category, a client-safe message,
    and the HTTP status the boundary must use.
  - Field details: Validation failures report one entry per offending field.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes;
    the boundary never reclassifies a NotFound as Internal or vice versa.

Every error that leaves the service layer should be wrapped as an [AppError]
to ensure consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Response categories. These are wire values, not just labels: every
// non-2xx body carries one of them in its "error" field.
const (
	CategoryNotFound   = "Not Found"
	CategoryValidation = "Validation Failed"
	CategoryBadRequest = "Bad Request"
	CategoryInternal   = "Internal Server Error"
)

// AppError is the canonical error type for the Librarium API.
//
// It carries an HTTP status code, a response category, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to
// clients to avoid leaking internal implementation details (e.g. SQL).
type AppError struct {
	// Category is the taxonomy kind reported in the "error" wire field.
	Category string
	// Message is a human-readable description safe to return to the client.
	Message string
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int
	// Cause is the underlying error, used for server-side logging only.
	Cause error
	// Fields holds per-field validation errors for Validation Failed responses.
	Fields []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string
	// Message is the human-readable description of the failure.
	Message string
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] with the given message.
//
// Empty list/search/aggregate results use this too: the API treats
// "nothing matched" the same as "no such resource".
func NotFound(message string) *AppError {
	return &AppError{
		Category:   CategoryNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// NotFoundf creates a 404 [AppError] with a formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return NotFound(fmt.Sprintf(format, args...))
}

// Validation creates a 400 [AppError] carrying one entry per failed field.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Category:   CategoryValidation,
		Message:    "Validation failed",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// BadRequest creates a 400 [AppError] for malformed or missing request
// parameters (as opposed to field-scoped body validation).
func BadRequest(message string) *AppError {
	return &AppError{
		Category:   CategoryBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side
// error. The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Category:   CategoryInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsNotFound reports whether err (or any error in its chain) is a
// NotFound [*AppError].
func IsNotFound(err error) bool {
	ae := As(err)
	return ae != nil && ae.Category == CategoryNotFound
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
