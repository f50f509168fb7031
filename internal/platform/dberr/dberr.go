// Copyright (c) 2026 Librarium. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/librarium/librarium/internal/platform/apperr"
)

var (
	// ErrNotFound is the standard error returned when a queried row doesn't
	// exist. Services check for it with errors.Is and substitute their
	// resource-specific message before the error reaches the boundary.
	ErrNotFound = apperr.NotFound("Resource not found")
)

// Wrap inspects a database error and wraps it into a meaningful
// [apperr.AppError]. It hides internal database details from the client
// while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// Unknown query errors become Internal Server Errors. The action tag
	// survives in the logged cause only, never in the response body.
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
