// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/newsboard/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource not found")
)

// inputFailureCodes are the SQLSTATE codes the store raises when a caller
// supplied a value of the wrong shape or a dangling reference.
var inputFailureCodes = map[string]struct{}{
	pgerrcode.InvalidTextRepresentation: {},
	pgerrcode.NumericValueOutOfRange:    {},
	pgerrcode.ForeignKeyViolation:       {},
	pgerrcode.NotNullViolation:          {},
	pgerrcode.UndefinedColumn:           {},
}

// IsInputFailure reports whether err carries a Postgres error caused by
// malformed caller input rather than by the server.
func IsInputFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	_, ok := inputFailureCodes[pgErr.Code]
	return ok
}

// Wrap inspects a database error and wraps it into a meaningful error.
//
// Missing rows become [ErrNotFound] and input-shape failures become a
// "Bad Request" [apperr.AppError]. Anything else keeps its identity and is
// annotated with action so the classification pipeline can log it.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Malformed input reported by the store
	if IsInputFailure(err) {
		return apperr.BadRequest().WithCause(fmt.Errorf("%s: %w", action, err))
	}

	// 3. Everything else is left for the pipeline
	return fmt.Errorf("%s: %w", action, err)
}
