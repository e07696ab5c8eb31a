// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that stops at the first
// failed rule and returns it as a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer. Rules carry the client-facing
// message so each parameter can fail with its own wording.
package validate

import (
	"math"
	"strconv"

	"github.com/taibuivan/newsboard/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError(apperr.MsgBadRequest)
)

// Validator records the first failed rule via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	err *apperr.AppError
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// OneOf fails with message if value is not exactly one of allowed.
// Matching is case-sensitive.
func (v *Validator) OneOf(value string, allowed []string, message string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	return v.fail(message)
}

// Int32 fails with message if value does not fit the store's INTEGER columns.
func (v *Validator) Int32(value int, message string) *Validator {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return v.fail(message)
	}
	return v
}

// Custom fails with message if the condition is true.
//
// # Example
//
//	v.Custom(body.IncVotes == nil, "Bad Request")
func (v *Validator) Custom(failed bool, message string) *Validator {
	if failed {
		return v.fail(message)
	}
	return v
}

// Err returns the first failed rule as a VALIDATION_ERROR, or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}

// fail records the first failure only.
func (v *Validator) fail(message string) *Validator {
	if v.err == nil {
		v.err = apperr.ValidationError(message)
	}
	return v
}

// ID parses a path identifier. Anything that is not a base-10 integer
// representable by the store's integer key fails as a validation error.
func ID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperr.BadRequest()
	}
	return id, nil
}
