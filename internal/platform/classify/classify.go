// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package classify turns any error that escapes a handler into exactly one
[apperr.AppError].

The pipeline is an ordered list of classifiers; the first one that matches
wins. Classifiers are pure functions and never inspect anything beyond the
error chain, so the order below is the whole contract:

 1. Unmatched route          -> 404
 2. Unsupported method       -> 405
 3. Store input failure      -> 400 "Bad Request"
 4. Domain not-found         -> 404 with its message
 5. Domain validation        -> 400 with its message
 6. Anything else            -> 500, cause kept for logs only
*/
package classify

import (
	"errors"

	"github.com/taibuivan/newsboard/internal/platform/apperr"
	"github.com/taibuivan/newsboard/internal/platform/dberr"
)

var (
	// ErrRouteNotFound is raised by the router when no route matches the path.
	ErrRouteNotFound = errors.New("classify: route not found")

	// ErrMethodNotAllowed is raised by the router when the path matches but the verb does not.
	ErrMethodNotAllowed = errors.New("classify: method not allowed")
)

// Classifier maps err to a response error, reporting false when it does not apply.
type Classifier func(err error) (*apperr.AppError, bool)

// Pipeline is an ordered chain of classifiers terminated by an internal-error fallback.
type Pipeline struct {
	classifiers []Classifier
}

// New builds a pipeline from the given classifiers, in order.
func New(classifiers ...Classifier) *Pipeline {
	return &Pipeline{classifiers: classifiers}
}

// Default returns the pipeline used by the HTTP layer.
func Default() *Pipeline {
	return New(
		RouteNotFound,
		MethodNotAllowed,
		StoreInputFailure,
		DomainKind(apperr.KindNotFound),
		DomainKind(apperr.KindValidation),
		DomainKind(apperr.KindMethodNotAllowed),
	)
}

// Classify returns the response error for err. It never returns nil for a non-nil err.
func (p *Pipeline) Classify(err error) *apperr.AppError {
	if err == nil {
		return nil
	}

	for _, classifier := range p.classifiers {
		if appError, ok := classifier(err); ok {
			return appError
		}
	}

	// An explicit internal error keeps its recorded cause.
	if appError := apperr.As(err); appError != nil && appError.Kind == apperr.KindInternal {
		return appError
	}
	return apperr.Internal(err)
}

// # Classifiers

// RouteNotFound matches [ErrRouteNotFound].
func RouteNotFound(err error) (*apperr.AppError, bool) {
	if errors.Is(err, ErrRouteNotFound) {
		return apperr.RouteNotFound(), true
	}
	return nil, false
}

// MethodNotAllowed matches [ErrMethodNotAllowed].
func MethodNotAllowed(err error) (*apperr.AppError, bool) {
	if errors.Is(err, ErrMethodNotAllowed) {
		return apperr.MethodNotAllowed(), true
	}
	return nil, false
}

// StoreInputFailure matches Postgres errors caused by malformed caller input.
func StoreInputFailure(err error) (*apperr.AppError, bool) {
	if dberr.IsInputFailure(err) {
		return apperr.BadRequest().WithCause(err), true
	}
	return nil, false
}

// DomainKind matches an [apperr.AppError] of the given kind and passes it through.
func DomainKind(kind apperr.Kind) Classifier {
	return func(err error) (*apperr.AppError, bool) {
		appError := apperr.As(err)
		if appError == nil || appError.Kind != kind {
			return nil, false
		}
		return appError, true
	}
}
