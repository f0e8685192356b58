// SPDX-License-Identifier: MIT
// Package: vicinity/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach the method name with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyEdges indicates more distinct edges were requested than the vertex set admits.
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not satisfy its own invariants,
// e.g. an IDFn produced the same id twice.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped sentinel with the method name:
// "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
