// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the iterative solvers.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package solver

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxIter is the iteration budget used when no option overrides it.
	DefaultMaxIter = 1000
	// DefaultTolerance is the convergence threshold used when no option
	// overrides it. It doubles as the Conjugate Gradient breakdown guard.
	DefaultTolerance = 1e-6
)

// options carries the resolved solver configuration.
type options struct {
	maxIter   int     // iteration budget, > 0
	tolerance float64 // convergence threshold, finite and > 0
}

// Option mutates the internal options state of a solver call.
type Option func(*options)

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{maxIter: DefaultMaxIter, tolerance: DefaultTolerance}
}

// WithMaxIter overrides the iteration budget.
// Panics when n <= 0 (programmer error, not a runtime input).
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("solver: max iterations must be > 0, got %d", n))
	}

	return func(cfg *options) { cfg.maxIter = n }
}

// WithTolerance overrides the convergence threshold.
// Panics when tol is not a finite positive number (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(fmt.Sprintf("solver: tolerance must be finite and > 0, got %v", tol))
	}

	return func(cfg *options) { cfg.tolerance = tol }
}

// gatherOptions folds the provided options over the defaults.
func gatherOptions(opts ...Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
