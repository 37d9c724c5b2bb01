// SPDX-License-Identifier: MIT

// Package dense: functional configuration for Dense construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package dense

import "fmt"

// DefaultOrder is the storage layout used when no option overrides it.
const DefaultOrder = RowMajor

// options carries the resolved configuration for NewDense.
type options[T Float] struct {
	order Order // memory layout of the backing slice
	init  T     // value every element starts from
}

// Option mutates the internal options state of NewDense.
type Option[T Float] func(*options[T])

// defaultOptions returns the documented defaults: row-major, zero-filled.
func defaultOptions[T Float]() options[T] {
	return options[T]{order: DefaultOrder, init: 0}
}

// WithOrder selects the storage layout of the backing slice.
// Panics on an unknown Order value (programmer error, not a runtime input).
func WithOrder[T Float](o Order) Option[T] {
	if o != RowMajor && o != ColMajor {
		panic(fmt.Sprintf("dense: unknown storage order %d", o))
	}

	return func(cfg *options[T]) { cfg.order = o }
}

// WithColMajor is shorthand for WithOrder(ColMajor), mirroring the
// Fortran-style layout expected by column-oriented callers.
func WithColMajor[T Float]() Option[T] {
	return func(cfg *options[T]) { cfg.order = ColMajor }
}

// WithInitValue fills every element of the new matrix with v instead of zero.
func WithInitValue[T Float](v T) Option[T] {
	return func(cfg *options[T]) { cfg.init = v }
}

// gatherOptions folds the provided options over the defaults.
func gatherOptions[T Float](opts ...Option[T]) options[T] {
	cfg := defaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
