// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package dense

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned through the kernelErrorf
// wrapper at call sites so callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numerical failures
// (ErrSingular, ErrNotPositiveDefinite). Shape and dimension failures are
// always detected before any output operand is mutated.

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	// NewDense must validate before allocation.
	ErrBadShape = errors.New("dense: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Dot on
	// unequal-length vectors, or Gemm where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular is returned when the LU pivot magnitude collapses below the
	// machine epsilon of the element type. The matrix is left partially
	// factored and must be discarded by the caller.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrNotPositiveDefinite is returned when a Cholesky diagonal term is
	// non-positive within epsilon. Same partial-mutation caveat as ErrSingular.
	ErrNotPositiveDefinite = errors.New("dense: matrix is not positive definite")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDot      = "Dot"
	opAxpy     = "Axpy"
	opGemv     = "Gemv"
	opSymv     = "Symv"
	opGemm     = "Gemm"
	opSymm     = "Symm"
	opLU       = "LUDecompose"
	opLUSolve  = "LUSolve"
	opCholesky = "Cholesky"
	opQR       = "QR"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil; the wrapper keeps a stable "Op: underlying" shape
// for uniform reporting across kernels.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
