// SPDX-License-Identifier: MIT
// Package solver: error wrapping helper. The solvers return the dense
// package's sentinels (ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch)
// wrapped with a solver tag, so callers match them with errors.Is against
// the dense sentinels directly.

package solver

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opCG = "ConjugateGradient"
	opGS = "GaussSeidel"
)

// solverErrorf wraps err with an operation tag, preserving the sentinel via %w.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
