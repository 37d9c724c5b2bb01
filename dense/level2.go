// SPDX-License-Identifier: MIT

// Package dense: Level-2 (matrix-vector) kernels.
package dense

// Gemv computes y = beta*y + alpha*A*x in place over y.
//
// Implementation:
//   - Stage 1: ValidateGemv (a non-nil, a.Cols == len(x), a.Rows == len(y));
//     a failed check leaves y untouched.
//   - Stage 2: Row-major fast path walks each row's contiguous block;
//     otherwise the order-aware index is used. Either way the loop order is
//     output rows outer, input columns inner, and y[i] is scaled by beta
//     BEFORE the row's dot product accumulates. The ordering matters: y is
//     mutated in place, so beta must be applied before any value of row i is
//     folded in.
//
// Behavior highlights:
//   - beta == 0 overwrites y (stale NaN/Inf in y still propagate via 0*y[i],
//     matching BLAS reference semantics rather than a memset shortcut).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (y is not mutated on failure).
//
// Determinism:
//   - Fixed i→j loops.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Gemv[T Float](a *Dense[T], x, y []T, alpha, beta T) error {
	if err := ValidateGemv(a, x, y); err != nil {
		return kernelErrorf(opGemv, err)
	}

	var (
		i, j int // loop iterators
		sum  T   // per-row accumulator
	)
	// Fast path: row-major rows are contiguous in the backing slice.
	if a.ord == RowMajor {
		var base int
		for i = 0; i < a.r; i++ {
			y[i] *= beta
			sum = 0
			base = i * a.c
			for j = 0; j < a.c; j++ {
				sum += a.data[base+j] * x[j]
			}
			y[i] += alpha * sum
		}

		return nil
	}

	// Column-major fallback via the order-aware flat index.
	for i = 0; i < a.r; i++ {
		y[i] *= beta
		sum = 0
		for j = 0; j < a.c; j++ {
			sum += a.data[j*a.r+i] * x[j]
		}
		y[i] += alpha * sum
	}

	return nil
}

// Symv computes y = beta*y + alpha*A*x for a SQUARE matrix A that the caller
// asserts is symmetric.
//
// Known simplification, preserved on purpose: this core does not exploit the
// symmetry (no half-triangle traversal) and does not verify it — Symv is a
// semantic alias of Gemv plus the squareness check. Callers passing a
// non-symmetric A get the general product, silently.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Symv[T Float](a *Dense[T], x, y []T, alpha, beta T) error {
	if err := ValidateNotNil(a); err != nil {
		return kernelErrorf(opSymv, err)
	}
	if err := ValidateSquare(a); err != nil {
		return kernelErrorf(opSymv, err)
	}
	if err := Gemv(a, x, y, alpha, beta); err != nil {
		return kernelErrorf(opSymv, err)
	}

	return nil
}
