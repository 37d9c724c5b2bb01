// SPDX-License-Identifier: MIT

// Package dense: Level-1 (vector) kernels.
// Naming and scaling conventions follow the BLAS routines they descend from
// (ddot, dscal, dcopy, daxpy, dnrm2). All loops iterate in natural order;
// accumulation is plain floating-point summation by contract — no pairwise
// or compensated schemes, so results are bit-reproducible across runs.
package dense

// Dot returns the inner product Σ x[i]*y[i].
//
// Implementation:
//   - Stage 1: Validate len(x) == len(y).
//   - Stage 2: Single forward loop with a scalar accumulator.
//
// Errors:
//   - ErrDimensionMismatch (unequal lengths; no partial work is done).
//
// Determinism:
//   - Fixed 0..n-1 accumulation order.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot[T Float](x, y []T) (T, error) {
	if err := ValidateSameLen(x, y); err != nil {
		return 0, kernelErrorf(opDot, err)
	}

	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Scal scales x in place: x[i] *= alpha for every i.
// Complexity: Time O(n), Space O(1).
func Scal[T Float](x []T, alpha T) {
	for i := range x {
		x[i] *= alpha
	}
}

// Copy returns y overwritten with the contents of x.
// If len(y) != len(x) a fresh slice of len(x) is allocated, so the returned
// slice must be kept by the caller (append-style contract). Passing nil y is
// the idiomatic way to ask for a new copy.
// Complexity: Time O(n), Space O(n) when reallocating.
func Copy[T Float](x, y []T) []T {
	if len(y) != len(x) {
		y = make([]T, len(x))
	}
	copy(y, x)

	return y
}

// Axpy performs the in-place update y[i] += alpha * x[i].
//
// Errors:
//   - ErrDimensionMismatch (unequal lengths; y is untouched on failure).
//
// Complexity:
//   - Time O(n), Space O(1).
func Axpy[T Float](x, y []T, alpha T) error {
	if err := ValidateSameLen(x, y); err != nil {
		return kernelErrorf(opAxpy, err)
	}

	for i := range x {
		y[i] += alpha * x[i]
	}

	return nil
}

// Nrm2 returns the Euclidean norm sqrt(Σ x[i]²).
// No overflow guarding (no dnrm2-style rescaling) by contract: inputs are
// expected within the representable range of T.
// Complexity: Time O(n), Space O(1).
func Nrm2[T Float](x []T) T {
	var sum T
	for _, v := range x {
		sum += v * v
	}

	return Sqrt(sum)
}
