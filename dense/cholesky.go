// SPDX-License-Identifier: MIT

// Package dense: Cholesky factorization (dpotrf-style, lower triangle).
package dense

// Cholesky factors a square, symmetric-positive-definite matrix IN PLACE
// into its lower-triangular factor L with L·Lᵗ = A, zeroing the strict upper
// triangle on success.
//
// Symmetry and positive-definiteness are INTENDED by the caller, not
// verified up front; non-PD input is detected when a diagonal term collapses.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: Column by column: diag = a(j,j) − Σ_{k<j} a(j,k)²; if
//     diag ≤ Epsilon[T]() fail with ErrNotPositiveDefinite (matrix left
//     partially modified — caller must discard); else a(j,j) = sqrt(diag)
//     and each a(i,j) below becomes (a(i,j) − Σ_{k<j} a(i,k)·a(j,k)) / a(j,j).
//   - Stage 3: Zero the strict upper triangle so the result is a clean L.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (before any mutation), ErrNotPositiveDefinite.
//
// Determinism:
//   - Fixed j → {i>j} column order, type-native epsilon threshold.
//
// Complexity:
//   - Time O(n³), Space O(1).
func Cholesky[T Float](a *Dense[T]) error {
	if err := ValidateSquareNonNil(a); err != nil {
		return kernelErrorf(opCholesky, err)
	}

	n := a.r
	eps := Epsilon[T]()

	var (
		i, j, k int // loop iterators
		sum     T   // dot-product accumulator over previous columns
		diag    T   // candidate squared diagonal entry
	)
	for j = 0; j < n; j++ {
		sum = 0
		for k = 0; k < j; k++ {
			sum += a.data[a.index(j, k)] * a.data[a.index(j, k)]
		}

		diag = a.data[a.index(j, j)] - sum
		if diag <= eps {
			return kernelErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		a.data[a.index(j, j)] = Sqrt(diag)

		for i = j + 1; i < n; i++ {
			sum = 0
			for k = 0; k < j; k++ {
				sum += a.data[a.index(i, k)] * a.data[a.index(j, k)]
			}
			a.data[a.index(i, j)] = (a.data[a.index(i, j)] - sum) / a.data[a.index(j, j)]
		}
	}

	// Clean the strict upper triangle: the factor is exactly L, not L mixed
	// with leftovers of A.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a.data[a.index(i, j)] = 0
		}
	}

	return nil
}
