// SPDX-License-Identifier: MIT

// Package dense: LU factorization with partial pivoting and the paired
// triangular solve. Semantics follow LAPACK dgetrf/dgetrs: the factorization
// overwrites its input with L (unit diagonal, implicit) below the diagonal
// and U on/above it, plus a pivot sequence recording the row permutation.
package dense

// LUDecompose factors the square matrix a IN PLACE as P·A = L·U and returns
// the pivot sequence.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; allocate pivot = [0..n-1].
//   - Stage 2: For each column j: scan rows j..n-1 for the entry with the
//     strictly largest absolute value (the scan starts from |a(j,j)| and only
//     a strictly greater value replaces the candidate, so the FIRST row seen
//     wins ties — this tie-break is part of the reproducibility contract).
//     Swap the pivot-sequence entries and the full matrix rows when the
//     pivot row differs from j, guard |a(j,j)| < Epsilon[T](), then
//     eliminate: factor = a(i,j)/a(j,j) is subtracted from the trailing
//     columns and stored into a(i,j), folding L into the same buffer as U.
//
// Behavior highlights:
//   - On ErrSingular the matrix is left PARTIALLY FACTORED; the caller must
//     discard it, not reuse it.
//
// Returns:
//   - []int: pivot sequence of length n (pivot[j] holds the row index that
//     was swapped into position j's slot of the permutation bookkeeping).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (before any mutation), ErrSingular.
//
// Determinism:
//   - Fixed column order, first-seen tie-break, type-native epsilon.
//
// Complexity:
//   - Time O(n³), Space O(n) for the pivot sequence.
func LUDecompose[T Float](a *Dense[T]) ([]int, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, kernelErrorf(opLU, err)
	}

	n := a.r
	pivot := make([]int, n)
	for i := range pivot {
		pivot[i] = i
	}
	eps := Epsilon[T]()

	var (
		i, j, k  int // loop iterators
		pivotRow int // row holding the current pivot candidate
		maxVal   T   // magnitude of the pivot candidate
		val      T   // scratch magnitude
		factor   T   // elimination multiplier
	)
	for j = 0; j < n; j++ {
		// Pivot search: strictly-greater comparison keeps the first row on ties.
		pivotRow = j
		maxVal = Abs(a.data[a.index(j, j)])
		for i = j + 1; i < n; i++ {
			val = Abs(a.data[a.index(i, j)])
			if val > maxVal {
				maxVal = val
				pivotRow = i
			}
		}

		// Swap pivot bookkeeping and full matrix rows when needed.
		if pivotRow != j {
			pivot[j], pivot[pivotRow] = pivot[pivotRow], pivot[j]
			for k = 0; k < n; k++ {
				a.data[a.index(j, k)], a.data[a.index(pivotRow, k)] =
					a.data[a.index(pivotRow, k)], a.data[a.index(j, k)]
			}
		}

		// Singularity guard against the type-native machine epsilon.
		if Abs(a.data[a.index(j, j)]) < eps {
			return nil, kernelErrorf(opLU, ErrSingular)
		}

		// Eliminate below the pivot; the multiplier lands in the L slot.
		for i = j + 1; i < n; i++ {
			factor = a.data[a.index(i, j)] / a.data[a.index(j, j)]
			for k = j + 1; k < n; k++ {
				a.data[a.index(i, k)] -= factor * a.data[a.index(j, k)]
			}
			a.data[a.index(i, j)] = factor
		}
	}

	return pivot, nil
}

// LUSolve solves A·x = b IN PLACE over b, given the packed factorization and
// pivot sequence produced by LUDecompose.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(lu), pivot and b length checks; a failed
//     check leaves b untouched.
//   - Stage 2: Apply the permutation by gathering y[i] = b[pivot[i]] — the
//     pivot sequence records which ORIGINAL row sits at position i of the
//     factored matrix, so the gather realizes P·b in one pass. Then forward
//     substitution with unit-lower L, then backward substitution dividing by
//     U(i,i) with NO singularity re-check — a near-zero diagonal yields
//     Inf/NaN propagation by contract; detect singularity upstream via
//     LUDecompose. The result is copied back into b.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed gather then forward i↑ then backward i↓ orders.
//
// Complexity:
//   - Time O(n²), Space O(n) for the permuted work vector.
func LUSolve[T Float](lu *Dense[T], pivot []int, b []T) error {
	if err := ValidateSquareNonNil(lu); err != nil {
		return kernelErrorf(opLUSolve, err)
	}
	n := lu.r
	if len(pivot) != n || len(b) != n {
		return kernelErrorf(opLUSolve, ErrDimensionMismatch)
	}

	var i, j int // loop iterators
	// Permutation gather: row i of the factorization came from original row
	// pivot[i], so y = P·b is a plain index lookup.
	y := make([]T, n)
	for i = 0; i < n; i++ {
		y[i] = b[pivot[i]]
	}

	// Forward substitution L·z = y with the implicit unit diagonal.
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			y[i] -= lu.data[lu.index(i, j)] * y[j]
		}
	}

	// Backward substitution U·x = z.
	for i = n - 1; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			y[i] -= lu.data[lu.index(i, j)] * y[j]
		}
		y[i] /= lu.data[lu.index(i, i)]
	}
	copy(b, y)

	return nil
}
