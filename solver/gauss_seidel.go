// SPDX-License-Identifier: MIT

// Package solver: Gauss-Seidel relaxation.
package solver

import "github.com/katalvlaran/lvlblas/dense"

// GaussSeidel solves A·x = b by successive relaxation sweeps, refining the
// caller-supplied iterate x IN PLACE.
//
// Implementation:
//   - Stage 1: Validate a square non-nil, len(b) == len(x) == n; a failed
//     check leaves x untouched.
//   - Stage 2: Each sweep recomputes x[i] = (b[i] − Σ_{j≠i} A(i,j)·x[j]) / A(i,i)
//     in ascending i, reading ALREADY-UPDATED x[j] for j < i within the same
//     sweep (classic Gauss-Seidel, not Jacobi). The squared per-element
//     deltas accumulate into the sweep's residual norm, whose square root is
//     taken after the full sweep; the loop stops early once it drops within
//     tolerance, else runs until the budget is spent.
//
// Behavior highlights:
//   - A zero diagonal entry A(i,i) is a caller-contract violation: the sweep
//     divides by it unguarded and Inf/NaN propagate. Not checked by design.
//   - Result.Converged reports whether the FINAL residual norm is within
//     tolerance; Result.History holds one residual norm per completed sweep.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrNonSquare, dense.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed ascending sweep order; convergence for diagonally dominant or
//     SPD systems is monotone in the residual norm.
//
// Complexity:
//   - Time O(maxIter·n²), Space O(1) beyond Result.History.
func GaussSeidel[T dense.Float](a *dense.Dense[T], b, x []T, opts ...Option) (Result[T], error) {
	var res Result[T]
	if err := dense.ValidateSquareNonNil(a); err != nil {
		return res, solverErrorf(opGS, err)
	}
	n := a.Rows()
	if err := dense.ValidateVecLen(b, n); err != nil {
		return res, solverErrorf(opGS, err)
	}
	if err := dense.ValidateVecLen(x, n); err != nil {
		return res, solverErrorf(opGS, err)
	}
	cfg := gatherOptions(opts...)
	tol := T(cfg.tolerance)

	var (
		i, j    int // element iterators inside a sweep
		sweep   int // completed sweeps
		sum     T   // off-diagonal row contribution Σ_{j≠i} A(i,j)·x[j]
		next    T   // freshly relaxed value of x[i]
		resNorm T   // per-sweep residual norm
		aij     T   // matrix element scratch
	)
	res.History = make([]T, 0, cfg.maxIter)
	resNorm = tol + 1 // force at least one sweep
	for sweep = 0; sweep < cfg.maxIter && resNorm > tol; sweep++ {
		resNorm = 0
		for i = 0; i < n; i++ {
			sum = 0
			for j = 0; j < n; j++ {
				if j == i {
					continue
				}
				aij, _ = a.At(i, j) // shapes validated, error cannot occur
				sum += aij * x[j]
			}
			aij, _ = a.At(i, i)
			next = (b[i] - sum) / aij // unguarded division by contract
			resNorm += (next - x[i]) * (next - x[i])
			x[i] = next
		}
		resNorm = dense.Sqrt(resNorm)
		res.History = append(res.History, resNorm)
	}

	res.Iterations = sweep
	res.Residual = resNorm
	res.Converged = resNorm <= tol

	return res, nil
}
