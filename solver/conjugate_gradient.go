// SPDX-License-Identifier: MIT

// Package solver: Conjugate Gradient for symmetric positive-definite systems.
package solver

import "github.com/katalvlaran/lvlblas/dense"

// ConjugateGradient solves A·x = b for a symmetric positive-definite A,
// starting from the caller-supplied iterate x (often the zero vector) and
// refining it IN PLACE.
//
// Implementation:
//   - Stage 1: Validate a square non-nil, len(b) == len(x) == n; a failed
//     check leaves x untouched.
//   - Stage 2: r = b − A·x (Symv with α=−1, β=1 after copying b into r),
//     p = r, rrOld = rᵗr. Each iteration: Ap = A·p; pAp = pᵗAp; |pAp| below
//     tolerance is a BREAKDOWN — the loop stops and the run reports
//     non-convergence, not an error. Otherwise α = rrOld/pAp, x += α·p,
//     r −= α·Ap, rrNew = rᵗr; sqrt(rrNew) < tolerance converges; else
//     β = rrNew/rrOld, p = r + β·p and the recurrence continues.
//
// Behavior highlights:
//   - Symmetry of A is assumed (Symv contract), never verified.
//   - Exhausting the budget returns Result{Converged: false} with x left at
//     the last iterate, so the caller may inspect or resume.
//   - Result.History holds sqrt(rᵗr) after every completed iteration.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrNonSquare, dense.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed recurrence order; no randomness, no data-dependent reordering.
//
// Complexity:
//   - Time O(maxIter·n²), Space O(n) for the three work vectors.
//
// AI-Hints:
//   - For an SPD system, exact arithmetic converges in at most n iterations;
//     use that as a sanity budget in tests.
//   - A breakdown right at iteration 0 usually means x already solves the
//     system (r = 0 ⇒ p = 0 ⇒ pᵗAp = 0); check Result.Residual to tell that
//     apart from a genuinely indefinite A.
func ConjugateGradient[T dense.Float](a *dense.Dense[T], b, x []T, opts ...Option) (Result[T], error) {
	var res Result[T]
	if err := dense.ValidateSquareNonNil(a); err != nil {
		return res, solverErrorf(opCG, err)
	}
	n := a.Rows()
	if err := dense.ValidateVecLen(b, n); err != nil {
		return res, solverErrorf(opCG, err)
	}
	if err := dense.ValidateVecLen(x, n); err != nil {
		return res, solverErrorf(opCG, err)
	}
	cfg := gatherOptions(opts...)
	tol := T(cfg.tolerance)

	// r = b − A·x, p = r, rrOld = rᵗr.
	r := dense.Copy(b, nil)
	_ = dense.Symv(a, x, r, -1, 1) // shapes validated above
	p := dense.Copy(r, nil)
	ap := make([]T, n)
	rrOld, _ := dense.Dot(r, r)

	var (
		iter           int // completed iterations
		pAp            T   // curvature along the search direction
		alpha, beta    T   // step length and direction update factor
		rrNew, resNorm T   // fresh squared residual and its root
	)
	res.History = make([]T, 0, cfg.maxIter)
	res.Residual = dense.Sqrt(rrOld)
	for iter = 0; iter < cfg.maxIter; iter++ {
		// Ap = A·p (cleared first so a stale NaN can never leak through β=0).
		for i := range ap {
			ap[i] = 0
		}
		_ = dense.Symv(a, p, ap, 1, 0)

		pAp, _ = dense.Dot(p, ap)
		if dense.Abs(pAp) < tol {
			break // breakdown: report non-convergence below
		}

		alpha = rrOld / pAp
		_ = dense.Axpy(p, x, alpha)   // x += α·p
		_ = dense.Axpy(ap, r, -alpha) // r −= α·Ap

		rrNew, _ = dense.Dot(r, r)
		resNorm = dense.Sqrt(rrNew)
		res.History = append(res.History, resNorm)
		res.Residual = resNorm
		if resNorm < tol {
			res.Converged = true
			res.Iterations = iter + 1

			return res, nil
		}

		beta = rrNew / rrOld
		dense.Scal(p, beta)
		_ = dense.Axpy(r, p, 1) // p = r + β·p
		rrOld = rrNew
	}

	res.Iterations = iter

	return res, nil
}
