// SPDX-License-Identifier: MIT

// Package solver: outcome reporting shared by both solvers.
package solver

import "github.com/katalvlaran/lvlblas/dense"

// Result describes the outcome of an iterative solve. The solution vector
// itself is mutated in place by the solver and always holds the last
// computed iterate, so a non-converged run can be inspected or resumed.
type Result[T dense.Float] struct {
	// Converged reports whether the residual dropped within tolerance.
	// false is a normal outcome (budget exhausted or CG breakdown), not an error.
	Converged bool
	// Iterations is the number of iterations (CG) or full sweeps (Gauss-Seidel)
	// actually performed.
	Iterations int
	// Residual is the last residual norm observed: sqrt(rᵗr) for CG, the
	// root of the summed squared per-element deltas for Gauss-Seidel.
	Residual T
	// History records the residual norm after every iteration/sweep, in
	// order. Useful for convergence diagnostics and plotting.
	History []T
}
