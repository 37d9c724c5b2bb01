// Package solver provides iterative linear-system solvers over dense.Dense.
//
// The solver package provides:
//
//   - ConjugateGradient for symmetric positive-definite systems, with the
//     classic r/p recurrence and breakdown detection.
//   - GaussSeidel relaxation sweeps using already-updated entries within
//     each sweep.
//
// Both solvers mutate the caller-supplied solution vector in place and
// report their outcome through Result: running out of iterations is a
// normal, inspectable outcome (Result.Converged == false), never an error.
// Errors are reserved for structural problems — nil or non-square matrices
// and mismatched vector lengths — detected before any mutation.
//
// Iteration budget and tolerance are configured through functional options
// (WithMaxIter, WithTolerance); see options.go for the defaults.
package solver
