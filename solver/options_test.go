// SPDX-License-Identifier: MIT
// Package solver_test: unit tests for the functional options.
package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlblas/solver"
)

func TestDefaults(t *testing.T) {
	require.Equal(t, 1000, solver.DefaultMaxIter)
	require.Equal(t, 1e-6, solver.DefaultTolerance)
}

func TestWithMaxIter_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { solver.WithMaxIter(0) })
	require.Panics(t, func() { solver.WithMaxIter(-5) })
	require.NotPanics(t, func() { solver.WithMaxIter(1) })
}

func TestWithTolerance_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { solver.WithTolerance(0) })
	require.Panics(t, func() { solver.WithTolerance(-1e-9) })
	require.Panics(t, func() { solver.WithTolerance(math.NaN()) })
	require.Panics(t, func() { solver.WithTolerance(math.Inf(1)) })
	require.NotPanics(t, func() { solver.WithTolerance(1e-12) })
}

// Options apply per call: a tight budget on one solve must not leak into the
// next.
func TestOptions_PerCallIsolation(t *testing.T) {
	a := tridiag4(t)
	b := []float64{1, 2, 3, 4}

	x1 := make([]float64, 4)
	res, err := solver.GaussSeidel(a, b, x1, solver.WithMaxIter(1))
	require.NoError(t, err)
	require.Equal(t, 1, res.Iterations)

	x2 := make([]float64, 4)
	res, err = solver.GaussSeidel(a, b, x2)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Greater(t, res.Iterations, 1)
}
