// SPDX-License-Identifier: MIT
// Package dense_test: unit tests for LU factorization and solve.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlblas/dense"
)

func TestLU_SolveKnownSystem(t *testing.T) {
	a := newFrom(t, [][]float64{
		{2, 1, 1},
		{1, 3, 2},
		{1, 2, 2},
	})
	b := []float64{5, 8, 6}

	pivot, err := dense.LUDecompose(a)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, pivot, "no row exchange expected for this system")

	require.NoError(t, dense.LUSolve(a, pivot, b))
	vecApprox(t, []float64{4.0 / 3.0, 2, 1.0 / 3.0}, b, defaultTol)
}

// A system that genuinely needs a row exchange: the pivot sequence must
// record it and the solve must still satisfy A·x ≈ b.
func TestLU_SolveWithPivoting(t *testing.T) {
	a := newFrom(t, [][]float64{
		{1, 3},
		{4, 5},
	})
	orig := a.Clone()
	b := []float64{7, 9}

	pivot, err := dense.LUDecompose(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, pivot)

	require.NoError(t, dense.LUSolve(a, pivot, b))
	vecApprox(t, []float64{-8.0 / 7.0, 19.0 / 7.0}, b, defaultTol)

	// residual check against the untouched original
	ax := make([]float64, 2)
	require.NoError(t, dense.Gemv(orig, b, ax, 1, 0))
	vecApprox(t, []float64{7, 9}, ax, defaultTol)
}

// Round trip on a random diagonally-boosted system: factor, solve, verify
// A·x ≈ b against a pristine copy of A.
func TestLU_RandomRoundTrip(t *testing.T) {
	t.Parallel()

	const n = 6
	a := mustDense(t, n, n)
	randomFill(t, a, 101)
	for i := 0; i < n; i++ {
		require.NoError(t, a.Set(i, i, mustAt(t, a, i, i)+float64(n)))
	}
	orig := a.Clone()

	b := make([]float64, n)
	for i := range b {
		b[i] = float64(i + 1)
	}
	want := dense.Copy(b, nil)

	pivot, err := dense.LUDecompose(a)
	require.NoError(t, err)
	require.NoError(t, dense.LUSolve(a, pivot, b))

	ax := make([]float64, n)
	require.NoError(t, dense.Gemv(orig, b, ax, 1, 0))
	vecApprox(t, want, ax, 1e-8)
}

// Equal-magnitude pivot candidates: the first row seen must win.
func TestLU_FirstSeenTieBreak(t *testing.T) {
	a := newFrom(t, [][]float64{
		{2, 1},
		{-2, 1},
	})
	pivot, err := dense.LUDecompose(a)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivot, "|−2| ties |2|, row 0 keeps the pivot")
	require.Equal(t, -1.0, mustAt(t, a, 1, 0), "elimination multiplier in the L slot")
	require.Equal(t, 2.0, mustAt(t, a, 1, 1))
}

func TestLU_Singular(t *testing.T) {
	a := newFrom(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, err := dense.LUDecompose(a)
	require.ErrorIs(t, err, dense.ErrSingular)
}

func TestLU_ShapeErrors(t *testing.T) {
	_, err := dense.LUDecompose[float64](nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)

	rect := mustDense(t, 2, 3)
	_, err = dense.LUDecompose(rect)
	require.ErrorIs(t, err, dense.ErrNonSquare)
}

func TestLUSolve_LengthChecks(t *testing.T) {
	a := newFrom(t, [][]float64{
		{2, 1, 1},
		{1, 3, 2},
		{1, 2, 2},
	})
	pivot, err := dense.LUDecompose(a)
	require.NoError(t, err)

	short := []float64{1, 2}
	require.ErrorIs(t, dense.LUSolve(a, pivot, short), dense.ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2}, short, "failed solve must not mutate b")

	require.ErrorIs(t, dense.LUSolve(a, []int{0, 1}, []float64{1, 2, 3}), dense.ErrDimensionMismatch)
	require.ErrorIs(t, dense.LUSolve[float64](nil, pivot, []float64{1, 2, 3}), dense.ErrNilMatrix)
}
