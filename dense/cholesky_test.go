// SPDX-License-Identifier: MIT
// Package dense_test: unit tests for the Cholesky factorization.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlblas/dense"
)

func TestCholesky_KnownFactor(t *testing.T) {
	a := spd3(t)
	require.NoError(t, dense.Cholesky(a))

	require.Equal(t, 2.0, mustAt(t, a, 0, 0), "L(0,0) must be sqrt(4)")
	matApprox(t, [][]float64{
		{2, 0, 0},
		{1, 2, 0},
		{0.5, 1.25, 2.0463381929681126},
	}, a, defaultTol)
}

// L·Lᵗ must reproduce the original matrix (round-trip law).
func TestCholesky_Reconstruction(t *testing.T) {
	a := spd3(t)
	orig := a.Clone()
	require.NoError(t, dense.Cholesky(a))

	lt := a.Transpose()
	prod := mustDense(t, 3, 3)
	require.NoError(t, dense.Gemm(a, lt, prod, 1, 0))

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			require.InDelta(t, mustAt(t, orig, i, j), mustAt(t, prod, i, j), defaultTol, "[%d,%d]", i, j)
		}
	}
}

// The strict upper triangle is zeroed on success, leaving a clean L.
func TestCholesky_UpperTriangleZeroed(t *testing.T) {
	a := tridiag4(t)
	require.NoError(t, dense.Cholesky(a))
	var i, j int
	for i = 0; i < 4; i++ {
		for j = i + 1; j < 4; j++ {
			require.Zero(t, mustAt(t, a, i, j), "[%d,%d]", i, j)
		}
	}
}

func TestCholesky_NotPositiveDefinite(t *testing.T) {
	for name, rows := range map[string][][]float64{
		"negative diagonal": {
			{-4, 0},
			{0, 1},
		},
		"indefinite": {
			{1, 2},
			{2, 1},
		},
	} {
		t.Run(name, func(t *testing.T) {
			a := newFrom(t, rows)
			require.ErrorIs(t, dense.Cholesky(a), dense.ErrNotPositiveDefinite)
		})
	}
}

func TestCholesky_ShapeErrors(t *testing.T) {
	require.ErrorIs(t, dense.Cholesky[float64](nil), dense.ErrNilMatrix)
	require.ErrorIs(t, dense.Cholesky(mustDense(t, 2, 3)), dense.ErrNonSquare)
}
