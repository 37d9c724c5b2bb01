// SPDX-License-Identifier: MIT
// Package solver_test contains shared fixtures for the iterative solvers.
package solver_test

import (
	"testing"

	"github.com/katalvlaran/lvlblas/dense"
)

// newFrom builds a Dense from row slices, failing the test on any error.
func newFrom(t testing.TB, rows [][]float64) *dense.Dense[float64] {
	t.Helper()
	m, err := dense.NewDense[float64](len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i, row := range rows {
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// tridiag4 returns the 4×4 diagonally dominant SPD fixture (diagonal 4,
// off-diagonal −1).
func tridiag4(t testing.TB) *dense.Dense[float64] {
	t.Helper()

	return newFrom(t, [][]float64{
		{4, -1, 0, 0},
		{-1, 4, -1, 0},
		{0, -1, 4, -1},
		{0, 0, -1, 4},
	})
}

// luReference solves A·x = b by direct factorization on throwaway copies.
func luReference(t testing.TB, a *dense.Dense[float64], b []float64) []float64 {
	t.Helper()
	lu := a.Clone()
	pivot, err := dense.LUDecompose(lu)
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}
	x := dense.Copy(b, nil)
	if err = dense.LUSolve(lu, pivot, x); err != nil {
		t.Fatalf("LUSolve: %v", err)
	}

	return x
}
