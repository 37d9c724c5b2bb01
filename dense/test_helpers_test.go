// SPDX-License-Identifier: MIT
// Package dense_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities.
//   - Keep all data finite and well-formed so numeric thresholds stay honest.

package dense_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlblas/dense"
)

// defaultTol is the comparison tolerance used by the approximate asserts.
const defaultTol = 1e-9

// mustDense allocates an r×c *Dense[float64] or fails the test.
func mustDense(t testing.TB, rows, cols int, opts ...dense.Option[float64]) *dense.Dense[float64] {
	t.Helper()
	m, err := dense.NewDense[float64](rows, cols, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// newFrom builds a Dense from row slices, failing the test on any error.
func newFrom(t testing.TB, rows [][]float64, opts ...dense.Option[float64]) *dense.Dense[float64] {
	t.Helper()
	m := mustDense(t, len(rows), len(rows[0]), opts...)
	for i, row := range rows {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// identity builds the n×n identity matrix.
func identity(t testing.TB, n int) *dense.Dense[float64] {
	t.Helper()
	m := mustDense(t, n, n)
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, 1); err != nil {
			t.Fatalf("Set(%d,%d): %v", i, i, err)
		}
	}

	return m
}

// mustAt reads an element or fails the test.
func mustAt(t testing.TB, m *dense.Dense[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// matApprox asserts that every element of got matches want within tol.
func matApprox(t *testing.T, want [][]float64, got *dense.Dense[float64], tol float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	for i := range want {
		for j := range want[i] {
			if d := math.Abs(mustAt(t, got, i, j) - want[i][j]); d > tol {
				t.Fatalf("element [%d,%d]: want %g, got %g (|Δ|=%g > %g)",
					i, j, want[i][j], mustAt(t, got, i, j), d, tol)
			}
		}
	}
}

// vecApprox asserts elementwise closeness of two vectors within tol.
func vecApprox(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if d := math.Abs(got[i] - want[i]); d > tol {
			t.Fatalf("element [%d]: want %g, got %g (|Δ|=%g > %g)", i, want[i], got[i], d, tol)
		}
	}
}

// randomFill overwrites m with deterministic pseudo-random values in [-2, 2).
func randomFill(t testing.TB, m *dense.Dense[float64], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*4-2); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// spd3 returns the canonical 3×3 symmetric positive-definite fixture.
func spd3(t testing.TB) *dense.Dense[float64] {
	t.Helper()

	return newFrom(t, [][]float64{
		{4, 2, 1},
		{2, 5, 3},
		{1, 3, 6},
	})
}

// tridiag4 returns the 4×4 tridiagonal SPD fixture (diagonal 4, off-diagonal −1).
func tridiag4(t testing.TB) *dense.Dense[float64] {
	t.Helper()

	return newFrom(t, [][]float64{
		{4, -1, 0, 0},
		{-1, 4, -1, 0},
		{0, -1, 4, -1},
		{0, 0, -1, 4},
	})
}
