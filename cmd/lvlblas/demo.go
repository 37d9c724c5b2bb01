// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlblas/dense"
	"github.com/katalvlaran/lvlblas/solver"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the kernel surface on small fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// mustSet keeps the fixture-building code readable: the demo shapes are
// hardwired, so a Set failure is a programmer error.
func mustSet(m *dense.Dense[float64], i, j int, v float64) {
	if err := m.Set(i, j, v); err != nil {
		panic(err)
	}
}

func fromRows(rows [][]float64) *dense.Dense[float64] {
	m, err := dense.NewDense[float64](len(rows), len(rows[0]))
	if err != nil {
		panic(err)
	}
	for i, row := range rows {
		for j, v := range row {
			mustSet(m, i, j, v)
		}
	}

	return m
}

func printMatrix(w io.Writer, name string, m *dense.Dense[float64]) {
	fmt.Fprintf(w, "%s (%dx%d):\n%s", name, m.Rows(), m.Cols(), m.String())
}

func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "Level-1 vector kernels:")
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	d, err := dense.Dot(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "  dot(x, y) =", d)
	dense.Scal(x, 2)
	fmt.Fprintln(w, "  2*x =", x)

	fmt.Fprintln(w, "\nLevel-3 identity product:")
	a := fromRows([][]float64{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
	})
	eye := fromRows([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	c, err := dense.NewDense[float64](3, 3)
	if err != nil {
		return err
	}
	if err = dense.Gemm(a, eye, c, 1, 0); err != nil {
		return err
	}
	printMatrix(w, "A", a)
	printMatrix(w, "A * I", c)

	fmt.Fprintln(w, "\nCholesky factorization:")
	spd := fromRows([][]float64{
		{4, 2, 1},
		{2, 5, 3},
		{1, 3, 6},
	})
	printMatrix(w, "A (positive definite)", spd)
	if err = dense.Cholesky(spd); err != nil {
		return err
	}
	printMatrix(w, "L", spd)

	fmt.Fprintln(w, "\nLU solve:")
	sys := fromRows([][]float64{
		{2, 1, 1},
		{1, 3, 2},
		{1, 2, 2},
	})
	b := []float64{5, 8, 6}
	printMatrix(w, "A", sys)
	fmt.Fprintln(w, "b =", b)
	pivot, err := dense.LUDecompose(sys)
	if err != nil {
		return err
	}
	if err = dense.LUSolve(sys, pivot, b); err != nil {
		return err
	}
	fmt.Fprintf(w, "x = [%.4f %.4f %.4f]\n", b[0], b[1], b[2])

	fmt.Fprintln(w, "\nConjugate Gradient on a 4x4 tridiagonal system:")
	tri := tridiagonal(4)
	rhs := []float64{1, 2, 3, 4}
	sol := make([]float64, 4)
	res, err := solver.ConjugateGradient(tri, rhs, sol, solver.WithTolerance(1e-10))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "converged=%v in %d iterations, residual %.3g\n",
		res.Converged, res.Iterations, res.Residual)
	fmt.Fprintf(w, "x = [%.6f %.6f %.6f %.6f]\n", sol[0], sol[1], sol[2], sol[3])

	return nil
}

// tridiagonal builds the n×n diagonally dominant SPD matrix with 4 on the
// diagonal and −1 on the first off-diagonals.
func tridiagonal(n int) *dense.Dense[float64] {
	m, err := dense.NewDense[float64](n, n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		mustSet(m, i, i, 4)
		if i > 0 {
			mustSet(m, i, i-1, -1)
		}
		if i < n-1 {
			mustSet(m, i, i+1, -1)
		}
	}

	return m
}
