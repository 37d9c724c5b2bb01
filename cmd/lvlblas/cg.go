// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlblas/solver"
)

func newCGCmd() *cobra.Command {
	var (
		size     int
		tol      float64
		maxIter  int
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "cg",
		Short: "Solve a tridiagonal SPD system with Conjugate Gradient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 {
				return fmt.Errorf("size must be > 0, got %d", size)
			}

			return runCG(cmd.OutOrStdout(), size, tol, maxIter, plotPath)
		},
	}
	cmd.Flags().IntVar(&size, "size", 4, "system dimension")
	cmd.Flags().Float64Var(&tol, "tol", solver.DefaultTolerance, "convergence tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", solver.DefaultMaxIter, "iteration budget")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write the residual-history curve to this PNG file")

	return cmd
}

func runCG(w io.Writer, size int, tol float64, maxIter int, plotPath string) error {
	a := tridiagonal(size)
	b := make([]float64, size)
	for i := range b {
		b[i] = float64(i + 1)
	}
	x := make([]float64, size)

	res, err := solver.ConjugateGradient(a, b, x,
		solver.WithTolerance(tol), solver.WithMaxIter(maxIter))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "n=%d tol=%g: converged=%v in %d iterations, residual %.3g\n",
		size, tol, res.Converged, res.Iterations, res.Residual)
	if size <= 8 {
		fmt.Fprint(w, "x = [")
		for i, v := range x {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%.6f", v)
		}
		fmt.Fprintln(w, "]")
	}

	if plotPath == "" {
		return nil
	}
	if err = savePlot(res.History, plotPath); err != nil {
		return fmt.Errorf("residual plot: %w", err)
	}
	fmt.Fprintln(w, "residual plot written to", plotPath)

	return nil
}

// savePlot renders the residual history on a log-scaled Y axis. Zero or
// negative entries cannot be placed on a log axis and are skipped.
func savePlot(history []float64, path string) error {
	pts := make(plotter.XYs, 0, len(history))
	for i, r := range history {
		if r <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: r})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no positive residuals to plot")
	}

	p := plot.New()
	p.Title.Text = "Conjugate Gradient convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "residual norm"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
