// SPDX-License-Identifier: MIT

// Command lvlblas is a small demonstration and benchmarking front-end for
// the dense kernels and iterative solvers:
//
//	lvlblas demo   — walk through the library surface on tiny fixtures
//	lvlblas bench  — time gemm / LU / Cholesky on square matrices
//	lvlblas cg     — run Conjugate Gradient on a tridiagonal system,
//	                 optionally rendering the residual curve to PNG
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvlblas",
		Short:         "Dense linear-algebra kernels: demos, benchmarks, solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCmd(), newBenchCmd(), newCGCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlblas:", err)
		os.Exit(1)
	}
}
