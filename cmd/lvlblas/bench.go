// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlblas/dense"
)

func newBenchCmd() *cobra.Command {
	var (
		size int
		reps int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time gemm, LU and Cholesky on square matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 {
				return fmt.Errorf("size must be > 0, got %d", size)
			}
			if reps <= 0 {
				return fmt.Errorf("reps must be > 0, got %d", reps)
			}

			return runBench(cmd.OutOrStdout(), size, reps, seed)
		},
	}
	cmd.Flags().IntVar(&size, "size", 256, "square matrix dimension")
	cmd.Flags().IntVar(&reps, "reps", 5, "timing repetitions to average over")
	cmd.Flags().Int64Var(&seed, "seed", 1, "deterministic fill seed")

	return cmd
}

// measure averages fn's wall time over reps runs.
func measure(reps int, fn func() error) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < reps; i++ {
		if err := fn(); err != nil {
			return 0, err
		}
	}

	return time.Since(start) / time.Duration(reps), nil
}

func runBench(w io.Writer, size, reps int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	a, err := dense.NewDense[float64](size, size)
	if err != nil {
		return err
	}
	b, err := dense.NewDense[float64](size, size)
	if err != nil {
		return err
	}
	c, err := dense.NewDense[float64](size, size)
	if err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			mustSet(a, i, j, rng.Float64())
			mustSet(b, i, j, rng.Float64())
		}
	}

	fmt.Fprintf(w, "BLAS benchmark (%dx%d matrices, %d reps):\n", size, size, reps)
	gemmTime, err := measure(reps, func() error {
		return dense.Gemm(a, b, c, 1, 0)
	})
	if err != nil {
		return err
	}
	flops := 2 * float64(size) * float64(size) * float64(size)
	fmt.Fprintf(w, "  gemm: %v (%.1f MFLOPS)\n", gemmTime, flops/gemmTime.Seconds()/1e6)

	// Diagonally dominant SPD input so both factorizations succeed.
	spd, err := dense.NewDense[float64](size, size, dense.WithInitValue(1.0))
	if err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		mustSet(spd, i, i, float64(size))
	}

	fmt.Fprintf(w, "Decomposition benchmark (%dx%d):\n", size, size)
	cholTime, err := measure(reps, func() error {
		return dense.Cholesky(spd.Clone())
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  cholesky: %v\n", cholTime)

	luTime, err := measure(reps, func() error {
		_, luErr := dense.LUDecompose(spd.Clone())

		return luErr
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  lu:       %v\n", luTime)

	return nil
}
