// Package lvlblas is a compact dense linear-algebra core: BLAS-like vector
// and matrix kernels, LAPACK-style factorizations, and iterative solvers,
// all over a single generic container.
//
// 🚀 What is lvlblas?
//
//	A small, deterministic, single-threaded numeric library that brings together:
//		• Dense[T]: a flat, contiguous matrix container (row- or column-major)
//		• Level-1 kernels: Dot, Scal, Copy, Axpy, Nrm2
//		• Level-2 kernels: Gemv, Symv
//		• Level-3 kernels: Gemm, Symm
//		• Factorizations: partial-pivot LU (+ triangular solve), Cholesky, QR
//		• Iterative solvers: Conjugate Gradient, Gauss-Seidel
//
// ✨ Why choose lvlblas?
//
//   - Predictable numerics – fixed loop orders, documented pivoting tie-breaks
//   - Explicit failure modes – sentinel errors, no panics on user input
//   - Pure Go – no cgo, generic over float32/float64
//   - In-place by design – factorizations overwrite their input, exactly like
//     the routines they are named after
//
// Under the hood, everything is organized under two subpackages:
//
//	dense/  — the Dense[T] container, BLAS kernels and factorizations
//	solver/ — Conjugate Gradient and Gauss-Seidel with functional options
//
// Quick example:
//
//	a, _ := dense.NewDense[float64](2, 2)
//	_ = a.Set(0, 0, 4)
//	_ = a.Set(1, 1, 9)
//	_ = dense.Cholesky(a) // a now holds the lower factor L
//
// Dive into each package's doc.go for the full contract of every kernel,
// and into cmd/lvlblas for a runnable demo and micro-benchmarks.
//
//	go get github.com/katalvlaran/lvlblas
package lvlblas
