// Package dense provides the core linear-algebra primitives of lvlblas.
//
// The dense package provides:
//
//   - Dense[T], a contiguous matrix container generic over float32/float64,
//     with selectable row-major or column-major storage.
//   - Level-1 vector kernels (Dot, Scal, Copy, Axpy, Nrm2), Level-2
//     matrix-vector kernels (Gemv, Symv) and Level-3 matrix-matrix kernels
//     (Gemm, Symm) following BLAS scaling conventions.
//   - In-place factorizations: LU with partial pivoting plus triangular
//     solve, Cholesky, and Householder QR.
//
// All kernels are single-threaded, allocate at most their documented
// results, and fail fast with package sentinel errors before mutating any
// output operand. Factorizations overwrite their input; callers that need
// the original afterwards must Clone first.
//
// See the examples in this package and solver for usage patterns.
package dense
