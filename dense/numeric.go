// SPDX-License-Identifier: MIT

// Package dense: scalar numeric helpers shared by kernels and factorizations.
// Kept in one place so every routine uses the same epsilon, sqrt and abs,
// guaranteeing reproducible thresholds across the package.
package dense

import "math"

// Epsilon returns the machine epsilon of T: the smallest positive eps such
// that T(1)+eps is representable as a value greater than T(1).
//
// Implementation:
//   - Stage 1: start from eps = 1 and halve while 1 + eps/2 still compares
//     greater than 1 in T arithmetic.
//
// Determinism:
//   - Pure T arithmetic; yields 2⁻²³ for float32 and 2⁻⁵² for float64.
//
// Complexity:
//   - Time O(mantissa bits), Space O(1).
func Epsilon[T Float]() T {
	eps := T(1)
	for T(1)+eps/2 > T(1) {
		eps /= 2
	}

	return eps
}

// Sqrt returns the square root of x in the element type T.
// Computed through float64; exact for every float32 input as well, since
// the float64 result rounds to the correctly rounded float32 square root.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x. Branch-based on purpose: it keeps T
// generic without a detour through math.Abs and float64 conversion.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
