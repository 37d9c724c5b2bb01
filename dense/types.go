// SPDX-License-Identifier: MIT

// Package dense: domain types shared by the container and the kernels.
// This file intentionally contains ONLY type definitions (element
// constraint, storage order); errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package dense

// Float constrains Dense elements to the supported IEEE-754 widths.
// Every kernel in this package is generic over Float; the machine epsilon
// used by the factorizations is the native epsilon of the instantiated type.
type Float interface {
	~float32 | ~float64
}

// Order selects the memory layout of a Dense backing slice.
type Order uint8

const (
	// RowMajor stores element (i,j) at flat offset i*cols+j (C-style).
	RowMajor Order = iota
	// ColMajor stores element (i,j) at flat offset j*rows+i (Fortran-style).
	ColMajor
)

// String implements fmt.Stringer for diagnostics and matrix printing.
func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}

	return "row-major"
}
