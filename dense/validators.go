// SPDX-License-Identifier: MIT
// Package dense: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for common shape/nil guards.
//   - Keep kernels minimal by delegating validation here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with kernelErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Validators run BEFORE any mutation, so a failed kernel is a no-op on
//     its output operands.

package dense

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T Float](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure). Complexity: O(1).
func ValidateSquare[T Float](m *Dense[T]) error {
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil[T Float](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateSameLen ensures two vectors have equal lengths.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateSameLen[T Float](x, y []T) error {
	if len(x) != len(y) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen[T Float](x []T, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateGemv – Composite for y = βy + αAx:
// NotNil(a) → a.Cols == len(x) → a.Rows == len(y).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateGemv[T Float](a *Dense[T], x, y []T) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.c != len(x) || a.r != len(y) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateGemm – Composite for C = βC + αAB:
// NotNil(a,b,c) → a.Cols == b.Rows → a.Rows == c.Rows → b.Cols == c.Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateGemm[T Float](a, b, c *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateNotNil(c); err != nil {
		return err
	}
	if a.c != b.r || a.r != c.r || b.c != c.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSymmSide checks the dimensions Symm assumes for the symmetric
// operand a on the indicated side:
//
//	leftSide:  a square and a.Rows == b.Rows  (C = βC + αAB)
//	!leftSide: a square and a.Cols == b.Cols  (C = βC + αBA)
//
// Symmetry itself is NOT verified; that is the caller's contract.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch. Complexity: O(1).
func ValidateSymmSide[T Float](a, b *Dense[T], leftSide bool) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if leftSide {
		if a.r != b.r {
			return ErrDimensionMismatch
		}
	} else {
		if a.c != b.c {
			return ErrDimensionMismatch
		}
	}

	return nil
}
