// SPDX-License-Identifier: MIT

// Package dense: Dense is the concrete contiguous matrix container.
// Elements live in a flat slice for performance and cache friendliness;
// the storage-order flag decides how (i,j) maps into it.
package dense

import (
	"fmt"
	"strings"
)

// Dense is an r×c matrix of T values backed by a flat slice.
// The invariant len(data) == r*c holds for every constructed instance.
type Dense[T Float] struct {
	r, c int   // number of rows and columns
	ord  Order // storage layout of data
	data []T   // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): resolve options, allocate flat backing slice.
// Stage 3 (Finalize): apply the initial value and return.
//
// Defaults: row-major layout, zero-filled; override with WithColMajor /
// WithOrder / WithInitValue.
// Complexity: O(r*c) time and memory.
func NewDense[T Float](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	// Validate dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	cfg := gatherOptions(opts...)

	// Allocate flat slice (already zeroed by make).
	data := make([]T, rows*cols)
	if cfg.init != 0 {
		for i := range data {
			data[i] = cfg.init
		}
	}

	return &Dense[T]{r: rows, c: cols, ord: cfg.order, data: data}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Order returns the storage layout of the backing slice. Complexity: O(1).
func (m *Dense[T]) Order() Order { return m.ord }

// index computes the flat offset of (row, col) WITHOUT bounds checking.
// This is the hot-path accessor used internally by every kernel; callers
// inside the package must have validated shapes beforehand.
func (m *Dense[T]) index(row, col int) int {
	if m.ord == ColMajor {
		return col*m.r + row
	}

	return row*m.c + col
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): delegate to the unchecked index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.index(row, col), nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Fill overwrites every element with v. Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy of the Dense matrix, preserving the storage
// order. The copy shares nothing with the original.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, ord: m.ord, data: copyData}
}

// Transpose returns a NEW matrix with rows and columns swapped so that
// result(j,i) == m(i,j). The storage-order flag is preserved and no data is
// aliased with the source.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Transpose() *Dense[T] {
	res := &Dense[T]{r: m.c, c: m.r, ord: m.ord, data: make([]T, len(m.data))}
	var i, j int // loop iterators (deterministic i→j order)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[res.index(j, i)] = m.data[m.index(i, j)]
		}
	}

	return res
}

// String implements fmt.Stringer for easy debugging.
// One bracketed line per row regardless of the storage order.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", float64(m.data[m.index(i, j)]))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
