// SPDX-License-Identifier: MIT

// Package matrix - immutable Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Validate shape and numeric policy exactly once, at construction.
//   - Never expose the backing slice: accessors return values or copies, so a
//     *Dense can be shared between goroutines and packages without locking.
//
// AI-Hints:
//   - Hot loops should copy once with RawCopy/Column and work on plain slices.
//   - Use NewDenseFromRows for literals in tests and examples.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy + validation; At: O(1); Row/Column: O(c)/O(r); RawCopy: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxColumn = "Column" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix of finite float64 values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a private flat buffer of length r*c (offset = i*c + j).
//
// The zero value is not usable; construct with NewDense or NewDenseFromRows.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c), never aliased
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an immutable rows×cols matrix from a row-major data slice.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape and numeric validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: validate len(data) == rows*cols; else ErrDimensionMismatch.
//   - Stage 3: copy data while rejecting NaN/±Inf (ErrNaNInf with coordinates).
//
// Behavior highlights:
//   - The caller keeps ownership of data; later writes to it are not observed.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDense: len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}

	buf := make([]float64, len(data))
	var k int
	for k = range data {
		if math.IsNaN(data[k]) || math.IsInf(data[k], 0) {
			return nil, denseErrorf("New", k/cols, k%cols, ErrNaNInf)
		}
		buf[k] = data[k]
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64 literal.
// Returns ErrInvalidDimensions for an empty literal or empty first row,
// ErrRaggedRows when row lengths differ.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		flat = append(flat, row...)
	}

	return NewDense(len(rows), cols, flat)
}

// newDenseOwned wraps an already-validated buffer without copying.
// Internal kernels use it for freshly allocated results only.
func newDenseOwned(rows, cols int, data []float64) *Dense {
	return &Dense{r: rows, c: cols, data: data}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// At returns the element at (i, j) or ErrOutOfRange wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawCopy returns a fresh row-major copy of the backing buffer.
// Complexity: O(r*c).
func (m *Dense) RawCopy() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports exact element-wise equality of shape and values.
// Two nil matrices are equal; nil never equals non-nil.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders the matrix row by row, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
