// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/SetRow return errors instead of panicking.
//   - Own the buffer exclusively: every value crossing the API boundary is copied.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At/Set: O(1); Row/SetRow: O(c); Clone/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxNew    = "NewDense"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so errors.Is keeps working.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rectangular matrix of float64 values in row-major order.
//   - r,c hold dimensions (both >= 1 for every value reachable through the API).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// A Dense is not safe for concurrent mutation. Kernels (Add, Mul, ...) only read
// their operands, so concurrent reads of a shared Dense are fine as long as no
// goroutine calls Set or SetRow at the same time.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt interfaces.
var (
	_ fmt.Stringer   = (*Dense)(nil)
	_ fmt.GoStringer = (*Dense)(nil)
)

// NewDense builds a matrix from an ordered sequence of rows.
//
// Implementation:
//   - Stage 1: validate rows via ValidateRows (non-empty, first row non-empty, rectangular).
//   - Stage 2: copy every row into a fresh flat buffer.
//
// Errors:
//   - ErrShape when rows is empty or ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The caller keeps ownership of rows; later mutations of rows do not reach the matrix.
func NewDense(rows [][]float64) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		copy(buf[i*c:(i+1)*c], rows[i])
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// NewDenseInts is NewDense for integer input; every element is converted to float64.
func NewDenseInts(rows [][]int) (*Dense, error) {
	conv := make([][]float64, len(rows))
	for i, row := range rows {
		conv[i] = make([]float64, len(row))
		for j, v := range row {
			conv[i][j] = float64(v)
		}
	}

	return NewDense(conv)
}

// newDenseShape allocates an r×c zero matrix. Callers guarantee r, c >= 1.
func newDenseShape(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// Shape is an alias for Dims.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row, col) and returns the flat offset.
// The error is wrapped with the caller's method tag and coordinates.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow replaces row i in place with a copy of values. Dimensions never change.
//
// Errors (checked in this order):
//   - ErrOutOfRange when i is outside [0, Rows()).
//   - ErrShape when len(values) != Cols().
//
// On error the matrix is left untouched.
// Complexity: O(c).
func (m *Dense) SetRow(i int, values []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(values) != m.c {
		return denseErrorf(ctxSetRow, i, len(values), ErrShape)
	}
	copy(m.data[i*m.c:(i+1)*m.c], values)

	return nil
}

// ToRows returns a deep copy of the contents as a slice of rows.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String renders the matrix as a bracketed grid with default options.
// See Render.
func (m *Dense) String() string { return Render(m) }

// GoString implements fmt.GoStringer ("%#v"): Matrix([[1 2] [3 4]]).
func (m *Dense) GoString() string {
	if m == nil {
		return "Matrix(nil)"
	}
	var sb strings.Builder
	sb.WriteString("Matrix([")
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteByte(']')
	}
	sb.WriteString("])")

	return sb.String()
}
