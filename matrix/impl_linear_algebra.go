// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over *Dense: element-wise
// addition, scalar scaling, matrix multiplication, transpose and exact equality.
// All kernels perform strict fail-fast validation and return wrapped sentinels.
//
// Purpose:
//   - Canonical implementation of each operation (facades in api.go forward here).
//   - Operation tags for uniform error wrapping.
//
// Notes:
//   - Operands are never mutated; every result is a freshly allocated *Dense.
//   - On error the result is nil; there is no partial success.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opMultiply    = "Multiply"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Formats as "<tag>: <underlying>". Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b element-wise.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop over both buffers into a new Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := newDenseShape(a.r, a.c)
	for idx := range res.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Scale returns k * m. NaN and ±Inf scalars propagate without a guard.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Scale").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - k = 0 yields an explicit zero matrix with the same shape
//     (unless m holds ±Inf or NaN, which turn into NaN).
func Scale(m *Dense, k float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDenseShape(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v * k
	}

	return res, nil
}

// Mul returns the matrix product a × b with shape (a.Rows, b.Cols).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i → j → k triple loop; every cell starts at ZeroSum and accumulates
//     a[i,k]*b[k,j] for k = 0..n-1 in increasing order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows (wrapped with "Mul").
//
// Determinism:
//   - Fixed left-to-right summation over k gives bit-reproducible results.
//     Zero entries are not skipped, so NaN/Inf in b always reach the result.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	res := newDenseShape(rows, cols)

	var (
		i, j, k int
		sum     float64
		rowA    []float64
	)
	for i = 0; i < rows; i++ {
		rowA = a.data[i*inner : (i+1)*inner]
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += rowA[k] * b.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ with shape (Cols, Rows).
//
// Errors:
//   - ErrNilMatrix (wrapped with "Transpose").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := newDenseShape(cols, rows)

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and bit-for-bit equal
// elements under ==. No tolerance is applied: 0.1+0.2 != 0.3, and a matrix
// holding NaN is not Equal to itself. Two nil matrices are Equal.
//
// Use an explicit tolerance comparison in callers that need approximate equality.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx, v := range a.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (m *Dense) Equal(other *Dense) bool { return Equal(m, other) }

// Add is the method form of the package-level Add; the receiver is the left operand.
func (m *Dense) Add(other *Dense) (*Dense, error) { return Add(m, other) }

// Mul is the method form of the package-level Mul; the receiver is the left operand.
func (m *Dense) Mul(other *Dense) (*Dense, error) { return Mul(m, other) }

// Scale is the method form of the package-level Scale.
func (m *Dense) Scale(k float64) (*Dense, error) { return Scale(m, k) }

// T returns the transpose of m.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }
