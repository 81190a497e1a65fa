// SPDX-License-Identifier: MIT
// Public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks and for a "functional" call style.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "fmt"

// ---------- Constructors ----------

// NewZeros returns a rows×cols zero matrix.
// Errors: ErrShape when rows or cols is not positive.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewZeros", fmt.Errorf("%dx%d: %w", rows, cols, ErrShape))
	}

	return newDenseShape(rows, cols), nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrShape when n is not positive.
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// ---------- Functional aliases (O(1) forwarding) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Dense) (*Dense, error) { return Add(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: k*m.
func ScaleBy(m *Dense, k float64) (*Dense, error) { return Scale(m, k) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// Det is an alias for Determinant.
func Det(m *Dense) (float64, error) { return Determinant(m) }

// Dimensions returns (rows, cols) of m, or (0, 0) for nil.
func Dimensions(m *Dense) (rows, cols int) {
	if m == nil {
		return 0, 0
	}

	return m.Dims()
}

// ---------- Compositions ----------

// AddAll folds Add over ms left to right: ((m0 + m1) + m2) + ...
// Errors: ErrShape when ms is empty; otherwise the first Add error.
func AddAll(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("AddAll", ErrShape)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf("AddAll", err)
	}
	acc := ms[0].Clone()
	var err error
	for _, m := range ms[1:] {
		if acc, err = Add(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// MulAll folds Mul over ms left to right: ((m0 × m1) × m2) × ...
// Errors: ErrShape when ms is empty; otherwise the first Mul error.
func MulAll(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("MulAll", ErrShape)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf("MulAll", err)
	}
	acc := ms[0].Clone()
	var err error
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
