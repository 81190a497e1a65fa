// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels minimal by delegating nil/shape/squareness checks here.
//  - Return sentinels wrapped with the validator tag; kernels add the op tag on top.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - All checks are pure and allocate nothing beyond the error value.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows checks that rows describes a non-empty rectangular grid:
// at least one row, a non-empty first row, and every row as long as the first.
//
// Errors: ErrShape (the message names the first offending row).
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows", ErrShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return validatorErrorf("ValidateRows: row 0 is empty", ErrShape)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has length %d, expected %d", i, len(rows[i]), cols), ErrShape)
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil; see ValidateBinarySameShape.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape(a, b).
// Use for Add-like kernels.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks m is non-nil and Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateTolerance accepts finite or +Inf tolerances >= 0.
// Errors: ErrBadTolerance for negative values and NaN.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrBadTolerance)
	}

	return nil
}
