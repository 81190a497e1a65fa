// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in caller
// logs. Kernels wrap with matrixErrorf(op, ErrX); callers still match with
// errors.Is(err, ErrX).
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> index -> shape -> dimension mismatch -> squareness.

var (
	// ErrShape is returned when input rows are empty or ragged, or when a
	// replacement row does not have exactly Cols() elements.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedOperand is returned by Multiply when an operand is neither
	// a *Dense nor a real scalar.
	ErrUnsupportedOperand = errors.New("matrix: unsupported operand")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadTolerance is returned when a singularity tolerance is negative or NaN.
	ErrBadTolerance = errors.New("matrix: invalid tolerance")
)
