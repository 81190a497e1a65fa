// Package matrix implements a dense real matrix type and its arithmetic.
//
// The matrix package provides:
//
//   - Dense, a rows×cols grid of float64 stored row-major. Shape is fixed at
//     construction; contents can be rewritten with Set and SetRow.
//   - Kernels: Add, Scale, Mul, Transpose, Equal, Determinant (Gaussian
//     elimination with partial pivoting) and Render (bracketed text grid).
//   - Multiply, one entry point dispatching matrix×matrix and matrix×scalar
//     for callers with untyped operands.
//
// Every value crossing the API is copied: NewDense copies its input, Row and
// ToRows return copies, and every kernel returns a freshly allocated result
// without touching its operands. Errors are package sentinels (ErrShape,
// ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare, ErrUnsupportedOperand,
// ErrNilMatrix) wrapped with the failing operation; match them with errors.Is.
//
// Equality is exact (==, no epsilon). Floating-point round-off therefore
// matters: compare with a tolerance in callers that need approximate equality.
//
// Quick example:
//
//	a, _ := matrix.NewDense([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Determinant(a) // -2
//	fmt.Println(a)
//	// ⎡ 1.00 2.00 ⎤
//	// ⎣ 3.00 4.00 ⎦
package matrix
