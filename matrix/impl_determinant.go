// SPDX-License-Identifier: MIT

package matrix

import "math"

// DefaultSingularTol is the pivot magnitude below which Determinant treats the
// matrix as singular and returns 0.
const DefaultSingularTol = 1e-10

// Determinant returns det(m) by Gaussian elimination with partial pivoting,
// using DefaultSingularTol as the singularity threshold.
//
// Implementation:
//   - Stage 1: ValidateSquare(m). Copy m into a working grid (m is never touched).
//   - Stage 2: for each pivot column i:
//     a) pick the row in [i, n) with the largest |w[k][i]|; strict '>' keeps the lowest index on ties;
//     b) swap it into place and negate the running value;
//     c) if |w[i][i]| < tol, return 0 immediately;
//     d) multiply the running value by w[i][i];
//     e) eliminate w[k][j] -= (w[k][i]/w[i][i]) * w[i][j] for k > i, j > i.
//   - Stage 3: the running value (starts at 1) is the determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Determinant").
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m *Dense) (float64, error) {
	return DeterminantTol(m, DefaultSingularTol)
}

// DeterminantTol is Determinant with a caller-chosen singularity threshold.
// With tol = 0 no pivot short-circuits, so an exactly singular input divides
// by zero and may yield NaN.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadTolerance (wrapped with "Determinant").
func DeterminantTol(m *Dense, tol float64) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := m.r
	w := workingRows(m)

	det := 1.0
	var i, j, k, maxRow int
	var pivot, factor float64
	for i = 0; i < n; i++ {
		maxRow = i
		for k = i + 1; k < n; k++ {
			if math.Abs(w[k][i]) > math.Abs(w[maxRow][i]) {
				maxRow = k
			}
		}
		if maxRow != i {
			w[i], w[maxRow] = w[maxRow], w[i]
			det = -det
		}

		pivot = w[i][i]
		if math.Abs(pivot) < tol {
			return 0.0, nil
		}
		det *= pivot

		for k = i + 1; k < n; k++ {
			factor = w[k][i] / pivot
			for j = i + 1; j < n; j++ {
				w[k][j] -= factor * w[i][j]
			}
		}
	}

	return det, nil
}

// Determinant is the method form of the package-level Determinant.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// workingRows copies m into one fresh buffer and returns per-row slices over it,
// so row swaps only exchange slice headers.
func workingRows(m *Dense) [][]float64 {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)
	rows := make([][]float64, m.r)
	for i := range rows {
		rows[i] = buf[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return rows
}
