// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new gonum *mat.Dense of the same shape.
//
// Errors: ErrNilInput when m is nil.
// Complexity: O(r*c).
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilInput)
	}
	r, c := m.Dims()
	buf := make([]float64, 0, r*c)
	for _, row := range m.ToRows() {
		buf = append(buf, row...)
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a *matrix.Dense. Views and lazy
// transposes (src.T()) are read through At, so their logical layout is kept.
//
// Errors:
//   - ErrNilInput when src is nil.
//   - matrix.ErrShape when src has a zero dimension.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*matrix.Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilInput)
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("FromGonum: %dx%d: %w", r, c, matrix.ErrShape)
	}
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = src.At(i, j)
		}
	}

	return matrix.NewDense(rows)
}
