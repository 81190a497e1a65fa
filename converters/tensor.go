// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
	"gorgonia.org/tensor"
)

// ToTensor copies m into a new Float64 tensor of shape (rows, cols).
//
// Errors: ErrNilInput when m is nil.
// Complexity: O(r*c).
func ToTensor(m *matrix.Dense) (*tensor.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToTensor: %w", ErrNilInput)
	}
	r, c := m.Dims()
	backing := make([]float64, 0, r*c)
	for _, row := range m.ToRows() {
		backing = append(backing, row...)
	}

	return tensor.New(tensor.WithShape(r, c), tensor.WithBacking(backing)), nil
}

// FromTensor copies a rank-2 Float64 or Float32 tensor into a *matrix.Dense.
// Elements are read with At, so sliced views keep their logical layout.
//
// Errors:
//   - ErrNilInput when t is nil.
//   - ErrRank when t.Dims() != 2.
//   - ErrDtype when the dtype is neither Float64 nor Float32.
//   - matrix.ErrShape when a dimension is zero.
//
// Complexity: O(r*c).
func FromTensor(t tensor.Tensor) (*matrix.Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("FromTensor: %w", ErrNilInput)
	}
	if t.Dims() != 2 {
		return nil, fmt.Errorf("FromTensor: shape %v: %w", t.Shape(), ErrRank)
	}
	dt := t.Dtype()
	if dt != tensor.Float64 && dt != tensor.Float32 {
		return nil, fmt.Errorf("FromTensor: %v: %w", dt, ErrDtype)
	}
	shape := t.Shape()
	r, c := shape[0], shape[1]
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("FromTensor: %dx%d: %w", r, c, matrix.ErrShape)
	}

	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			v, err := t.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("FromTensor: At(%d,%d): %w", i, j, err)
			}
			switch x := v.(type) {
			case float64:
				rows[i][j] = x
			case float32:
				rows[i][j] = float64(x)
			default:
				return nil, fmt.Errorf("FromTensor: element %T: %w", v, ErrDtype)
			}
		}
	}

	return matrix.NewDense(rows)
}
