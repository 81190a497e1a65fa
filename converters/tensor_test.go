// SPDX-License-Identifier: MIT
package converters_test

import (
	"testing"

	"github.com/katalvlaran/densela/converters"
	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestTensor_RoundTrip(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	tt, err := converters.ToTensor(m)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{3, 2}, tt.Shape())
	require.Equal(t, tensor.Float64, tt.Dtype())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, tt.Data())

	// no shared storage
	require.NoError(t, tt.SetAt(99.0, 0, 0))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	back, err := converters.FromTensor(tt)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{99, 2}, {3, 4}, {5, 6}}, back.ToRows())
}

func TestFromTensor_Float32(t *testing.T) {
	tt := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]float32{0.5, 1, 1.5, 2}))

	m, err := converters.FromTensor(tt)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, m.ToRows())

	d, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.InDelta(t, -0.5, d, 1e-12)
}

func TestFromTensor_Errors(t *testing.T) {
	_, err := converters.FromTensor(nil)
	require.ErrorIs(t, err, converters.ErrNilInput)

	_, err = converters.ToTensor(nil)
	require.ErrorIs(t, err, converters.ErrNilInput)

	vec := tensor.New(tensor.WithShape(3), tensor.WithBacking([]float64{1, 2, 3}))
	_, err = converters.FromTensor(vec)
	require.ErrorIs(t, err, converters.ErrRank)

	cube := tensor.New(tensor.WithShape(2, 2, 2), tensor.WithBacking(make([]float64, 8)))
	_, err = converters.FromTensor(cube)
	require.ErrorIs(t, err, converters.ErrRank)

	ints := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]int{1, 2, 3, 4}))
	_, err = converters.FromTensor(ints)
	require.ErrorIs(t, err, converters.ErrDtype)
}
