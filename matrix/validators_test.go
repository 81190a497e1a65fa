// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateRows(t *testing.T) {
	require.NoError(t, matrix.ValidateRows([][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, matrix.ValidateRows(nil), matrix.ErrShape)
	require.ErrorIs(t, matrix.ValidateRows([][]float64{{}, {}}), matrix.ErrShape)
	require.ErrorIs(t, matrix.ValidateRows([][]float64{{1}, {2}, {3, 4}}), matrix.ErrShape)
}

func TestValidateShapes(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := MustDense(t, [][]float64{{1}, {2}, {3}})       // 3x1
	sq := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.NoError(t, matrix.ValidateMulCompatible(sq, a))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateBinarySameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateTolerance(t *testing.T) {
	for _, tol := range []float64{0, 1e-10, 1, math.Inf(1)} {
		require.NoError(t, matrix.ValidateTolerance(tol))
	}
	for _, tol := range []float64{-1e-12, math.Inf(-1), math.NaN()} {
		require.ErrorIs(t, matrix.ValidateTolerance(tol), matrix.ErrBadTolerance)
	}
}
