// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Render.
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want string
	}{
		{
			name: "2x2",
			rows: [][]float64{{1, 2}, {3, 4}},
			want: "⎡ 1.00 2.00 ⎤\n⎣ 3.00 4.00 ⎦",
		},
		{
			name: "3x3 interior row",
			rows: [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			want: "⎡ 1.00 2.00 3.00 ⎤\n⎢ 4.00 5.00 6.00 ⎥\n⎣ 7.00 8.00 9.00 ⎦",
		},
		{
			name: "single row uses top glyphs",
			rows: [][]float64{{1, 2, 3}},
			want: "⎡ 1.00 2.00 3.00 ⎤",
		},
		{
			name: "column with right alignment",
			rows: [][]float64{{1}, {-10.5}, {100}},
			want: "⎡   1.00 ⎤\n⎢ -10.50 ⎥\n⎣ 100.00 ⎦",
		},
		{
			name: "rounding",
			rows: [][]float64{{0.125, 2.675}, {1.005, -0.001}},
			want: "⎡  0.12  2.67 ⎤\n⎣  1.00 -0.00 ⎦",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := MustDense(t, tc.rows)
			require.Equal(t, tc.want, matrix.Render(m))
			require.Equal(t, tc.want, m.String())
		})
	}
}

func TestRender_NonFinite(t *testing.T) {
	m := MustDense(t, [][]float64{{math.NaN(), math.Inf(1)}, {math.Inf(-1), 1}})
	require.Equal(t, "⎡  nan  inf ⎤\n⎣ -inf 1.00 ⎦", matrix.Render(m))
}

func TestRender_Nil(t *testing.T) {
	require.Equal(t, "[]", matrix.Render(nil))
}

func TestRender_Options(t *testing.T) {
	m := MustDense(t, [][]float64{{1.5, 2}, {3, 4}, {5, 6}})

	require.Equal(t,
		"⎡ 1.500 2.000 ⎤\n⎢ 3.000 4.000 ⎥\n⎣ 5.000 6.000 ⎦",
		matrix.Render(m, matrix.WithPrecision(3)))

	require.Equal(t,
		"[ 2 2 ]\n| 3 4 |\n[ 5 6 ]",
		matrix.Render(m, matrix.WithPrecision(0), matrix.WithGlyphs(matrix.ASCIIGlyphs)))

	// later options win, nil options are skipped
	require.Equal(t, matrix.Render(m), matrix.Render(m, matrix.WithPrecision(5), nil, matrix.WithPrecision(2)))
}

func TestRender_OptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithPrecision(-1) })
	require.Panics(t, func() { matrix.WithGlyphs(matrix.Glyphs{}) })
}

func TestRender_EqualWidthCells(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 22.5, -333}, {4444, 5, 6}})
	lines := strings.Split(matrix.Render(m), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 5) // glyph, 3 cells, glyph
	}
	// the widest cell is "4444.00" (7 chars); every line has the same length
	require.Equal(t, len(lines[0]), len(lines[1]))
	require.Contains(t, lines[0], "   1.00   22.50 -333.00")
}
