// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Formatting literals.
const (
	_fmtNil  = "[]"
	_fmtSep  = " "
	_fmtLine = "\n"
)

// Render returns m as a multi-line bracketed grid:
//
//	⎡ 1.00 2.00 ⎤
//	⎢ 3.00 4.00 ⎥
//	⎣ 5.00 6.00 ⎦
//
// Every element is printed with a fixed number of decimals (DefaultPrecision)
// and right-aligned to the widest formatted element of the whole matrix.
// Row 0 takes the top glyphs, otherwise the last row takes the bottom glyphs,
// and any other row the middle glyphs. A single-row matrix is therefore drawn
// with the top glyphs only. There is no trailing newline. A nil matrix renders as "[]".
//
// NaN and ±Inf are spelled "nan", "inf" and "-inf".
// Complexity: O(r*c).
func Render(m *Dense, opts ...RenderOption) string {
	if m == nil {
		return _fmtNil
	}
	o := gatherRenderOptions(opts...)

	cells := make([]string, len(m.data))
	width := 0
	for idx, v := range m.data {
		cells[idx] = formatCell(v, o.precision)
		if len(cells[idx]) > width {
			width = len(cells[idx])
		}
	}

	var sb strings.Builder
	var left, right string
	for i := 0; i < m.r; i++ {
		switch {
		case i == 0:
			left, right = o.glyphs.TopLeft, o.glyphs.TopRight
		case i == m.r-1:
			left, right = o.glyphs.BottomLeft, o.glyphs.BottomRight
		default:
			left, right = o.glyphs.MiddleLeft, o.glyphs.MiddleRight
		}
		if i > 0 {
			sb.WriteString(_fmtLine)
		}
		sb.WriteString(left)
		for j := 0; j < m.c; j++ {
			sb.WriteString(_fmtSep)
			cell := cells[i*m.c+j]
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString(_fmtSep)
		sb.WriteString(right)
	}

	return sb.String()
}

// formatCell prints v in fixed-point notation with prec decimals.
func formatCell(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}
