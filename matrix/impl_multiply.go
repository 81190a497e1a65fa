// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Multiply is a single entry point for callers that hold untyped operands
// (expression evaluators, REPLs). It dispatches once on the operand kinds:
//
//	*Dense × *Dense  → Mul(x, y)
//	*Dense × scalar  → Scale(x, k)
//	scalar × *Dense  → Scale(y, k)
//
// Scalars are any Go integer or floating-point value. Typed code should call
// Mul or Scale directly.
//
// Errors:
//   - ErrUnsupportedOperand for any other combination (including scalar × scalar).
//   - Errors from Mul/Scale unchanged (ErrNilMatrix, ErrDimensionMismatch).
func Multiply(x, y any) (*Dense, error) {
	mx, xIsMat := x.(*Dense)
	my, yIsMat := y.(*Dense)

	switch {
	case xIsMat && yIsMat:
		return Mul(mx, my)
	case xIsMat:
		if k, ok := asScalar(y); ok {
			return Scale(mx, k)
		}
	case yIsMat:
		if k, ok := asScalar(x); ok {
			return Scale(my, k)
		}
	}

	return nil, matrixErrorf(opMultiply, fmt.Errorf("%T × %T: %w", x, y, ErrUnsupportedOperand))
}

// asScalar converts any Go integer or float kind to float64.
func asScalar(v any) (float64, bool) {
	switch k := v.(type) {
	case float64:
		return k, true
	case float32:
		return float64(k), true
	case int:
		return float64(k), true
	case int8:
		return float64(k), true
	case int16:
		return float64(k), true
	case int32:
		return float64(k), true
	case int64:
		return float64(k), true
	case uint:
		return float64(k), true
	case uint8:
		return float64(k), true
	case uint16:
		return float64(k), true
	case uint32:
		return float64(k), true
	case uint64:
		return float64(k), true
	default:
		return 0, false
	}
}
