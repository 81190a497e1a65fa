// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|.
//
// It is the explicit opt-in for approximate comparison; Equal stays exact.
// NaN is close to nothing, +Inf is close only to +Inf and -Inf only to -Inf.
//
// Policy:
//   - rtol and atol are used as |rtol|, |atol|; NaN or Inf tolerances → ErrBadTolerance.
//   - a and b must be non-nil with identical shapes (ErrNilMatrix, ErrDimensionMismatch).
//
// Complexity: O(r*c) time, O(1) space; stops at the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = a.data[idx], b.data[idx]
		if av == bv { // covers equal infinities
			continue
		}
		if math.IsNaN(av) || math.IsNaN(bv) || math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false, nil
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
