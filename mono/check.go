// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mono

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// CheckLimits fails with a RangeError if any value in col is strictly above
// the upper bound or strictly below the lower bound of the spec. Equality to
// a bound is always permitted. Empty columns trivially pass.
func CheckLimits(col []float64, spec Spec, colname string) error {
	for _, v := range col {
		if spec.HasUpper && v > spec.Upper {
			return RangeError{Col: colname, Msg: io.Sf("values larger than upper limit %g in column %q", spec.Upper, colname)}
		}
		if spec.HasLower && v < spec.Lower {
			return RangeError{Col: colname, Msg: io.Sf("values smaller than lower limit %g in column %q", spec.Lower, colname)}
		}
	}
	return nil
}

// CheckAlmostMonotone fails with a MonotonicityError if col deviates from
// monotone (in the direction of sign) by more than one notch coarser than
// the requested precision. This guards against garbage input before the
// expensive correction is attempted.
func CheckAlmostMonotone(col []float64, digits, sign int, colname string) error {
	allowance := math.Pow(10, -float64(digits-1))
	for i := 1; i < len(col); i++ {
		diff := col[i] - col[i-1]
		if sign > 0 && diff < -allowance {
			return MonotonicityError{Col: colname, Msg: io.Sf("column %q is not almost monotonically increasing", colname)}
		}
		if sign < 0 && diff > allowance {
			return MonotonicityError{Col: colname, Msg: io.Sf("column %q is not almost monotonically decreasing", colname)}
		}
	}
	return nil
}
