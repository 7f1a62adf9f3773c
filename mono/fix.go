// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mono

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/olelod/pyscal/tab"
)

// ClipAccumulate returns a new column that is the running maximum (sign>0)
// or running minimum (sign<0) of col, clipped to the bounds present in the
// spec. The result is non-strictly monotone. The input is not modified.
func ClipAccumulate(col []float64, spec Spec) []float64 {
	res := make([]float64, len(col))
	for i, v := range col {
		if i > 0 {
			if spec.Sign > 0 {
				v = math.Max(v, res[i-1])
			} else {
				v = math.Min(v, res[i-1])
			}
		}
		if spec.HasLower {
			v = math.Max(v, spec.Lower)
		}
		if spec.HasUpper {
			v = math.Min(v, spec.Upper)
		}
		res[i] = v
	}
	return res
}

// rowsToBeFixed flags rows whose difference from the previous row, rounded
// one notch finer than the target precision, is below the accuracy required
// for strict monotonicity. Rows within accuracy of a declared bound are
// exempt: non-strict monotonicity is permitted there.
func rowsToBeFixed(col []float64, spec Spec, digits int) []bool {
	// minus Epsilon is critical to avoid being greedy
	accuracy := math.Pow(10, -float64(digits)) - tab.Epsilon
	res := make([]bool, len(col))
	for i := 1; i < len(col); i++ {
		diff := tab.Roundn(col[i], digits+1) - tab.Roundn(col[i-1], digits+1)
		if spec.Sign > 0 {
			res[i] = diff < accuracy
		} else {
			res[i] = diff > -accuracy
		}
		if spec.HasUpper && col[i] >= spec.Upper-accuracy {
			res[i] = false
		}
		if spec.HasLower && col[i] <= spec.Lower+accuracy {
			res[i] = false
		}
	}
	return res
}

// FixTable returns a copy of the table in which every column named in specs
// is strictly monotone when rounded to the given number of digits, except at
// declared bounds where plateaus are permitted. The input table is never
// modified, and no partially-fixed table is ever returned: any validation
// failure aborts the whole operation.
//
// The table is first rounded to digits+1 decimals; reasoning one digit finer
// than the output precision is what guarantees strictness after printing.
// Flagged rows are nudged by the minimal printable increment and the column
// re-accumulated, until no row needs fixing or the iteration budget of
// 2 x nrows is exhausted.
func FixTable(o *tab.Table, specs map[string]Spec, digits int) (*tab.Table, error) {

	// validate specs
	for name, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if !o.HasCol(name) {
			return nil, ConfigurationError{Msg: io.Sf("column %q does not exist in table", name)}
		}
	}

	// one extra digit of precision avoids representation-error false positives
	res := o.Round(digits + 1)

	// bail on clearly erroneous data before modifying anything
	for _, name := range res.Keys() {
		spec, ok := specs[name]
		if !ok {
			continue
		}
		if err := CheckAlmostMonotone(res.Col(name), digits, spec.Sign, name); err != nil {
			return nil, err
		}
		if err := CheckLimits(res.Col(name), spec, name); err != nil {
			return nil, err
		}
	}

	for _, name := range res.Keys() {
		spec, ok := specs[name]
		if !ok {
			continue
		}
		accuracy := math.Pow(10, -float64(digits)) - tab.Epsilon
		col := res.Col(name)
		nrows := len(col)

		if spec.AllowZero && res.MaxAbs(name) < accuracy {
			continue
		}

		constants := rowsToBeFixed(col, spec, digits)
		iterations := 0
		for anyTrue(constants) {
			iterations++
			if iterations > 2*nrows {
				return nil, ConvergenceError{
					Col:        name,
					Iterations: iterations,
					Msg:        io.Sf("too many iterations (%d) for monotonicity fix of column %q", iterations, name),
				}
			}
			delta := float64(spec.Sign)*math.Pow(10, -float64(digits)) - tab.Epsilon
			for i, c := range constants {
				if c {
					col[i] += delta
				}
			}

			// restore non-strict monotonicity and bounds after the nudge
			col = ClipAccumulate(col, spec)
			res.SetCol(name, col)

			constants = rowsToBeFixed(col, spec, digits)
		}

		// iteration count does not necessarily correspond to the number of
		// changed rows; many iterations is a data-quality signal
		if nrows > 0 && float64(iterations)/float64(nrows) > 0.05 {
			Warnf("needed %d iterations on column %q of length %d", iterations, name, nrows)
		}

		// final strict monotonicity at the target precision
		allowance := math.Pow(10, -float64(digits))
		for i := 1; i < nrows; i++ {
			diff := tab.Roundn(col[i], digits) - tab.Roundn(col[i-1], digits)
			if spec.Sign > 0 && diff < -allowance {
				return nil, ValidationError{Col: name, Msg: io.Sf("not possible to make column %q monotonically increasing", name)}
			}
			if spec.Sign < 0 && diff > allowance {
				return nil, ValidationError{Col: name, Msg: io.Sf("not possible to make column %q monotonically decreasing", name)}
			}
		}
	}
	return res, nil
}

// auxiliary
func anyTrue(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
