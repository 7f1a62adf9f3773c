// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// DiffJumpPoint estimates the x-value where the y-column stops being linear
// in x, scanning from the given side ("left" or "right"). The slope of the
// end segment on the chosen side is taken as the reference linear behaviour;
// the jump point is where the cumulative deviation from that line starts
// (left) or stops (right) changing.
//
// With x=sw, y=krw and side "right" this typically estimates 1-sorw; with
// side "left" it estimates swcr.
//
// Empty xcol or ycol default to the first and second columns of the table.
// At least 2 rows are required for the derivative to be defined.
func DiffJumpPoint(o *Table, xcol, ycol, side string) (float64, error) {
	keys := o.Keys()
	if xcol == "" {
		xcol = keys[0]
	}
	if ycol == "" {
		ycol = keys[1]
	}
	side = strings.ToLower(side)
	if side != "left" && side != "right" {
		return 0, chk.Err("side must be \"left\" or \"right\"; %q is invalid", side)
	}
	x := o.Col(xcol)
	y := o.Col(ycol)
	n := len(x)
	if n < 2 {
		return 0, chk.Err("cannot estimate jump point with %d row(s); need at least 2", n)
	}

	// discrete derivative; first entry extrapolated from the second
	deriv := make([]float64, n)
	for i := 1; i < n; i++ {
		deriv[i] = (y[i] - y[i-1]) / (x[i] - x[i-1])
	}
	deriv[0] = deriv[1]

	// reference slope at the chosen end segment
	ref := 0
	if side == "right" {
		ref = n - 1
	}
	linA := deriv[ref]

	// deviation of y from the hypothetical fully-linear y, accumulated
	cumdev := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		linear := (x[i]-x[ref])*linA + y[ref]
		sum += math.Abs(y[i] - linear)
		cumdev[i] = sum
	}

	// tolerance scaled by the magnitude of y, to be robust on long tables
	// and large-magnitude columns
	tol := Epsilon * math.Max(1, o.MaxAbs(ycol))

	if side == "right" {
		// the linear part is where the cumulative deviation has stopped
		// changing; the jump point is its second row
		maxdev := cumdev[n-1]
		first := -1
		for i := 0; i < n; i++ {
			if math.Abs(cumdev[i]-maxdev) < tol {
				first = i
				break
			}
		}
		if first < 0 || first+1 >= n {
			return x[n-1], nil
		}
		return x[first+1], nil
	}

	// left: the linear part is where the cumulative deviation has not yet
	// started changing; the jump point is its last row
	last := -1
	for i := 0; i < n; i++ {
		if cumdev[i] < tol {
			last = i
		}
	}
	if last <= 0 {
		// only the first row is linear: shift by one segment
		for i := 1; i < n; i++ {
			if cumdev[i-1] < tol {
				last = i
			}
		}
	}
	if last < 0 {
		last = 0
	}
	return x[last], nil
}
