// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mono

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_limits01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("limits01. bounds are enforced, equality allowed")

	up := Spec{Sign: 1, Upper: 1.0, HasUpper: true}
	err := CheckLimits([]float64{0.1, 0.5, 1.2}, up, "krw")
	if err == nil {
		tst.Errorf("value above upper limit must fail\n")
		return
	}
	if _, ok := err.(RangeError); !ok {
		tst.Errorf("want RangeError, got %T\n", err)
		return
	}

	// equality to a limit always passes
	err = CheckLimits([]float64{0.0, 0.5, 1.0}, Spec{Sign: 1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true}, "krw")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	lo := Spec{Sign: 1, Lower: 0, HasLower: true}
	err = CheckLimits([]float64{-0.001, 0.5}, lo, "krw")
	if err == nil {
		tst.Errorf("value below lower limit must fail\n")
		return
	}

	// empty columns trivially pass
	if CheckLimits(nil, up, "krw") != nil {
		tst.Errorf("empty column must pass\n")
		return
	}
}

func Test_almost01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("almost01. near-monotone pre-check")

	// dips below one notch coarser than the precision are rejected
	err := CheckAlmostMonotone([]float64{0, 0.5, 0.3}, 2, 1, "krw")
	if err == nil {
		tst.Errorf("dip of 0.2 at 2 digits must fail\n")
		return
	}
	if _, ok := err.(MonotonicityError); !ok {
		tst.Errorf("want MonotonicityError, got %T\n", err)
		return
	}

	// small dips are close enough to be corrected
	err = CheckAlmostMonotone([]float64{0, 0.5, 0.495}, 2, 1, "krw")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// decreasing direction
	err = CheckAlmostMonotone([]float64{1, 0.5, 0.7}, 2, -1, "krow")
	if err == nil {
		tst.Errorf("rise of 0.2 at 2 digits must fail for sign=-1\n")
		return
	}
	err = CheckAlmostMonotone([]float64{1, 0.5, 0.505}, 2, -1, "krow")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
}

func Test_clip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clip01. accumulate and clip")

	spec := Spec{Sign: 1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true}
	in := []float64{-0.1, 0.3, 0.2, 0.5, 1.2}
	res := ClipAccumulate(in, spec)
	chk.Array(tst, "accumulated", 1e-17, res, []float64{0, 0.3, 0.3, 0.5, 1})
	chk.Array(tst, "input untouched", 1e-17, in, []float64{-0.1, 0.3, 0.2, 0.5, 1.2})

	spec = Spec{Sign: -1}
	res = ClipAccumulate([]float64{1.0, 0.5, 0.7, 0.2}, spec)
	chk.Array(tst, "running minimum", 1e-17, res, []float64{1.0, 0.5, 0.5, 0.2})

	// non-decreasing invariant holds for any input
	spec = Spec{Sign: 1}
	res = ClipAccumulate([]float64{0.9, 0.1, 0.95, 0.2}, spec)
	for i := 1; i < len(res); i++ {
		if res[i] < res[i-1] {
			tst.Errorf("output not non-decreasing at %d\n", i)
			return
		}
	}
}
