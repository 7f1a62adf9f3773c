// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// piecewiseKrw builds a krw-like column: flat zero up to xlo, cubic in
// between, linear from xhi up to x=1
func piecewiseKrw(x []float64, xlo, xhi, yhi, ymax float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		switch {
		case v <= xlo:
			y[i] = 0
		case v >= xhi:
			y[i] = yhi + (v-xhi)/(1-xhi)*(ymax-yhi)
		default:
			n := (v - xlo) / (xhi - xlo)
			y[i] = yhi * n * n * n
		}
	}
	return y
}

func Test_jumppoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jumppoint01. right side estimates the end of linearity")

	n := 21
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
	}
	y := piecewiseKrw(x, 0.3, 0.7, 0.6, 1.0)

	t := New("sw", "krw")
	t.SetCol("sw", x)
	t.SetCol("krw", y)

	res, err := DiffJumpPoint(t, "sw", "krw", "right")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pforan("right jump = %v\n", res)
	}
	chk.Float64(tst, "right jump", 1e-12, res, 0.7)
}

func Test_jumppoint02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jumppoint02. left side estimates the onset of nonlinearity")

	n := 21
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
	}
	y := piecewiseKrw(x, 0.3, 0.7, 0.6, 1.0)

	t := New("sw", "krw")
	t.SetCol("sw", x)
	t.SetCol("krw", y)

	res, err := DiffJumpPoint(t, "sw", "krw", "left")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "left jump", 1e-12, res, 0.3)
}

func Test_jumppoint03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jumppoint03. defaults, errors and scale invariance")

	// unnamed columns default to the first two
	t := New("x", "y")
	t.SetCol("x", []float64{0, 0.5, 1})
	t.SetCol("y", []float64{0, 0.1, 1})
	res, err := DiffJumpPoint(t, "", "", "left")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "default columns", 1e-12, res, 0.5)

	// invalid side
	_, err = DiffJumpPoint(t, "x", "y", "up")
	if err == nil {
		tst.Errorf("invalid side must fail\n")
		return
	}

	// too few rows
	small := New("x", "y")
	small.SetCol("x", []float64{0.5})
	small.SetCol("y", []float64{1.0})
	_, err = DiffJumpPoint(small, "x", "y", "left")
	if err == nil {
		tst.Errorf("single-row table must fail\n")
		return
	}

	// large-magnitude y: the tolerance scales with the column
	n := 21
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
	}
	y := piecewiseKrw(x, 0.3, 0.7, 0.6, 1.0)
	for i := range y {
		y[i] *= 1e6
		y[i] += 1e-5 * math.Sin(float64(i)) // sub-tolerance noise
	}
	big := New("sw", "pc")
	big.SetCol("sw", x)
	big.SetCol("pc", y)
	res, err = DiffJumpPoint(big, "sw", "pc", "right")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "scaled right jump", 1e-12, res, 0.7)
}