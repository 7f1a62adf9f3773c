// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interp blends endpoint-parameterized saturation-function curves:
// it re-parameterizes each curve onto a common dimensionless [0,1] domain,
// interpolates pointwise, and de-normalizes onto a freshly built curve
package interp

import (
	"sort"

	"github.com/olelod/pyscal/curve"
	"github.com/olelod/pyscal/tab"
)

// Interp1d returns a piecewise-linear interpolant over the points (xp, fp),
// with constant values lo below the range of xp and hi above it. xp must be
// sorted ascending.
func Interp1d(xp, fp []float64, lo, hi float64) func(float64) float64 {
	return func(x float64) float64 {
		idx := sort.SearchFloat64s(xp, x)
		if idx == 0 {
			if x < xp[0] {
				return lo
			}
			return fp[0]
		}
		if idx == len(xp) {
			if x > xp[len(xp)-1] {
				return hi
			}
			return fp[len(fp)-1]
		}
		return fp[idx-1] + (fp[idx]-fp[idx-1])*(x-xp[idx-1])/(xp[idx]-xp[idx-1])
	}
}

// NormalizeWaterOil builds continuous interpolants for krw and krow with
// normalized arguments on [0,1]. For krw, 0 maps to swcr and 1 maps to
// 1-sorw; for krow (a function of the oil saturation so=1-sw), 0 maps to
// sorw and 1 maps to 1-swl. Outside the table's saturation range the
// interpolants extrapolate with 0 below and the column maximum above.
//
// Normalization is recomputed from raw saturations and endpoints on every
// call; any normalized columns in the table are deliberately ignored, so
// the result is robust to stale swn/son data.
func NormalizeWaterOil(o *curve.WaterOil) (krw, krow func(float64) float64) {
	sw := o.Table.Col("sw")
	krwcol := o.Table.Col("krw")
	krowcol := o.Table.Col("krow")

	krwi := Interp1d(sw, krwcol, 0, o.Table.Max("krw"))
	krw = func(swn float64) float64 {
		return krwi(o.Swcr + swn*(1-o.Swcr-o.Sorw))
	}

	// krow as a function of so=1-sw; sw ascending means so descending,
	// so both axes are reversed for the interpolant
	so := make([]float64, len(sw))
	kro := make([]float64, len(sw))
	for i, s := range sw {
		j := len(sw) - 1 - i
		so[j] = 1 - s
		kro[j] = krowcol[i]
	}
	kroi := Interp1d(so, kro, 0, o.Table.Max("krow"))
	krow = func(son float64) float64 {
		return kroi(o.Sorw + son*(1-o.Sorw-o.Swl))
	}
	return
}

// NormalizeGasOil builds continuous interpolants for krg and krog with
// normalized arguments on [0,1]. For krg, 0 maps to sgcr and 1 maps to
// 1-swl-sorg; for krog (a function of so=1-sg), 0 maps to swl+sorg and 1
// maps to 1 (sg=0). Extrapolation follows NormalizeWaterOil.
func NormalizeGasOil(o *curve.GasOil) (krg, krog func(float64) float64) {
	sg := o.Table.Col("sg")
	krgcol := o.Table.Col("krg")
	krogcol := o.Table.Col("krog")

	krgi := Interp1d(sg, krgcol, 0, o.Table.Max("krg"))
	krg = func(sgn float64) float64 {
		return krgi(o.Sgcr + sgn*(1-o.Swl-o.Sgcr-o.Sorg))
	}

	so := make([]float64, len(sg))
	kro := make([]float64, len(sg))
	for i, s := range sg {
		j := len(sg) - 1 - i
		so[j] = 1 - s
		kro[j] = krogcol[i]
	}
	kroi := Interp1d(so, kro, 0, o.Table.Max("krog"))
	krog = func(son float64) float64 {
		return kroi(o.Swl + o.Sorg + son*(1-o.Swl-o.Sorg))
	}
	return
}

// NormalizePc builds a continuous interpolant of capillary pressure with a
// normalized argument: [0,1] maps linearly onto the observed saturation
// range of satcol. Outside [0,1] the pc value at the nearest observed
// extreme is used (flat extrapolation). Without a pc column a constant-zero
// function is returned.
func NormalizePc(o *tab.Table, satcol string) func(float64) float64 {
	if !o.HasCol("pc") {
		return func(float64) float64 { return 0 }
	}
	sx := o.Col(satcol)
	pc := o.Col("pc")
	n := len(sx)
	pci := Interp1d(sx, pc, pc[0], pc[n-1])
	minSx := sx[0]
	maxSx := sx[n-1]
	return func(sxn float64) float64 {
		return pci(minSx + sxn*(maxSx-minSx))
	}
}
