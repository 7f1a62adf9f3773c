// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/olelod/pyscal/curve"
)

// WaterOil interpolates between two water-oil curves at parameter t in
// [0,1]: 0 returns the low case, 1 the high case. Saturation endpoints are
// blended individually; relperm columns are blended pointwise on the new
// curve's own normalized saturation grid; pc is blended on a fresh
// normalized abscissa local to the new table. h is the saturation step size
// of the result. An explicit tag is used verbatim (empty string suppresses
// tagging); otherwise a tag is synthesized from the input tags. The inputs
// are read-only.
func WaterOil(low, high *curve.WaterOil, t, h float64, tag ...string) (*curve.WaterOil, error) {
	if low == nil || high == nil {
		return nil, chk.Err("cannot interpolate nil water-oil curves")
	}
	if t < 0 || t > 1 {
		return nil, chk.Err("interpolation parameter %g is outside [0,1]; extrapolation is refused", t)
	}

	krw1, kro1 := NormalizeWaterOil(low)
	krw2, kro2 := NormalizeWaterOil(high)
	pc1 := NormalizePc(low.Table, "sw")
	pc2 := NormalizePc(high.Table, "sw")

	// the same weight rule applies to endpoints and to relperm values
	w := func(a, b float64) float64 { return a*(1-t) + b*t }

	swl := w(low.Swl, high.Swl)
	swcr := w(low.Swcr, high.Swcr)
	sorw := w(low.Sorw, high.Sorw)

	krwmax := w(low.Table.Max("krw"), high.Table.Max("krw"))
	krwend := w(krw1(1), krw2(1))
	kroend := w(kro1(1), kro2(1))

	res, err := curve.NewWaterOil(swl, swcr, sorw, h)
	if err != nil {
		return nil, err
	}

	swn := res.Table.Col("swn")
	son := res.Table.Col("son")
	nrows := res.Table.Nrows()
	krw := make([]float64, nrows)
	krow := make([]float64, nrows)
	for i := 0; i < nrows; i++ {
		krw[i] = w(krw1(swn[i]), krw2(swn[i]))
		krow[i] = w(kro1(son[i]), kro2(son[i]))
	}
	res.SetKrw(krw)
	res.SetKrow(krow)

	res.SetEndpointsLinearpartKrw(krwend, krwmax)
	res.SetEndpointsLinearpartKrow(kroend)

	// the blended table has its own endpoints, so the pc abscissa must be
	// renormalized locally instead of inheriting either input's
	sw := res.Table.Col("sw")
	pc := make([]float64, nrows)
	span := sw[nrows-1] - sw[0]
	for i, s := range sw {
		swnpc := (s - sw[0]) / span
		pc[i] = w(pc1(swnpc), pc2(swnpc))
	}
	res.SetPc(pc)

	res.Tag = interpolateTags(low.Tag, high.Tag, t, tag)
	return res, nil
}

// interpolateTags synthesizes the tag of an interpolated curve unless an
// explicit tag (possibly empty) is supplied
func interpolateTags(lowTag, highTag string, t float64, tag []string) string {
	if len(tag) > 0 {
		return tag[0]
	}
	if lowTag == highTag {
		if lowTag != "" {
			return io.Sf("Interpolated to %g in %s", t, lowTag)
		}
		return io.Sf("Interpolated to %g", t)
	}
	return io.Sf("Interpolated to %g between %s and %s", t, lowTag, highTag)
}
