// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/olelod/pyscal/curve"
)

// GasOil interpolates between two gas-oil curves at parameter t in [0,1]:
// 0 returns the low case, 1 the high case. The algorithm mirrors WaterOil:
// endpoints are blended individually, relperm columns pointwise on the new
// curve's normalized grid, and pc on a fresh abscissa local to the new
// table. The inputs are read-only.
func GasOil(low, high *curve.GasOil, t, h float64, tag ...string) (*curve.GasOil, error) {
	if low == nil || high == nil {
		return nil, chk.Err("cannot interpolate nil gas-oil curves")
	}
	if t < 0 || t > 1 {
		return nil, chk.Err("interpolation parameter %g is outside [0,1]; extrapolation is refused", t)
	}

	krg1, kro1 := NormalizeGasOil(low)
	krg2, kro2 := NormalizeGasOil(high)
	pc1 := NormalizePc(low.Table, "sg")
	pc2 := NormalizePc(high.Table, "sg")

	w := func(a, b float64) float64 { return a*(1-t) + b*t }

	swl := w(low.Swl, high.Swl)
	sgcr := w(low.Sgcr, high.Sgcr)
	sorg := w(low.Sorg, high.Sorg)

	krgmax := w(low.Table.Max("krg"), high.Table.Max("krg"))
	krgend := w(krg1(1), krg2(1))
	kroend := w(kro1(1), kro2(1))

	res, err := curve.NewGasOil(swl, sgcr, sorg, h)
	if err != nil {
		return nil, err
	}

	sgn := res.Table.Col("sgn")
	son := res.Table.Col("son")
	nrows := res.Table.Nrows()
	krg := make([]float64, nrows)
	krog := make([]float64, nrows)
	for i := 0; i < nrows; i++ {
		krg[i] = w(krg1(sgn[i]), krg2(sgn[i]))
		krog[i] = w(kro1(son[i]), kro2(son[i]))
	}
	res.SetKrg(krg)
	res.SetKrog(krog)

	// fresh pc abscissa local to the new table's own saturation range
	sg := res.Table.Col("sg")
	pc := make([]float64, nrows)
	span := sg[nrows-1] - sg[0]
	for i, s := range sg {
		sgnpc := (s - sg[0]) / span
		pc[i] = w(pc1(sgnpc), pc2(sgnpc))
	}
	res.SetPc(pc)

	res.SetEndpointsLinearpartKrog(kroend)
	res.SetEndpointsLinearpartKrg(krgend, krgmax)

	res.Tag = interpolateTags(low.Tag, high.Tag, t, tag)
	return res, nil
}
