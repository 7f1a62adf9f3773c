// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/olelod/pyscal/mono"
	"github.com/olelod/pyscal/out"
	"github.com/olelod/pyscal/tab"
)

// GasOil holds a gas-oil saturation-function table with its scalar
// endpoints. The table columns are sg, sgn, son, krg, krog and optionally
// pc; sg is sorted ascending with unique values on [0, 1-swl].
type GasOil struct {
	Swl   float64 // connate water saturation
	Sgcr  float64 // critical gas saturation
	Sorg  float64 // residual oil saturation after gas flooding
	H     float64 // saturation step size
	Tag   string  // description attached to output
	Table *tab.Table
}

// NewGasOil builds a gas-oil curve with a gas saturation grid from 0 to
// 1-swl in steps of (at most) h, with sgcr and 1-swl-sorg inserted. The
// normalized columns sgn and son are computed from the endpoints.
func NewGasOil(swl, sgcr, sorg, h float64) (*GasOil, error) {
	if h < 1.0/SWintegers || h > 1 {
		return nil, chk.Err("step size h=%g is out of range (1/%d, 1]", h, SWintegers)
	}
	if swl < 0 || swl >= 1 {
		return nil, chk.Err("swl=%g is out of range [0, 1)", swl)
	}
	if sorg < 0 || sorg >= 1 {
		return nil, chk.Err("sorg=%g is out of range [0, 1)", sorg)
	}
	sgmax := 1 - swl
	if sgcr < 0 {
		return nil, chk.Err("sgcr=%g cannot be negative", sgcr)
	}
	if sgcr >= sgmax-sorg {
		return nil, chk.Err("sgcr=%g must be smaller than 1-swl-sorg=%g", sgcr, sgmax-sorg)
	}

	o := &GasOil{Swl: swl, Sgcr: sgcr, Sorg: sorg, H: h}

	n := int(math.Ceil(sgmax/h)) + 1
	sg := utl.LinSpace(0, sgmax, n)
	sg = append(sg, sgcr, sgmax-sorg)
	sg = snapSorted(sg)

	nrows := len(sg)
	sgn := make([]float64, nrows)
	son := make([]float64, nrows)
	for i, s := range sg {
		sgn[i] = (s - sgcr) / (sgmax - sgcr - sorg)
		son[i] = (1 - s - swl - sorg) / (1 - swl - sorg)
	}

	o.Table = tab.New("sg", "sgn", "son", "krg", "krog")
	o.Table.SetCol("sg", sg)
	o.Table.SetCol("sgn", sgn)
	o.Table.SetCol("son", son)
	o.Table.SetCol("krg", make([]float64, nrows))
	o.Table.SetCol("krog", make([]float64, nrows))
	return o, nil
}

// SetKrg sets the krg column
func (o *GasOil) SetKrg(vals []float64) error { return o.Table.SetCol("krg", vals) }

// SetKrog sets the krog column
func (o *GasOil) SetKrog(vals []float64) error { return o.Table.SetCol("krog", vals) }

// SetPc sets the capillary pressure column
func (o *GasOil) SetPc(vals []float64) error { return o.Table.SetCol("pc", vals) }

// FillKrg fills krg by evaluating f on the normalized gas saturation,
// clamped to [0,1]
func (o *GasOil) FillKrg(f func(sgn float64) float64) {
	sgn := o.Table.Col("sgn")
	krg := o.Table.Col("krg")
	for i, v := range sgn {
		krg[i] = f(clamp01(v))
	}
}

// FillKrog fills krog by evaluating f on the normalized oil saturation,
// clamped to [0,1]
func (o *GasOil) FillKrog(f func(son float64) float64) {
	son := o.Table.Col("son")
	krog := o.Table.Col("krog")
	for i, v := range son {
		krog[i] = f(clamp01(v))
	}
}

// FillPc fills pc by evaluating f on the gas saturation
func (o *GasOil) FillPc(f func(sg float64) float64) {
	sg := o.Table.Col("sg")
	pc := make([]float64, len(sg))
	for i, s := range sg {
		pc[i] = f(s)
	}
	o.Table.SetCol("pc", pc)
}

// SetEndpointsLinearpartKrg overwrites the linear segment of krg above
// 1-swl-sorg: krgend there, rising linearly to krgmax at sg=1-swl. With no
// room for a linear segment (sorg approximately zero) krgend is used.
func (o *GasOil) SetEndpointsLinearpartKrg(krgend, krgmax float64) {
	sg := o.Table.Col("sg")
	krg := o.Table.Col("krg")
	sgmax := 1 - o.Swl
	for i, s := range sg {
		if s > sgmax-o.Sorg-tab.Epsilon {
			if o.Sorg > tab.Epsilon {
				krg[i] = krgend + (s-(sgmax-o.Sorg))/o.Sorg*(krgmax-krgend)
			} else {
				krg[i] = krgend
			}
		}
	}
}

// SetEndpointsLinearpartKrog anchors krog at kroend for sg=0 and zeroes it
// beyond 1-swl-sorg, consistent with the nonlinear segment in between
func (o *GasOil) SetEndpointsLinearpartKrog(kroend float64) {
	sg := o.Table.Col("sg")
	krog := o.Table.Col("krog")
	for i, s := range sg {
		if s > 1-o.Swl-o.Sorg+tab.Epsilon {
			krog[i] = 0
		}
	}
	krog[0] = kroend
}

// EstimateSorg estimates the residual oil saturation from the point where
// krg stops being linear in sg, scanning from sg=1-swl
func (o *GasOil) EstimateSorg() (float64, error) {
	x, err := tab.DiffJumpPoint(o.Table, "sg", "krg", "right")
	if err != nil {
		return 0, err
	}
	return 1 - o.Swl - x, nil
}

// EstimateSgcr estimates the critical gas saturation from the point where
// krg starts deviating from its initial linear (flat) segment
func (o *GasOil) EstimateSgcr() (float64, error) {
	return tab.DiffJumpPoint(o.Table, "sg", "krg", "left")
}

// Crosspoint returns the saturation where krg crosses krog, or -1
func (o *GasOil) Crosspoint() float64 {
	return tab.Crosspoint(o.Table, "sg", "krg", "krog")
}

// SGOF renders the gas-oil table as an Eclipse SGOF record: sg, krg, krog
// and pc at 7 digits, with monotonicity enforced per column. A zero pc
// column is used if pc has not been set. The keyword line is included when
// header is true.
func (o *GasOil) SGOF(header bool) (string, error) {
	sub, err := o.Table.Select("sg", "krg", "krog")
	if err != nil {
		return "", err
	}
	if o.Table.HasCol("pc") {
		pc := o.Table.Col("pc")
		vals := make([]float64, len(pc))
		copy(vals, pc)
		sub.SetCol("pc", vals)
	} else {
		sub.SetCol("pc", make([]float64, o.Table.Nrows()))
	}
	specs := map[string]mono.Spec{
		"sg":   {Sign: 1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true},
		"krg":  {Sign: 1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true},
		"krog": {Sign: -1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true},
		"pc":   {Sign: 1, AllowZero: true},
	}
	body, err := mono.Format(sub, specs, printDigits, roundLevel, false)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if header {
		buf.WriteString("SGOF\n")
	}
	buf.WriteString(out.Comment(o.Tag, "-- "))
	buf.WriteString("-- sg krg krog pc\n")
	buf.WriteString(body)
	buf.WriteString("/\n")
	return buf.String(), nil
}
