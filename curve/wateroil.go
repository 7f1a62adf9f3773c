// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package curve implements the water-oil and gas-oil saturation-function
// objects: endpoint-parameterized saturation grids with relative
// permeability and capillary pressure columns, and their text output
package curve

import (
	"bytes"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/olelod/pyscal/mono"
	"github.com/olelod/pyscal/out"
	"github.com/olelod/pyscal/tab"
)

// SWintegers defines the saturation lattice 1/SWintegers onto which grid
// values are snapped, so that nearly-identical saturations deduplicate
const SWintegers = 10000

// number of digits in printed saturation tables; roundlevel is one level
// finer than digits+1, see the mono package
const (
	printDigits = 7
	roundLevel  = 9
)

// WaterOil holds a water-oil saturation-function table with its scalar
// endpoints. The table columns are sw, swn, son, krw, krow and optionally
// pc; sw is sorted ascending with unique values.
type WaterOil struct {
	Swl   float64 // connate water saturation
	Swcr  float64 // critical water saturation
	Sorw  float64 // residual oil saturation after water flooding
	H     float64 // saturation step size
	Tag   string  // description attached to output
	Table *tab.Table
}

// NewWaterOil builds a water-oil curve with a saturation grid from swl to 1
// in steps of (at most) h, with swcr and 1-sorw inserted. The normalized
// columns swn and son are computed from the endpoints.
func NewWaterOil(swl, swcr, sorw, h float64) (*WaterOil, error) {
	if h < 1.0/SWintegers || h > 1 {
		return nil, chk.Err("step size h=%g is out of range (1/%d, 1]", h, SWintegers)
	}
	if swl < 0 || swl >= 1 {
		return nil, chk.Err("swl=%g is out of range [0, 1)", swl)
	}
	if sorw < 0 || sorw >= 1 {
		return nil, chk.Err("sorw=%g is out of range [0, 1)", sorw)
	}
	if swcr < swl {
		return nil, chk.Err("swcr=%g cannot be smaller than swl=%g", swcr, swl)
	}
	if swcr >= 1-sorw {
		return nil, chk.Err("swcr=%g must be smaller than 1-sorw=%g", swcr, 1-sorw)
	}

	o := &WaterOil{Swl: swl, Swcr: swcr, Sorw: sorw, H: h}

	n := int(math.Ceil((1-swl)/h)) + 1
	sw := utl.LinSpace(swl, 1, n)
	sw = append(sw, swcr, 1-sorw)
	sw = snapSorted(sw)

	nrows := len(sw)
	swn := make([]float64, nrows)
	son := make([]float64, nrows)
	for i, s := range sw {
		swn[i] = (s - swcr) / (1 - swcr - sorw)
		son[i] = (1 - s - sorw) / (1 - swl - sorw)
	}

	o.Table = tab.New("sw", "swn", "son", "krw", "krow")
	o.Table.SetCol("sw", sw)
	o.Table.SetCol("swn", swn)
	o.Table.SetCol("son", son)
	o.Table.SetCol("krw", make([]float64, nrows))
	o.Table.SetCol("krow", make([]float64, nrows))
	return o, nil
}

// SetKrw sets the krw column
func (o *WaterOil) SetKrw(vals []float64) error { return o.Table.SetCol("krw", vals) }

// SetKrow sets the krow column
func (o *WaterOil) SetKrow(vals []float64) error { return o.Table.SetCol("krow", vals) }

// SetPc sets the capillary pressure column
func (o *WaterOil) SetPc(vals []float64) error { return o.Table.SetCol("pc", vals) }

// FillKrw fills krw by evaluating f on the normalized water saturation,
// clamped to [0,1]
func (o *WaterOil) FillKrw(f func(swn float64) float64) {
	swn := o.Table.Col("swn")
	krw := o.Table.Col("krw")
	for i, v := range swn {
		krw[i] = f(clamp01(v))
	}
}

// FillKrow fills krow by evaluating f on the normalized oil saturation,
// clamped to [0,1]
func (o *WaterOil) FillKrow(f func(son float64) float64) {
	son := o.Table.Col("son")
	krow := o.Table.Col("krow")
	for i, v := range son {
		krow[i] = f(clamp01(v))
	}
}

// FillPc fills pc by evaluating f on the water saturation
func (o *WaterOil) FillPc(f func(sw float64) float64) {
	sw := o.Table.Col("sw")
	pc := make([]float64, len(sw))
	for i, s := range sw {
		pc[i] = f(s)
	}
	o.Table.SetCol("pc", pc)
}

// SetEndpointsLinearpartKrw overwrites the linear segment of krw above
// 1-sorw: krwend at sw=1-sorw rising linearly to krwmax at sw=1. With no
// room for a linear segment (sorw approximately zero) krwend is used.
func (o *WaterOil) SetEndpointsLinearpartKrw(krwend, krwmax float64) {
	sw := o.Table.Col("sw")
	krw := o.Table.Col("krw")
	for i, s := range sw {
		if s > 1-o.Sorw-tab.Epsilon {
			if o.Sorw > tab.Epsilon {
				krw[i] = krwend + (s-(1-o.Sorw))/o.Sorw*(krwmax-krwend)
			} else {
				krw[i] = krwend
			}
		}
	}
}

// SetEndpointsLinearpartKrow anchors krow at kroend for sw=swl and zeroes
// it beyond 1-sorw, consistent with the nonlinear segment in between
func (o *WaterOil) SetEndpointsLinearpartKrow(kroend float64) {
	sw := o.Table.Col("sw")
	krow := o.Table.Col("krow")
	for i, s := range sw {
		if s > 1-o.Sorw+tab.Epsilon {
			krow[i] = 0
		}
	}
	krow[0] = kroend
}

// EstimateSorw estimates the residual oil saturation from the point where
// krw stops being linear in sw, scanning from sw=1
func (o *WaterOil) EstimateSorw() (float64, error) {
	x, err := tab.DiffJumpPoint(o.Table, "sw", "krw", "right")
	if err != nil {
		return 0, err
	}
	return 1 - x, nil
}

// EstimateSwcr estimates the critical water saturation from the point where
// krw starts deviating from its initial linear (flat) segment
func (o *WaterOil) EstimateSwcr() (float64, error) {
	return tab.DiffJumpPoint(o.Table, "sw", "krw", "left")
}

// Crosspoint returns the saturation where krw crosses krow, or -1
func (o *WaterOil) Crosspoint() float64 {
	return tab.Crosspoint(o.Table, "sw", "krw", "krow")
}

// SWOF renders the water-oil table as an Eclipse SWOF record: sw, krw,
// krow and pc at 7 digits, with monotonicity enforced per column. A zero pc
// column is used if pc has not been set. The keyword line is included when
// header is true.
func (o *WaterOil) SWOF(header bool) (string, error) {
	sub, err := o.Table.Select("sw", "krw", "krow")
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
		"sw":   {Sign: 1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true},
		"krw":  {Sign: 1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true},
		"krow": {Sign: -1, Lower: 0, HasLower: true, Upper: 1, HasUpper: true},
		"pc":   {Sign: -1, AllowZero: true},
	}
	body, err := mono.Format(sub, specs, printDigits, roundLevel, false)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if header {
		buf.WriteString("SWOF\n")
	}
	buf.WriteString(out.Comment(o.Tag, "-- "))
	buf.WriteString("-- sw krw krow pc\n")
	buf.WriteString(body)
	buf.WriteString("/\n")
	return buf.String(), nil
}

// snapSorted snaps saturations onto the 1/SWintegers lattice and returns
// them sorted with duplicates removed
func snapSorted(vals []float64) []float64 {
	for i, v := range vals {
		vals[i] = math.Round(v*SWintegers) / SWintegers
	}
	sort.Float64s(vals)
	res := vals[:1]
	for _, v := range vals[1:] {
		if v != res[len(res)-1] {
			res = append(res, v)
		}
	}
	return res
}

// auxiliary
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
