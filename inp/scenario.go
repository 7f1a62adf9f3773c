// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yml) scenario file:
// curve definitions, interpolation requests and output settings
package inp

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"

	"github.com/olelod/pyscal/curve"
	"github.com/olelod/pyscal/interp"
	"github.com/olelod/pyscal/mono"
)

// Curve defines one saturation-function curve. Endpoints parameterize the
// grid; tabulated sat/kr1/kr2/pc data, if given, are resampled onto it.
// For a water-oil curve kr1 is krw and kr2 is krow; for a gas-oil curve
// kr1 is krg and kr2 is krog.
type Curve struct {
	Name string  `yaml:"name"` // unique identifier within the scenario
	Type string  `yaml:"type"` // "wateroil" or "gasoil"
	Tag  string  `yaml:"tag"`  // description attached to output
	Swl  float64 `yaml:"swl"`  // connate water saturation
	Swcr float64 `yaml:"swcr"` // critical water saturation (wateroil)
	Sorw float64 `yaml:"sorw"` // residual oil saturation (wateroil)
	Sgcr float64 `yaml:"sgcr"` // critical gas saturation (gasoil)
	Sorg float64 `yaml:"sorg"` // residual oil saturation (gasoil)
	H    float64 `yaml:"h"`    // saturation step size; default from Output

	Sat []float64 `yaml:"sat"` // tabulated saturation values (sw or sg)
	Kr1 []float64 `yaml:"kr1"` // krw or krg at sat
	Kr2 []float64 `yaml:"kr2"` // krow or krog at sat
	Pc  []float64 `yaml:"pc"`  // capillary pressure at sat
}

// Interp defines one interpolation between two curves of the same type
type Interp struct {
	Name  string  `yaml:"name"`  // identifier of the result
	Low   string  `yaml:"low"`   // name of the low curve (parameter 0)
	High  string  `yaml:"high"`  // name of the high curve (parameter 1)
	Param float64 `yaml:"param"` // interpolation parameter in [0,1]
	H     float64 `yaml:"h"`     // step size of the result; default from Output
	Tag   *string `yaml:"tag"`   // nil: synthesize; empty: suppress
}

// Output holds output settings
type Output struct {
	Dirout     string `yaml:"dirout"`     // directory for output; e.g. /tmp/pyscal
	Digits     int    `yaml:"digits"`     // printed decimals; default 7
	Roundlevel int    `yaml:"roundlevel"` // rounding before print; default 9
	Header     bool   `yaml:"header"`     // include keyword lines
}

// Scenario holds the full input data
type Scenario struct {
	Desc           string                            `yaml:"desc"`
	Curves         []*Curve                          `yaml:"curves"`
	Interpolations []*Interp                         `yaml:"interpolations"`
	Output         Output                            `yaml:"output"`
	Monotonicity   map[string]map[string]interface{} `yaml:"monotonicity"` // per-column overrides
}

// Read reads and validates a scenario from a YAML file
func Read(fnamepath string) (*Scenario, error) {
	buf, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read scenario file %q: %v", fnamepath, err)
	}
	o := new(Scenario)
	if err := yaml.Unmarshal(buf, o); err != nil {
		return nil, chk.Err("cannot parse scenario file %q: %v", fnamepath, err)
	}
	o.setDefaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// setDefaults fills unset output settings and step sizes
func (o *Scenario) setDefaults() {
	if o.Output.Dirout == "" {
		o.Output.Dirout = "/tmp/pyscal"
	}
	if o.Output.Digits == 0 {
		o.Output.Digits = 7
	}
	if o.Output.Roundlevel == 0 {
		o.Output.Roundlevel = o.Output.Digits + 2
	}
	for _, c := range o.Curves {
		if c.H == 0 {
			c.H = 0.01
		}
	}
	for _, itp := range o.Interpolations {
		if itp.H == 0 {
			itp.H = 0.01
		}
	}
}

// Validate checks the consistency of the scenario
func (o *Scenario) Validate() error {
	if len(o.Curves) == 0 {
		return chk.Err("scenario defines no curves")
	}
	types := make(map[string]string)
	for _, c := range o.Curves {
		if c.Name == "" {
			return chk.Err("curve with empty name in scenario")
		}
		if _, ok := types[c.Name]; ok {
			return chk.Err("duplicated curve name %q", c.Name)
		}
		if c.Type != "wateroil" && c.Type != "gasoil" {
			return chk.Err("curve %q: type must be \"wateroil\" or \"gasoil\"; %q is invalid", c.Name, c.Type)
		}
		types[c.Name] = c.Type
		n := len(c.Sat)
		if len(c.Kr1) != n || len(c.Kr2) != n {
			return chk.Err("curve %q: sat, kr1 and kr2 must have equal length", c.Name)
		}
		if len(c.Pc) > 0 && len(c.Pc) != n {
			return chk.Err("curve %q: pc must have the same length as sat", c.Name)
		}
	}
	for _, itp := range o.Interpolations {
		tlow, ok := types[itp.Low]
		if !ok {
			return chk.Err("interpolation %q: unknown low curve %q", itp.Name, itp.Low)
		}
		thigh, ok := types[itp.High]
		if !ok {
			return chk.Err("interpolation %q: unknown high curve %q", itp.Name, itp.High)
		}
		if tlow != thigh {
			return chk.Err("interpolation %q: cannot mix %s and %s curves", itp.Name, tlow, thigh)
		}
		if itp.Param < 0 || itp.Param > 1 {
			return chk.Err("interpolation %q: parameter %g is outside [0,1]", itp.Name, itp.Param)
		}
	}
	if _, err := o.Specs(); err != nil {
		return err
	}
	return nil
}

// Specs converts the monotonicity overrides to typed specs
func (o *Scenario) Specs() (map[string]mono.Spec, error) {
	if o.Monotonicity == nil {
		return nil, nil
	}
	res := make(map[string]mono.Spec)
	for col, m := range o.Monotonicity {
		spec, err := mono.SpecFromMap(m)
		if err != nil {
			return nil, chk.Err("monotonicity override for column %q: %v", col, err)
		}
		res[col] = spec
	}
	return res, nil
}

// BuildWaterOil builds a water-oil curve from the definition, resampling
// tabulated data onto the curve's saturation grid
func (o *Curve) BuildWaterOil() (*curve.WaterOil, error) {
	if o.Type != "wateroil" {
		return nil, chk.Err("curve %q is not a water-oil curve", o.Name)
	}
	res, err := curve.NewWaterOil(o.Swl, o.Swcr, o.Sorw, o.H)
	if err != nil {
		return nil, chk.Err("curve %q: %v", o.Name, err)
	}
	res.Tag = o.Tag
	if len(o.Sat) > 0 {
		resample(res.Table.Col("sw"), o.Sat, o.Kr1, res.Table.Col("krw"))
		resample(res.Table.Col("sw"), o.Sat, o.Kr2, res.Table.Col("krow"))
		if len(o.Pc) > 0 {
			pc := make([]float64, res.Table.Nrows())
			resample(res.Table.Col("sw"), o.Sat, o.Pc, pc)
			res.SetPc(pc)
		}
	}
	return res, nil
}

// BuildGasOil builds a gas-oil curve from the definition, resampling
// tabulated data onto the curve's saturation grid
func (o *Curve) BuildGasOil() (*curve.GasOil, error) {
	if o.Type != "gasoil" {
		return nil, chk.Err("curve %q is not a gas-oil curve", o.Name)
	}
	res, err := curve.NewGasOil(o.Swl, o.Sgcr, o.Sorg, o.H)
	if err != nil {
		return nil, chk.Err("curve %q: %v", o.Name, err)
	}
	res.Tag = o.Tag
	if len(o.Sat) > 0 {
		resample(res.Table.Col("sg"), o.Sat, o.Kr1, res.Table.Col("krg"))
		resample(res.Table.Col("sg"), o.Sat, o.Kr2, res.Table.Col("krog"))
		if len(o.Pc) > 0 {
			pc := make([]float64, res.Table.Nrows())
			resample(res.Table.Col("sg"), o.Sat, o.Pc, pc)
			res.SetPc(pc)
		}
	}
	return res, nil
}

// resample fills dst with fp(xp) evaluated at grid, extrapolating flat
func resample(grid, xp, fp, dst []float64) {
	f := interp.Interp1d(xp, fp, fp[0], fp[len(fp)-1])
	for i, x := range grid {
		dst[i] = f(x)
	}
}
