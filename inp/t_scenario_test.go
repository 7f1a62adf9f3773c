// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_scenario01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario01. reading a scenario file")

	scn, err := Read("data/scenario1.yml")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.IntAssert(len(scn.Curves), 3)
	chk.IntAssert(len(scn.Interpolations), 1)
	chk.String(tst, scn.Curves[0].Name, "pess")
	chk.String(tst, scn.Curves[0].Type, "wateroil")
	chk.String(tst, scn.Curves[0].Tag, "pessimistic")
	chk.Float64(tst, "swcr", 1e-17, scn.Curves[0].Swcr, 0.2)
	chk.String(tst, scn.Curves[2].Type, "gasoil")

	// defaults: unset step size and roundlevel are filled in
	chk.Float64(tst, "gasoil h", 1e-17, scn.Curves[2].H, 0.01)
	chk.IntAssert(scn.Output.Roundlevel, 9)
	chk.String(tst, scn.Output.Dirout, "/tmp/pyscal")

	// interpolation without an explicit tag synthesizes one later
	if scn.Interpolations[0].Tag != nil {
		tst.Errorf("absent tag must decode as nil\n")
		return
	}

	// monotonicity overrides become typed specs
	specs, err := scn.Specs()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	spec, ok := specs["krw"]
	if !ok {
		tst.Errorf("missing krw override\n")
		return
	}
	chk.IntAssert(spec.Sign, 1)
	if !spec.HasLower || !spec.HasUpper {
		tst.Errorf("bounds not set on krw override\n")
		return
	}
}

func Test_scenario02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario02. building curves with resampled data")

	scn, err := Read("data/scenario1.yml")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	wo, err := scn.Curves[0].BuildWaterOil()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, wo.Tag, "pessimistic")

	// tabulated points land exactly on matching grid nodes and linear
	// segments interpolate exactly
	sw := wo.Table.Col("sw")
	krw := wo.Table.Col("krw")
	krow := wo.Table.Col("krow")
	pc := wo.Table.Col("pc")
	at := func(x float64) int {
		for i, s := range sw {
			if s == x {
				return i
			}
		}
		tst.Fatalf("grid node %v not found\n", x)
		return -1
	}
	chk.Float64(tst, "krw at 0.7", 1e-15, krw[at(0.7)], 0.6)
	chk.Float64(tst, "krw at 0.45", 1e-15, krw[at(0.45)], 0.3)
	chk.Float64(tst, "krw at 1.0", 1e-15, krw[at(1.0)], 1.0)
	chk.Float64(tst, "krow at 0.1", 1e-15, krow[at(0.1)], 0.9)
	chk.Float64(tst, "pc at 1.0", 1e-15, pc[at(1.0)], 0.0)
	chk.Float64(tst, "pc at 0.1", 1e-15, pc[at(0.1)], 3.0)

	g, err := scn.Curves[2].BuildGasOil()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	sg := g.Table.Col("sg")
	krg := g.Table.Col("krg")
	chk.Float64(tst, "sg starts at 0", 1e-17, sg[0], 0.0)
	chk.Float64(tst, "krg at sg=0", 1e-17, krg[0], 0.0)

	// type mismatch is refused
	if _, err := scn.Curves[2].BuildWaterOil(); err == nil {
		tst.Errorf("building a water-oil curve from a gasoil entry must fail\n")
		return
	}
}

func Test_scenario03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenario03. validation failures")

	if _, err := Read("data/nosuchfile.yml"); err == nil {
		tst.Errorf("missing file must fail\n")
		return
	}

	base := func() *Scenario {
		return &Scenario{
			Curves: []*Curve{
				{Name: "a", Type: "wateroil"},
				{Name: "b", Type: "gasoil"},
			},
		}
	}

	scn := &Scenario{}
	if err := scn.Validate(); err == nil {
		tst.Errorf("scenario without curves must fail\n")
		return
	}

	scn = base()
	scn.Curves[1].Name = "a"
	if err := scn.Validate(); err == nil {
		tst.Errorf("duplicated names must fail\n")
		return
	}

	scn = base()
	scn.Curves[0].Type = "oilwater"
	if err := scn.Validate(); err == nil {
		tst.Errorf("unknown type must fail\n")
		return
	}

	scn = base()
	scn.Curves[0].Sat = []float64{0, 1}
	scn.Curves[0].Kr1 = []float64{0}
	scn.Curves[0].Kr2 = []float64{1, 0}
	if err := scn.Validate(); err == nil {
		tst.Errorf("mismatched column lengths must fail\n")
		return
	}

	scn = base()
	scn.Interpolations = []*Interp{{Name: "x", Low: "a", High: "nosuch", Param: 0.5}}
	if err := scn.Validate(); err == nil {
		tst.Errorf("unknown interpolation reference must fail\n")
		return
	}

	scn = base()
	scn.Interpolations = []*Interp{{Name: "x", Low: "a", High: "b", Param: 0.5}}
	if err := scn.Validate(); err == nil {
		tst.Errorf("mixing curve types must fail\n")
		return
	}

	scn = base()
	scn.Interpolations = []*Interp{{Name: "x", Low: "a", High: "a", Param: 1.5}}
	if err := scn.Validate(); err == nil {
		tst.Errorf("parameter outside [0,1] must fail\n")
		return
	}

	scn = base()
	scn.Monotonicity = map[string]map[string]interface{}{
		"krw": {"sign": 3},
	}
	if err := scn.Validate(); err == nil {
		tst.Errorf("bad monotonicity override must fail\n")
		return
	}
}
