// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/olelod/pyscal/curve"
	"github.com/olelod/pyscal/inp"
	"github.com/olelod/pyscal/interp"
	"github.com/olelod/pyscal/mono"
	"github.com/olelod/pyscal/out"
	"github.com/olelod/pyscal/tab"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "scenario", ".yml", true)
	verbose := io.ArgToBool(1, true)
	chk.Verbose = verbose

	// message
	if verbose {
		io.PfWhite("\nPyscal -- saturation function tables\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read scenario
	scn, err := inp.Read(fnamepath)
	if err != nil {
		chk.Panic("cannot read scenario:\n%v", err)
	}
	specs, err := scn.Specs()
	if err != nil {
		chk.Panic("invalid monotonicity overrides:\n%v", err)
	}

	// build curves
	wo := make(map[string]*curve.WaterOil)
	go_ := make(map[string]*curve.GasOil)
	for _, cdef := range scn.Curves {
		switch cdef.Type {
		case "wateroil":
			c, err := cdef.BuildWaterOil()
			if err != nil {
				chk.Panic("cannot build curve:\n%v", err)
			}
			wo[cdef.Name] = c
		case "gasoil":
			c, err := cdef.BuildGasOil()
			if err != nil {
				chk.Panic("cannot build curve:\n%v", err)
			}
			go_[cdef.Name] = c
		}
		if verbose {
			io.Pf("curve %q (%s) built\n", cdef.Name, cdef.Type)
		}
	}

	// run interpolations
	for _, itp := range scn.Interpolations {
		if low, ok := wo[itp.Low]; ok {
			var c *curve.WaterOil
			if itp.Tag != nil {
				c, err = interp.WaterOil(low, wo[itp.High], itp.Param, itp.H, *itp.Tag)
			} else {
				c, err = interp.WaterOil(low, wo[itp.High], itp.Param, itp.H)
			}
			if err != nil {
				chk.Panic("interpolation %q failed:\n%v", itp.Name, err)
			}
			wo[itp.Name] = c
		} else {
			var c *curve.GasOil
			if itp.Tag != nil {
				c, err = interp.GasOil(go_[itp.Low], go_[itp.High], itp.Param, itp.H, *itp.Tag)
			} else {
				c, err = interp.GasOil(go_[itp.Low], go_[itp.High], itp.Param, itp.H)
			}
			if err != nil {
				chk.Panic("interpolation %q failed:\n%v", itp.Name, err)
			}
			go_[itp.Name] = c
		}
		if verbose {
			io.Pf("interpolation %q done\n", itp.Name)
		}
	}

	// write output: the SWOF/SGOF records, plus a plain table per curve
	// when monotonicity overrides are given
	for name, c := range wo {
		text, err := c.SWOF(scn.Output.Header)
		if err != nil {
			chk.Panic("cannot render %q:\n%v", name, err)
		}
		save(scn.Output.Dirout, name+".inc", text)
		writeOverride(scn, specs, name, c.Table)
	}
	for name, c := range go_ {
		text, err := c.SGOF(scn.Output.Header)
		if err != nil {
			chk.Panic("cannot render %q:\n%v", name, err)
		}
		save(scn.Output.Dirout, name+".inc", text)
		writeOverride(scn, specs, name, c.Table)
	}
	if verbose {
		io.Pf("output written to %s\n", scn.Output.Dirout)
	}
}

// writeOverride renders a curve's table with the scenario's own
// monotonicity directives, restricted to the columns present
func writeOverride(scn *inp.Scenario, specs map[string]mono.Spec, name string, t *tab.Table) {
	if specs == nil {
		return
	}
	sub := make(map[string]mono.Spec)
	for col, spec := range specs {
		if t.HasCol(col) {
			sub[col] = spec
		}
	}
	if len(sub) == 0 {
		return
	}
	text, err := mono.Format(t, sub, scn.Output.Digits, scn.Output.Roundlevel, true)
	if err != nil {
		chk.Panic("cannot render table for %q:\n%v", name, err)
	}
	save(scn.Output.Dirout, name+".txt", text)
}

// save may be swapped out in tests
var save = out.Save
