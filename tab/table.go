// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tab implements ordered numeric tables for saturation functions,
// with rows indexed by a sorted independent saturation column, plus the
// geometric queries (crosspoint, jump point) defined over such tables
package tab

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Epsilon guards comparisons of rounded saturation values against
// representation errors. It must be smaller than any printable increment.
const Epsilon = 1e-8

// Warnf is the sink for warning diagnostics. Replace it to capture warnings.
var Warnf = func(msg string, prm ...interface{}) {
	io.Pfyel("warning: "+msg+"\n", prm...)
}

// Table holds named float64 columns of equal length. The first key is the
// independent column: its values are expected sorted ascending and unique.
type Table struct {
	keys []string             // column names, in insertion order
	cols map[string][]float64 // name => values
}

// New returns a new table with empty columns named by keys
func New(keys ...string) (o *Table) {
	o = new(Table)
	o.keys = make([]string, len(keys))
	copy(o.keys, keys)
	o.cols = make(map[string][]float64)
	for _, key := range keys {
		o.cols[key] = nil
	}
	return
}

// Keys returns the column names in order
func (o *Table) Keys() []string {
	res := make([]string, len(o.keys))
	copy(res, o.keys)
	return res
}

// Nrows returns the number of rows, given by the first column
func (o *Table) Nrows() int {
	if len(o.keys) == 0 {
		return 0
	}
	return len(o.cols[o.keys[0]])
}

// HasCol tells whether a column exists
func (o *Table) HasCol(name string) bool {
	_, ok := o.cols[name]
	return ok
}

// Col returns a column. It panics if the column does not exist.
// The slice is a view into the table; mutating it mutates the table.
func (o *Table) Col(name string) []float64 {
	col, ok := o.cols[name]
	if !ok {
		chk.Panic("column %q does not exist in table", name)
	}
	return col
}

// SetCol sets the values of a column, appending a new key if necessary
func (o *Table) SetCol(name string, vals []float64) error {
	if n := o.Nrows(); n > 0 && len(vals) != n {
		return chk.Err("column %q has wrong length: %d != %d rows", name, len(vals), n)
	}
	if !o.HasCol(name) {
		o.keys = append(o.keys, name)
	}
	o.cols[name] = vals
	return nil
}

// Select returns a new table holding deep copies of the given columns
func (o *Table) Select(keys ...string) (*Table, error) {
	res := New(keys...)
	for _, key := range keys {
		if !o.HasCol(key) {
			return nil, chk.Err("column %q does not exist in table", key)
		}
		res.cols[key] = copyVals(o.cols[key])
	}
	return res, nil
}

// Copy returns a deep copy
func (o *Table) Copy() (res *Table) {
	res = New(o.keys...)
	for _, key := range o.keys {
		res.cols[key] = copyVals(o.cols[key])
	}
	return
}

// Round returns a deep copy with all values rounded to the given number of
// decimal digits
func (o *Table) Round(digits int) (res *Table) {
	res = o.Copy()
	for _, key := range res.keys {
		col := res.cols[key]
		for i, v := range col {
			col[i] = Roundn(v, digits)
		}
	}
	return
}

// Min returns the minimum value of a column
func (o *Table) Min(name string) float64 {
	col := o.Col(name)
	if len(col) == 0 {
		chk.Panic("cannot compute min of empty column %q", name)
	}
	res := col[0]
	for _, v := range col {
		res = math.Min(res, v)
	}
	return res
}

// Max returns the maximum value of a column
func (o *Table) Max(name string) float64 {
	col := o.Col(name)
	if len(col) == 0 {
		chk.Panic("cannot compute max of empty column %q", name)
	}
	res := col[0]
	for _, v := range col {
		res = math.Max(res, v)
	}
	return res
}

// MaxAbs returns the maximum absolute value of a column
func (o *Table) MaxAbs(name string) (res float64) {
	for _, v := range o.Col(name) {
		res = math.Max(res, math.Abs(v))
	}
	return
}

// Roundn rounds v to n decimal digits
func Roundn(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}

// auxiliary
func copyVals(vals []float64) []float64 {
	res := make([]float64, len(vals))
	copy(res, vals)
	return res
}
