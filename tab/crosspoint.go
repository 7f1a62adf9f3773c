// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

// Crosspoint locates the saturation value at which the kr1col and kr2col
// columns cross, by linear interpolation of their difference to zero.
// If the difference never crosses zero within the table, the sentinel -1 is
// returned and a warning is emitted through Warnf.
func Crosspoint(o *Table, satcol, kr1col, kr2col string) float64 {
	sat := o.Col(satcol)
	kr1 := o.Col(kr1col)
	kr2 := o.Col(kr2col)
	for i := 1; i < len(sat); i++ {
		da := kr1[i-1] - kr2[i-1]
		db := kr1[i] - kr2[i]
		if da == 0 {
			return sat[i-1]
		}
		if da*db < 0 {
			// linear interpolation of the difference to zero
			return sat[i-1] + (sat[i]-sat[i-1])*da/(da-db)
		}
	}
	n := len(sat)
	if n > 0 && kr1[n-1] == kr2[n-1] {
		return sat[n-1]
	}
	Warnf("could not compute crosspoint of %q and %q", kr1col, kr2col)
	return -1
}
