// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mono

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/olelod/pyscal/tab"
)

// Format renders a table as whitespace-delimited text with fixed-precision
// floating point formatting. If specs is non-nil, FixTable is applied first
// so that the printed columns honour their monotonicity directives. The
// table is rounded to roundlevel decimals prior to printing with digits
// decimals; roundlevel should be at least digits+1 for the monotonicity
// guarantee to survive truncation. Output is deterministic and always ends
// with a newline. No row index is printed.
func Format(o *tab.Table, specs map[string]Spec, digits, roundlevel int, header bool) (string, error) {
	res := o
	if specs != nil {
		fixed, err := FixTable(o, specs, digits)
		if err != nil {
			return "", err
		}
		res = fixed
	}
	res = res.Round(roundlevel)

	keys := res.Keys()
	cols := make([][]float64, len(keys))
	for j, key := range keys {
		cols[j] = res.Col(key)
	}

	var buf bytes.Buffer
	if header {
		for j, key := range keys {
			if j > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(key)
		}
		buf.WriteString("\n")
	}
	numfmt := io.Sf("%%1.%df", digits)
	for i := 0; i < res.Nrows(); i++ {
		for j := range keys {
			if j > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(io.Sf(numfmt, cols[j][i]))
		}
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
