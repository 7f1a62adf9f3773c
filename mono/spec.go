// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mono enforces monotonicity in numeric table columns: validation
// against bounds, non-strict correction by accumulation and clipping, and an
// iterative fixer guaranteeing strict monotonicity at a given print precision
package mono

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cast"
)

// Warnf is the sink for warning diagnostics. Replace it to capture warnings.
var Warnf = func(msg string, prm ...interface{}) {
	io.Pfyel("warning: "+msg+"\n", prm...)
}

// Spec directs the monotonicity treatment of one column
type Spec struct {
	Sign      int     // +1: increasing, -1: decreasing
	Lower     float64 // lower bound; active if HasLower
	Upper     float64 // upper bound; active if HasUpper
	HasLower  bool    // Lower is set
	HasUpper  bool    // Upper is set
	AllowZero bool    // an all-zero column is exempt from strict monotonicity
}

// Validate checks sign and bound consistency
func (o Spec) Validate() error {
	if o.Sign != 1 && o.Sign != -1 {
		return ConfigurationError{Msg: io.Sf("monotonicity sign must be -1 or +1; got %d", o.Sign)}
	}
	if o.HasLower && o.HasUpper && o.Lower > o.Upper {
		return ConfigurationError{Msg: io.Sf("lower bound %g is above upper bound %g", o.Lower, o.Upper)}
	}
	return nil
}

// SpecFromMap builds a Spec from an untyped map, as handed over by YAML
// input or callers keeping loosely-typed directives. Recognised keys are
// "sign" (required; -1 or +1, given as number or numeric string), "upper",
// "lower" and "allowzero".
func SpecFromMap(m map[string]interface{}) (res Spec, err error) {
	signSeen := false
	for key, val := range m {
		switch key {
		case "sign":
			sign, e := cast.ToFloat64E(val)
			if e != nil {
				return res, ConfigurationError{Msg: io.Sf("monotonicity sign %v is not valid", val)}
			}
			if math.Abs(sign) > 1 || sign == 0 {
				return res, ConfigurationError{Msg: io.Sf("monotonicity sign must be -1 or +1; got %v", val)}
			}
			if sign > 0 {
				res.Sign = 1
			} else {
				res.Sign = -1
			}
			signSeen = true
		case "upper":
			res.Upper, err = cast.ToFloat64E(val)
			if err != nil {
				return res, ConfigurationError{Msg: io.Sf("upper bound %v is not a number", val)}
			}
			res.HasUpper = true
		case "lower":
			res.Lower, err = cast.ToFloat64E(val)
			if err != nil {
				return res, ConfigurationError{Msg: io.Sf("lower bound %v is not a number", val)}
			}
			res.HasLower = true
		case "allowzero":
			res.AllowZero, err = cast.ToBoolE(val)
			if err != nil {
				return res, ConfigurationError{Msg: io.Sf("allowzero must be true or false; got %v", val)}
			}
		default:
			return res, ConfigurationError{Msg: io.Sf("unknown key %q in monotonicity spec", key)}
		}
	}
	if !signSeen {
		return res, ConfigurationError{Msg: "monotonicity sign not specified"}
	}
	return res, res.Validate()
}
