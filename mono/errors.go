// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mono

// ConfigurationError indicates a malformed monotonicity spec: unknown keys,
// missing or out-of-range sign, or a spec naming a non-existent column.
type ConfigurationError struct {
	Msg string
}

func (e ConfigurationError) Error() string { return e.Msg }

// RangeError indicates a value violating a declared lower or upper bound
type RangeError struct {
	Col string
	Msg string
}

func (e RangeError) Error() string { return e.Msg }

// MonotonicityError indicates input too far from monotone to be corrected
type MonotonicityError struct {
	Col string
	Msg string
}

func (e MonotonicityError) Error() string { return e.Msg }

// ConvergenceError indicates that the iteration budget of the fixer was
// exceeded; this signals a bug or pathological input and is fatal
type ConvergenceError struct {
	Col        string
	Iterations int
	Msg        string
}

func (e ConvergenceError) Error() string { return e.Msg }

// ValidationError indicates that a column failed the final strict
// monotonicity check after correction
type ValidationError struct {
	Col string
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }
