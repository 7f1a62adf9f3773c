// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_comment01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comment01. line prefixing")

	chk.String(tst, Comment("base case", "-- "), "-- base case\n")
	chk.String(tst, Comment("first\nsecond", "-- "), "-- first\n-- second\n")

	// inner whitespace is trimmed per line
	chk.String(tst, Comment("  padded  \n\tindented", "# "), "# padded\n# indented\n")

	// blank input keeps a placeholder comment line
	chk.String(tst, Comment("", "-- "), "-- \n")
	chk.String(tst, Comment("   \n  ", "-- "), "-- \n")
}
