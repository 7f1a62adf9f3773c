// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
)

// Save writes text to dirout/fname, creating the directory if necessary
func Save(dirout, fname, text string) {
	io.WriteStringToFileD(dirout, fname, text)
}
