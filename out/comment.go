// Copyright 2020 Ole Lødøen. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out handles text output of saturation-function tables: comment
// formatting and writing of include files
package out

import (
	"strings"
)

// Comment prepends prefix to every line of multiline, preserving newlines,
// and guarantees a trailing newline. Empty or blank input yields a single
// placeholder comment line so that readers can see something was intended.
func Comment(multiline, prefix string) string {
	if strings.TrimSpace(multiline) == "" {
		return prefix + "\n"
	}
	lines := strings.Split(multiline, "\n")
	res := make([]string, 0, len(lines))
	for _, line := range lines {
		res = append(res, prefix+strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(res, "\n")) + "\n"
}
