// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"cloudeng.io/algo/lcs/textdiff"
)

// compareText reports a line oriented diff between got and want.
func compareText(t *testing.T, got, want string) {
	t.Helper()
	diff := textdiff.LinesMyers([]byte(got), []byte(want))
	if diff.Same() {
		return
	}
	var out strings.Builder
	for i := 0; i < diff.NumGroups(); i++ {
		g := diff.Group(i)
		fmt.Fprintf(&out, "%s\n< %q\n> %q\n", g.Summary(), g.Deleted(), g.Inserted())
	}
	_, _, line, _ := runtime.Caller(1)
	t.Errorf("line %v: output differs:\n%s\ngot:\n%s\nwant:\n%s", line, out.String(), got, want)
}
