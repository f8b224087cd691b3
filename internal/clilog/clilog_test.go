// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clilog

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		var buf bytes.Buffer
		log := New(&buf, verbose)
		log.Debug("detail", "n", 3)
		log.Info("built graph", "nodes", 12)

		out := buf.String()
		if !strings.Contains(out, "built graph") || !strings.Contains(out, "nodes=12") {
			t.Errorf("verbose=%v: info record missing from %q", verbose, out)
		}
		if got := strings.Contains(out, "detail"); got != verbose {
			t.Errorf("verbose=%v: debug record logged = %v", verbose, got)
		}
		if strings.Contains(out, "\x1b[") {
			t.Errorf("verbose=%v: colored output to a buffer: %q", verbose, out)
		}
	}
}
