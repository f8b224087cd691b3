// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// CleanName returns the canonical spelling of a team, club, or
// country name: NFC-normalized, trimmed, with runs of white space
// collapsed to a single space. Two names denote the same node if
// their cleaned forms are equal.
func CleanName(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// FoldName returns the key used to match a name against the
// continent lookup and override tables. It is CleanName plus Unicode
// case folding, so "Côte d'Ivoire" and "CÔTE D'IVOIRE" match.
func FoldName(s string) string {
	return cases.Fold().String(CleanName(s))
}
