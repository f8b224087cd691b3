// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"math/big"
	"sort"
)

// Components returns the weakly connected components of g. Each
// component is sorted by node number, and components are ordered by
// their smallest node.
func Components(g Graph) [][]int {
	bg := MakeBiGraph(g)

	const stackNodes = 1024
	var words [stackNodes / 32]big.Word
	var visited big.Int
	visited.SetBits(words[:]) // Keep small graphs on the stack

	var comps [][]int
	var comp []int
	var visit func(n int)
	visit = func(n int) {
		comp = append(comp, n)
		visited.SetBit(&visited, n, 1)
		for _, succ := range bg.Out(n) {
			if visited.Bit(succ) == 0 {
				visit(succ)
			}
		}
		for _, pred := range bg.In(n) {
			if visited.Bit(pred) == 0 {
				visit(pred)
			}
		}
	}
	for n := 0; n < bg.NumNodes(); n++ {
		if visited.Bit(n) != 0 {
			continue
		}
		comp = nil
		visit(n)
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
