// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"

	"github.com/aclements/datanotes/internal/graph"
)

// NodeRecord is the serialized form of a Node handed to graph
// renderers.
type NodeRecord struct {
	ID        int     `json:"id"`
	Label     string  `json:"label"`
	Category  string  `json:"category"`
	Continent string  `json:"continent"`
	Size      float64 `json:"size"`
	Color     string  `json:"color"`
}

// EdgeRecord is the serialized form of an Edge. Width and Color are
// display hints derived from Weight.
type EdgeRecord struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight int     `json:"weight"`
	Width  float64 `json:"width"`
	Color  string  `json:"color"`
}

// Records is the list-of-records form of a Graph.
type Records struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// edgeShade shades edges from light grey (weight 1) to near black
// (the heaviest edge in the graph).
var edgeShade = palette.RGBGradient{
	Colors: []color.RGBA{
		{0xbd, 0xbd, 0xbd, 0xff},
		{0x73, 0x73, 0x73, 0xff},
		{0x25, 0x25, 0x25, 0xff},
	},
}

func (g *Graph) maxWeight() int {
	maxW := 0
	for _, e := range g.Edges {
		if e.Weight > maxW {
			maxW = e.Weight
		}
	}
	return maxW
}

func edgeColor(weight, maxW int) string {
	x := 0.0
	if maxW > 1 {
		x = float64(weight-1) / float64(maxW-1)
	}
	return hexColor(edgeShade.Map(x))
}

// Records returns the list-of-records form of g.
func (g *Graph) Records() Records {
	r := Records{
		Nodes: make([]NodeRecord, len(g.Nodes)),
		Edges: make([]EdgeRecord, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		r.Nodes[i] = NodeRecord{n.ID, n.Label, n.Category.String(), n.Continent.String(), n.Size, n.Color}
	}
	maxW := g.maxWeight()
	for i, e := range g.Edges {
		r.Edges[i] = EdgeRecord{e.From, e.To, e.Weight, float64(e.Weight), edgeColor(e.Weight, maxW)}
	}
	return r
}

// Dot returns Graphviz options for rendering g: nodes are labeled and
// colored, national teams drawn larger than clubs, and edges drawn
// with a pen width equal to their weight.
func (g *Graph) Dot() graph.Dot {
	maxW := g.maxWeight()
	return graph.Dot{
		Name:  "squads",
		Label: func(i int) string { return g.Nodes[i].Label },
		NodeAttrs: func(i int) []graph.Attr {
			n := g.Nodes[i]
			shape := "ellipse"
			if n.Category == NationalTeam {
				shape = "box"
			}
			return []graph.Attr{
				{Key: "shape", Value: shape},
				{Key: "style", Value: "filled"},
				{Key: "fillcolor", Value: n.Color},
				{Key: "fontsize", Value: fmt.Sprint(n.Size)},
			}
		},
		EdgeAttrs: func(from, to int) []graph.Attr {
			w := g.Weight(from, to)
			return []graph.Attr{
				{Key: "weight", Value: fmt.Sprint(w)},
				{Key: "penwidth", Value: fmt.Sprint(w)},
				{Key: "color", Value: edgeColor(w, maxW)},
			}
		},
	}
}
