// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"io"
	"strings"
)

// Dot contains options for generating a Graphviz Dot graph from a
// Graph.
type Dot struct {
	// Name is the name given to the graph. Usually this can be
	// left blank.
	Name string

	// Label returns the string to use as a label for the given
	// node. If nil, nodes are labeled with their node numbers.
	Label func(node int) string

	// NodeAttrs returns extra attributes for the given node, such
	// as "color" or "width". It may be nil.
	NodeAttrs func(node int) []Attr

	// EdgeAttrs returns extra attributes for the edge from -> to.
	// It may be nil.
	EdgeAttrs func(from, to int) []Attr
}

// Attr is a single Dot attribute. Values are always quoted.
type Attr struct {
	Key, Value string
}

func defaultLabel(node int) string {
	return fmt.Sprintf("%d", node)
}

// Fprint writes the Dot form of g to w.
func (d Dot) Fprint(g Graph, w io.Writer) error {
	label := d.Label
	if label == nil {
		label = defaultLabel
	}

	_, err := fmt.Fprintf(w, "digraph %s {\n", dotString(d.Name))
	if err != nil {
		return err
	}

	for i := 0; i < g.NumNodes(); i++ {
		// Define node.
		attrs := []Attr{{"label", label(i)}}
		if d.NodeAttrs != nil {
			attrs = append(attrs, d.NodeAttrs(i)...)
		}
		_, err = fmt.Fprintf(w, "n%d [%s];\n", i, attrString(attrs))
		if err != nil {
			return err
		}

		// Connect node.
		for _, out := range g.Out(i) {
			if d.EdgeAttrs == nil {
				_, err = fmt.Fprintf(w, "n%d -> n%d;\n", i, out)
			} else {
				_, err = fmt.Fprintf(w, "n%d -> n%d [%s];\n", i, out, attrString(d.EdgeAttrs(i, out)))
			}
			if err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintf(w, "}\n")
	return err
}

func attrString(attrs []Attr) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.Key + "=" + dotString(a.Value)
	}
	return strings.Join(parts, ", ")
}

// dotString returns s as a quoted dot string.
func dotString(s string) string {
	buf := []byte{'"'}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\\', '"', '{', '}', '<', '>', '|':
			buf = append(buf, '\\', s[i])
		default:
			buf = append(buf, s[i])
		}
	}
	buf = append(buf, '"')
	return string(buf)
}
