// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"fmt"
	"sort"

	"github.com/aclements/datanotes/internal/graph"
)

// Category distinguishes the two kinds of node in a roster graph.
type Category int

const (
	Club Category = iota
	NationalTeam
)

func (c Category) String() string {
	switch c {
	case Club:
		return "club"
	case NationalTeam:
		return "national team"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Display sizes of nodes. These are rendering hints only.
const (
	TeamSize = 30
	ClubSize = 10
)

// Node is a club or national team.
type Node struct {
	// ID is the node's index in Graph.Nodes.
	ID int

	// Label is the cleaned club or team name. A club and a
	// national team may share a label; they are still distinct
	// nodes.
	Label string

	Category  Category
	Continent Continent

	Size  float64
	Color string
}

// Edge connects a club to a national team. Weight is the number of
// players the club contributes to that team and is always at least 1.
type Edge struct {
	From, To int
	Weight   int
}

// Graph is a bipartite club -> national team graph. It implements
// graph.WeightedGraph.
//
// Graphs are immutable once constructed.
type Graph struct {
	Nodes []Node
	Edges []Edge

	out     [][]int
	weights map[[2]int]int
	ids     map[nodeKey]int
}

type nodeKey struct {
	cat   Category
	label string
}

// NewGraph returns the graph with the given nodes and edges.
//
// NewGraph panics if the graph is malformed: if node IDs are not
// their indexes, if an edge refers to a node that does not exist,
// does not run from a club to a national team, has a non-positive
// weight, or duplicates another edge. Graphs built by Build are
// always well formed, so any of these indicates a bug.
func NewGraph(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		Nodes:   nodes,
		Edges:   edges,
		out:     make([][]int, len(nodes)),
		weights: make(map[[2]int]int, len(edges)),
		ids:     make(map[nodeKey]int, len(nodes)),
	}
	for i, n := range nodes {
		if n.ID != i {
			panic(fmt.Sprintf("roster: node %q has ID %d at index %d", n.Label, n.ID, i))
		}
		k := nodeKey{n.Category, n.Label}
		if _, ok := g.ids[k]; ok {
			panic(fmt.Sprintf("roster: duplicate %s node %q", n.Category, n.Label))
		}
		g.ids[k] = i
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= len(nodes) || e.To < 0 || e.To >= len(nodes) {
			panic(fmt.Sprintf("roster: edge %d -> %d refers to an unassigned node ID", e.From, e.To))
		}
		if nodes[e.From].Category != Club || nodes[e.To].Category != NationalTeam {
			panic(fmt.Sprintf("roster: edge %d -> %d does not run from a club to a national team", e.From, e.To))
		}
		if e.Weight < 1 {
			panic(fmt.Sprintf("roster: edge %d -> %d has weight %d", e.From, e.To, e.Weight))
		}
		k := [2]int{e.From, e.To}
		if _, ok := g.weights[k]; ok {
			panic(fmt.Sprintf("roster: duplicate edge %d -> %d", e.From, e.To))
		}
		g.weights[k] = e.Weight
		g.out[e.From] = append(g.out[e.From], e.To)
	}
	return g
}

// NumNodes returns the number of clubs plus national teams.
func (g *Graph) NumNodes() int {
	return len(g.Nodes)
}

// Out returns the national teams that club node i sends players to.
// It is empty for national team nodes.
func (g *Graph) Out(i int) []int {
	return g.out[i]
}

// Weight returns the number of players club i sends to national team
// j, or 0 if there is no edge.
func (g *Graph) Weight(i, j int) int {
	return g.weights[[2]int{i, j}]
}

// ID returns the node ID of the club or national team with the given
// label.
func (g *Graph) ID(cat Category, label string) (int, bool) {
	id, ok := g.ids[nodeKey{cat, CleanName(label)}]
	return id, ok
}

var _ graph.WeightedGraph = (*Graph)(nil)

// Build constructs the club -> national team graph for players.
//
// Node IDs are assigned clubs first, then national teams, each in
// sorted label order, so the IDs depend only on the set of names in
// players. National team continents come from overrides if present
// there, then lookup, and are otherwise Unknown. lookup and overrides
// may be nil.
func Build(players []Player, lookup *Lookup, overrides Overrides) *Graph {
	var clubs, teams []string
	seenClub, seenTeam := map[string]bool{}, map[string]bool{}
	for _, p := range players {
		club, team := CleanName(p.Club), CleanName(p.NationalTeam)
		if !seenClub[club] {
			seenClub[club] = true
			clubs = append(clubs, club)
		}
		if !seenTeam[team] {
			seenTeam[team] = true
			teams = append(teams, team)
		}
	}
	sort.Strings(clubs)
	sort.Strings(teams)

	nodes := make([]Node, 0, len(clubs)+len(teams))
	clubID := make(map[string]int, len(clubs))
	for _, club := range clubs {
		clubID[club] = len(nodes)
		nodes = append(nodes, Node{
			ID:        len(nodes),
			Label:     club,
			Category:  Club,
			Continent: NoContinent,
			Size:      ClubSize,
			Color:     NoContinent.Color(),
		})
	}
	teamID := make(map[string]int, len(teams))
	folded := overrides.folded()
	for _, team := range teams {
		cont := resolveContinent(team, lookup, folded)
		teamID[team] = len(nodes)
		nodes = append(nodes, Node{
			ID:        len(nodes),
			Label:     team,
			Category:  NationalTeam,
			Continent: cont,
			Size:      TeamSize,
			Color:     cont.Color(),
		})
	}

	// Count players per (club, team) pair.
	counts := make(map[[2]int]int)
	for _, p := range players {
		from, ok1 := clubID[CleanName(p.Club)]
		to, ok2 := teamID[CleanName(p.NationalTeam)]
		if !ok1 || !ok2 {
			panic(fmt.Sprintf("roster: player %q has no node for club %q or team %q", p.Name, p.Club, p.NationalTeam))
		}
		counts[[2]int{from, to}]++
	}
	edges := make([]Edge, 0, len(counts))
	for k, n := range counts {
		edges = append(edges, Edge{k[0], k[1], n})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return NewGraph(nodes, edges)
}
