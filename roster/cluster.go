// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"fmt"
	"sort"

	"github.com/aclements/datanotes/internal/graph"
)

// A Cluster is the group of a national team's players who also play
// together at one club.
type Cluster struct {
	Club string

	// Players is the number of the team's players from Club.
	Players int

	// Size is the cluster's contribution to the team's imported
	// teammate total. A lone player has no club teammates on the
	// national team, so a cluster of 1 player has Size 0;
	// otherwise Size equals Players.
	Size int
}

// TeamClusters is the cluster breakdown of one national team.
type TeamClusters struct {
	Team string

	// Clusters is ordered by Size descending, then by club.
	Clusters []Cluster

	// Total is the sum of cluster sizes: the number of players
	// who share a club with at least one national teammate.
	Total int
}

// Sizes returns the ordered cluster sizes of t.
func (t TeamClusters) Sizes() []int {
	sizes := make([]int, len(t.Clusters))
	for i, c := range t.Clusters {
		sizes[i] = c.Size
	}
	return sizes
}

// Summary is the per-team cluster breakdown of a roster graph.
type Summary struct {
	// Teams is ranked by Total descending, then by team name.
	Teams []TeamClusters

	byTeam map[string]int
}

// Summarize computes the club-teammate clusters of every national
// team in g. Each incoming edge of a team is one cluster.
func Summarize(g *Graph) *Summary {
	bg := graph.MakeBiGraph(g)
	s := &Summary{byTeam: make(map[string]int)}
	for _, n := range g.Nodes {
		if n.Category != NationalTeam {
			continue
		}
		tc := TeamClusters{Team: n.Label, Clusters: []Cluster{}}
		for _, from := range bg.In(n.ID) {
			club := g.Nodes[from]
			if club.Category != Club {
				panic(fmt.Sprintf("roster: national team %q has an edge from non-club node %d", n.Label, from))
			}
			players := g.Weight(from, n.ID)
			size := players
			if size == 1 {
				size = 0
			}
			tc.Clusters = append(tc.Clusters, Cluster{club.Label, players, size})
			tc.Total += size
		}
		sort.SliceStable(tc.Clusters, func(i, j int) bool {
			a, b := tc.Clusters[i], tc.Clusters[j]
			if a.Size != b.Size {
				return a.Size > b.Size
			}
			return a.Club < b.Club
		})
		s.Teams = append(s.Teams, tc)
	}
	sort.SliceStable(s.Teams, func(i, j int) bool {
		a, b := s.Teams[i], s.Teams[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Team < b.Team
	})
	for i, tc := range s.Teams {
		s.byTeam[tc.Team] = i
	}
	return s
}

// Team returns the breakdown for the named national team.
func (s *Summary) Team(name string) (TeamClusters, bool) {
	i, ok := s.byTeam[CleanName(name)]
	if !ok {
		return TeamClusters{}, false
	}
	return s.Teams[i], true
}

// Sizes returns the ordered cluster sizes of the named team, or nil
// if there is no such team.
func (s *Summary) Sizes(team string) []int {
	tc, ok := s.Team(team)
	if !ok {
		return nil
	}
	return tc.Sizes()
}

// Total returns the imported teammate total of the named team, or 0
// if there is no such team.
func (s *Summary) Total(team string) int {
	tc, _ := s.Team(team)
	return tc.Total
}

// Top returns the n highest ranked teams. If n <= 0 or exceeds the
// number of teams, it returns all of them.
func (s *Summary) Top(n int) []TeamClusters {
	if n <= 0 || n > len(s.Teams) {
		return s.Teams
	}
	return s.Teams[:n]
}
