// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"

	"github.com/aclements/datanotes/internal/graph"
	"github.com/aclements/datanotes/roster"
)

func (a *app) graphCmd() *cobra.Command {
	var rosterPath, continentsPath, format, outPath string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build the club -> national team graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, ok := graphFormats[format]
			if !ok {
				return fmt.Errorf("unknown format %q (want dot, json, or table)", format)
			}
			g, err := a.buildGraph(rosterPath, continentsPath)
			if err != nil {
				return err
			}
			a.log.Info("built graph",
				"clubs", len(g.Nodes)-countTeams(g),
				"teams", countTeams(g),
				"edges", len(g.Edges),
				"components", len(graph.Components(g)))

			w, closeOut, err := output(cmd, outPath)
			if err != nil {
				return err
			}
			if err := write(w, g); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "read the player roster from CSV `file`")
	cmd.Flags().StringVar(&continentsPath, "continents", "", "read the country to continent table from CSV `file`")
	cmd.Flags().StringVar(&format, "format", "dot", "output `format`: dot, json, or table")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write output to `file` (default stdout)")
	cmd.MarkFlagRequired("roster")
	return cmd
}

var graphFormats = map[string]func(io.Writer, *roster.Graph) error{
	"dot": func(w io.Writer, g *roster.Graph) error {
		return g.Dot().Fprint(g, w)
	},
	"json": func(w io.Writer, g *roster.Graph) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(g.Records())
	},
	"table": writeEdgeTable,
}

// writeEdgeTable writes the edges of g as a table, ordered by club,
// then team.
func writeEdgeTable(w io.Writer, g *roster.Graph) error {
	n := len(g.Edges)
	clubs, teams, continents := make([]string, n), make([]string, n), make([]string, n)
	players := make([]int, n)
	for i, e := range g.Edges {
		team := g.Nodes[e.To]
		clubs[i] = g.Nodes[e.From].Label
		teams[i] = team.Label
		continents[i] = team.Continent.String()
		players[i] = e.Weight
	}
	tab := new(table.Builder).
		Add("club", clubs).
		Add("team", teams).
		Add("continent", continents).
		Add("players", players).
		Done()
	return table.Fprint(w, tab)
}

func countTeams(g *roster.Graph) int {
	n := 0
	for _, node := range g.Nodes {
		if node.Category == roster.NationalTeam {
			n++
		}
	}
	return n
}
