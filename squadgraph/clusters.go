// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aclements/datanotes/roster"
)

func (a *app) clustersCmd() *cobra.Command {
	var rosterPath, continentsPath, format, outPath string
	var top int
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Rank national teams by club-teammate clusters",
		Long: `Rank national teams by the number of players who share a club with
at least one national teammate. A player who is the only one from
their club counts as 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}
			if top < 0 {
				return fmt.Errorf("bad --top %d", top)
			}
			g, err := a.buildGraph(rosterPath, continentsPath)
			if err != nil {
				return err
			}
			sum := roster.Summarize(g)
			a.log.Info("summarized clusters", "teams", len(sum.Teams))

			teams := sum.Teams
			if top > 0 {
				teams = sum.Top(top)
			}
			w, closeOut, err := output(cmd, outPath)
			if err != nil {
				return err
			}
			if format == "json" {
				err = writeClustersJSON(w, teams)
			} else {
				writeClustersTable(w, teams)
			}
			if err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}
	cmd.Flags().StringVar(&rosterPath, "roster", "", "read the player roster from CSV `file`")
	cmd.Flags().StringVar(&continentsPath, "continents", "", "read the country to continent table from CSV `file`")
	cmd.Flags().IntVar(&top, "top", 0, "show only the top `n` teams (0 for all)")
	cmd.Flags().StringVar(&format, "format", "table", "output `format`: table or json")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write output to `file` (default stdout)")
	cmd.MarkFlagRequired("roster")
	return cmd
}

func writeClustersTable(w io.Writer, teams []roster.TeamClusters) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"Rank", "Team", "Total", "Clusters"})
	for i, t := range teams {
		var parts []string
		for _, c := range t.Clusters {
			parts = append(parts, fmt.Sprintf("%s %d", c.Club, c.Size))
		}
		tw.Append([]string{
			strconv.Itoa(i + 1),
			t.Team,
			strconv.Itoa(t.Total),
			strings.Join(parts, ", "),
		})
	}
	tw.Render()
}

type clusterRecord struct {
	Club    string `json:"club"`
	Players int    `json:"players"`
	Size    int    `json:"size"`
}

type teamRecord struct {
	Team     string          `json:"team"`
	Total    int             `json:"total"`
	Clusters []clusterRecord `json:"clusters"`
}

func writeClustersJSON(w io.Writer, teams []roster.TeamClusters) error {
	recs := make([]teamRecord, len(teams))
	for i, t := range teams {
		recs[i] = teamRecord{Team: t.Team, Total: t.Total, Clusters: []clusterRecord{}}
		for _, c := range t.Clusters {
			recs[i].Clusters = append(recs[i].Clusters, clusterRecord{c.Club, c.Players, c.Size})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(recs)
}
