// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command squadgraph analyzes which clubs supply the players of each
// national team at a tournament.
//
// squadgraph reads a roster CSV with one row per player, giving the
// player's name, national team, and club. The graph subcommand builds
// the weighted club -> national team graph and writes it as Graphviz
// DOT, JSON, or a table. The clusters subcommand ranks national teams
// by how many of their players share a club with a teammate.
//
// National teams are colored by continent using a country to continent
// CSV table (--continents), with a configurable override table for
// teams the reference data does not know, such as England.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/datanotes/internal/clilog"
	"github.com/aclements/datanotes/internal/config"
	"github.com/aclements/datanotes/roster"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		clilog.New(os.Stderr, false).Error("squadgraph failed", "error", err)
		os.Exit(1)
	}
}

// app is the state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "squadgraph",
		Short:         "Analyze the clubs behind a tournament's national teams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = clilog.New(cmd.ErrOrStderr(), a.verbose)
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "read configuration from `file`")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.graphCmd(), a.clustersCmd())
	return root
}

// buildGraph reads the roster and optional continent table and
// builds the roster graph.
func (a *app) buildGraph(rosterPath, continentsPath string) (*roster.Graph, error) {
	f, err := os.Open(rosterPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	players, err := roster.ReadPlayers(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rosterPath, err)
	}
	a.log.Debug("read roster", "path", rosterPath, "players", len(players))

	var lookup *roster.Lookup
	if continentsPath == "" {
		a.log.Warn("no continent table; national teams without an override will be Unknown")
	} else {
		cf, err := os.Open(continentsPath)
		if err != nil {
			return nil, err
		}
		defer cf.Close()
		lookup, err = roster.ReadContinents(cf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", continentsPath, err)
		}
		a.log.Debug("read continent table", "path", continentsPath, "countries", lookup.Len())
	}

	overrides, err := a.cfg.Roster.Overrides()
	if err != nil {
		return nil, err
	}
	a.log.Debug("continent overrides", "teams", overrides.Names())

	g := roster.Build(players, lookup, overrides)
	for _, n := range g.Nodes {
		if n.Category == roster.NationalTeam && n.Continent == roster.Unknown {
			a.log.Debug("no continent for national team", "team", n.Label)
		}
	}
	return g, nil
}

// output returns the writer for path, or cmd's output if path is ""
// or "-". The caller must call the returned close function.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
