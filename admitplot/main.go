// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command admitplot measures how competitive college admissions are
// over time.
//
// admitplot takes two CSV exports of the Urban Institute's Education
// Data Portal: IPEDS admissions-enrollment data (--admissions) and the
// IPEDS institution directory (--directory). Admissions records are
// joined to the directory by institution and year, and records
// without a positive number of applicants and enrolled students are
// dropped.
//
// The ratios subcommand prints the applicants per enrolled student of
// each institution in each year. The index subcommand sums enrollment
// (or applicants, or the applicant ratio) by institution control and
// indexes each series to 100 at its earliest year. The summary
// subcommand describes the distribution of ratios for each control
// and year. index and summary can also plot their results as SVG.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/datanotes/admissions"
	"github.com/aclements/datanotes/internal/clilog"
	"github.com/aclements/datanotes/internal/config"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		clilog.New(os.Stderr, false).Error("admitplot failed", "error", err)
		os.Exit(1)
	}
}

// app is the state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool

	admissionsPath, directoryPath string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "admitplot",
		Short:         "Measure the competitiveness of college admissions over time",
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
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "read configuration from `file`")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.admissionsPath, "admissions", "", "read IPEDS admissions data from CSV `file`")
	pf.StringVar(&a.directoryPath, "directory", "", "read the IPEDS institution directory from CSV `file`")
	root.MarkPersistentFlagRequired("admissions")
	root.MarkPersistentFlagRequired("directory")

	root.AddCommand(a.ratiosCmd(), a.indexCmd(), a.summaryCmd())
	return root
}

// load reads the admissions records and the directory.
func (a *app) load() ([]admissions.Record, []admissions.Institution, error) {
	f, err := os.Open(a.admissionsPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	recs, err := admissions.ReadRecords(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", a.admissionsPath, err)
	}

	df, err := os.Open(a.directoryPath)
	if err != nil {
		return nil, nil, err
	}
	defer df.Close()
	dir, err := admissions.ReadDirectory(df)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", a.directoryPath, err)
	}

	a.log.Debug("read inputs", "records", len(recs), "institutions", len(dir))
	return recs, dir, nil
}
