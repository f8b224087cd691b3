// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aclements/datanotes/admissions"
	"github.com/aclements/datanotes/internal/chart"
)

func (a *app) ratiosCmd() *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Print applicants per enrolled student for each institution and year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.check(); err != nil {
				return err
			}
			recs, dir, err := a.load()
			if err != nil {
				return err
			}
			ratios := admissions.ComputeRatios(recs, dir)
			a.log.Info("computed ratios", "ratios", len(ratios), "dropped", len(recs)-len(ratios))
			return out.write(cmd, admissions.RatioTable(ratios), ratioFormats, ratios)
		},
	}
	out.register(cmd)
	return cmd
}

func (a *app) indexCmd() *cobra.Command {
	var out outputFlags
	var pf plotFlags
	var metric, groupBy string
	var baseYear int
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Index a metric summed by group to its base year",
		Long: `Sum a metric over each group of institutions in each year and index
each group's series to 100 at its base year. The base year is the
group's earliest year, or --base-year if the group has it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.check(); err != nil {
				return err
			}
			var opts admissions.IndexOptions
			var err error
			if opts.Metric, err = admissions.ParseMetric(metric); err != nil {
				return err
			}
			if opts.GroupBy, err = admissions.ParseGroupBy(groupBy); err != nil {
				return err
			}
			if baseYear != 0 {
				opts.Base = admissions.FixedYear(baseYear)
			}

			recs, dir, err := a.load()
			if err != nil {
				return err
			}
			points := admissions.ComputeIndex(recs, dir, opts)
			a.log.Info("computed index", "metric", opts.Metric, "group_by", opts.GroupBy, "points", len(points))

			tab := admissions.IndexTable(points)
			if err := out.write(cmd, tab, indexFormats, points); err != nil {
				return err
			}
			return a.plot(pf, tab, chart.Spec{
				X: "year", Y: "index", Series: "group",
				Title:    fmt.Sprintf("%s by %s", metricTitle[opts.Metric], opts.GroupBy),
				XLabel:   "year",
				YLabel:   "index (base year = 100)",
				IncludeY: []float64{100},
			})
		},
	}
	out.register(cmd)
	pf.register(cmd)
	cmd.Flags().StringVar(&metric, "metric", "enrolled", "`metric` to index: enrolled, applied, or ratio")
	cmd.Flags().StringVar(&groupBy, "group-by", "control", "group institutions by `key`: control or institution")
	cmd.Flags().IntVar(&baseYear, "base-year", 0, "index to `year` instead of each group's earliest year")
	return cmd
}

var metricTitle = map[admissions.Metric]string{
	admissions.MetricEnrolled:       "Enrollment",
	admissions.MetricApplied:        "Applications",
	admissions.MetricApplicantRatio: "Applicants per enrolled student",
}

func (a *app) summaryCmd() *cobra.Command {
	var out outputFlags
	var pf plotFlags
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize applicants per enrolled student by control and year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.check(); err != nil {
				return err
			}
			recs, dir, err := a.load()
			if err != nil {
				return err
			}
			sums := admissions.SummarizeRatios(admissions.ComputeRatios(recs, dir))
			a.log.Info("summarized ratios", "groups", len(sums))

			tab := admissions.SummaryTable(sums)
			if err := out.write(cmd, tab, summaryFormats, sums); err != nil {
				return err
			}
			return a.plot(pf, tab, chart.Spec{
				X: "year", Y: "median", Series: "control",
				Title:  "Median applicants per enrolled student",
				XLabel: "year",
				YLabel: "applicants per enrolled student",
			})
		},
	}
	out.register(cmd)
	pf.register(cmd)
	return cmd
}
