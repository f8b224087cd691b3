// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admissions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// Metric is the quantity summed over a group of institutions before
// indexing.
type Metric int

const (
	// MetricEnrolled is the total number of enrolled students.
	MetricEnrolled Metric = iota
	// MetricApplied is the total number of applicants.
	MetricApplied
	// MetricApplicantRatio is the total number of applicants
	// divided by the total number of enrolled students.
	MetricApplicantRatio
)

func (m Metric) String() string {
	switch m {
	case MetricEnrolled:
		return "enrolled"
	case MetricApplied:
		return "applied"
	case MetricApplicantRatio:
		return "ratio"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric parses the String form of a Metric.
func ParseMetric(s string) (Metric, error) {
	for _, m := range []Metric{MetricEnrolled, MetricApplied, MetricApplicantRatio} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q (want enrolled, applied, or ratio)", s)
}

// GroupBy selects how institutions are grouped for indexing.
type GroupBy int

const (
	// GroupByControl groups institutions by their control.
	GroupByControl GroupBy = iota
	// GroupByInstitution indexes each institution on its own.
	GroupByInstitution
)

func (g GroupBy) String() string {
	switch g {
	case GroupByControl:
		return "control"
	case GroupByInstitution:
		return "institution"
	}
	return fmt.Sprintf("GroupBy(%d)", int(g))
}

// ParseGroupBy parses the String form of a GroupBy.
func ParseGroupBy(s string) (GroupBy, error) {
	for _, g := range []GroupBy{GroupByControl, GroupByInstitution} {
		if strings.EqualFold(s, g.String()) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown grouping %q (want control or institution)", s)
}

// A BaseRule picks the base row of a group given the years of the
// group's rows, which are distinct. It returns an index into years.
type BaseRule func(years []int) int

// EarliestYear is the BaseRule that picks the earliest year.
func EarliestYear(years []int) int {
	best := 0
	for i, y := range years {
		if y < years[best] {
			best = i
		}
	}
	return best
}

// FixedYear returns a BaseRule that picks year if the group has it
// and otherwise falls back to the earliest year.
func FixedYear(year int) BaseRule {
	return func(years []int) int {
		if i := slice.Index(years, year); i >= 0 {
			return i
		}
		return EarliestYear(years)
	}
}

// IndexOptions controls ComputeIndex. The zero value indexes total
// enrollment by control to the earliest year.
type IndexOptions struct {
	Metric  Metric
	GroupBy GroupBy

	// Base picks each group's base year. If nil, EarliestYear is
	// used.
	Base BaseRule
}

// ComputeIndex sums opts.Metric over each group of institutions in
// each year and indexes each group's series to its base year, so the
// base year's index is 100.
//
// Records are joined to the directory and filtered as in
// ComputeRatios, so a group's value in a year only counts the
// institutions that reported both applicants and enrollment that
// year.
//
// The result is sorted by group, then year.
func ComputeIndex(recs []Record, dir []Institution, opts IndexOptions) []IndexPoint {
	g := usable(recs, dir)
	if g == nil {
		return []IndexPoint{}
	}
	base := opts.Base
	if base == nil {
		base = EarliestYear
	}

	// Label each row with its group.
	switch opts.GroupBy {
	case GroupByControl:
		g = table.MapCols(g, func(control []Control, group []string) {
			for i, c := range control {
				group[i] = c.String()
			}
		}, "control")("group")
	case GroupByInstitution:
		labels := institutionLabels(dir)
		g = table.MapCols(g, func(ids []int, group []string) {
			for i, id := range ids {
				group[i] = labels[id]
			}
		}, "unitid")("group")
	default:
		panic(fmt.Sprintf("bad GroupBy %d", opts.GroupBy))
	}

	// Sum each group in each year and compute the metric.
	g = ggstat.Agg("group", "year")(ggstat.AggSum("applied", "enrolled")).F(table.Flatten(g))
	metric := opts.Metric
	g = table.MapCols(g, func(applied, enrolled, value []float64) {
		for i := range value {
			switch metric {
			case MetricEnrolled:
				value[i] = enrolled[i]
			case MetricApplied:
				value[i] = applied[i]
			case MetricApplicantRatio:
				value[i] = applied[i] / enrolled[i]
			default:
				panic(fmt.Sprintf("bad Metric %d", metric))
			}
		}
	}, "sum applied", "sum enrolled")("value")

	// Normalize each group to its base year.
	g = table.GroupBy(g, "group")
	g = ggstat.Normalize{X: "year", By: func(years []int) int { return base(years) }, Cols: []string{"value"}}.F(g)
	g = table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		years := t.MustColumn("year").([]int)
		var vals []float64
		slice.Convert(&vals, t.MustColumn("value"))
		b := base(years)
		return table.NewBuilder(t).
			AddConst("base year", years[b]).
			AddConst("base value", vals[b]).
			Done()
	})
	t := table.Flatten(g)

	var groups []string
	var years, baseYears []int
	var vals, baseVals, norm []float64
	slice.Convert(&groups, t.MustColumn("group"))
	slice.Convert(&years, t.MustColumn("year"))
	slice.Convert(&vals, t.MustColumn("value"))
	slice.Convert(&baseYears, t.MustColumn("base year"))
	slice.Convert(&baseVals, t.MustColumn("base value"))
	slice.Convert(&norm, t.MustColumn("normalized value"))

	points := make([]IndexPoint, len(groups))
	for i := range points {
		points[i] = IndexPoint{
			Group:     groups[i],
			Year:      years[i],
			Value:     vals[i],
			BaseYear:  baseYears[i],
			BaseValue: baseVals[i],
			Index:     100 * norm[i],
		}
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Group != points[j].Group {
			return points[i].Group < points[j].Group
		}
		return points[i].Year < points[j].Year
	})
	return points
}

// institutionLabels returns a label for each institution in dir,
// using its name from the most recent year it appears.
func institutionLabels(dir []Institution) map[int]string {
	latest := make(map[int]Institution)
	for _, inst := range dir {
		if l, ok := latest[inst.InstitutionID]; !ok || inst.Year > l.Year {
			latest[inst.InstitutionID] = inst
		}
	}
	labels := make(map[int]string, len(latest))
	for id, inst := range latest {
		if inst.Name == "" {
			labels[id] = fmt.Sprint(id)
		} else {
			labels[id] = fmt.Sprintf("%s (%d)", inst.Name, id)
		}
	}
	return labels
}
