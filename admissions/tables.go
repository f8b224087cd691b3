// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admissions

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
)

// joinKey is the key column shared by the admissions and directory
// tables.
func joinKey(id, year int) string {
	return fmt.Sprintf("%d/%d", id, year)
}

// recordsToTable returns a table with columns "key", "unitid",
// "year", "applied", and "enrolled".
func recordsToTable(recs []Record) *table.Table {
	keys := make([]string, len(recs))
	ids := make([]int, len(recs))
	years := make([]int, len(recs))
	applied := make([]float64, len(recs))
	enrolled := make([]float64, len(recs))
	for i, r := range recs {
		keys[i] = joinKey(r.InstitutionID, r.Year)
		ids[i], years[i] = r.InstitutionID, r.Year
		applied[i], enrolled[i] = r.Applied, r.Enrolled
	}
	return new(table.Builder).
		Add("key", keys).
		Add("unitid", ids).
		Add("year", years).
		Add("applied", applied).
		Add("enrolled", enrolled).
		Done()
}

// directoryToTable returns a table with columns "key", "name", and
// "control". If dir has more than one entry for an institution and
// year, only the first is used.
func directoryToTable(dir []Institution) *table.Table {
	var keys, names []string
	var controls []Control
	seen := make(map[string]bool)
	for _, inst := range dir {
		k := joinKey(inst.InstitutionID, inst.Year)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
		names = append(names, inst.Name)
		controls = append(controls, inst.Control)
	}
	return new(table.Builder).
		Add("key", keys).
		Add("name", names).
		Add("control", controls).
		Done()
}

// usable joins recs with dir and keeps only the rows with positive
// applicant and enrollment counts. The result has the columns of
// recordsToTable followed by "name" and "control". It returns nil if
// no rows remain.
func usable(recs []Record, dir []Institution) table.Grouping {
	if len(recs) == 0 || len(dir) == 0 {
		return nil
	}
	g := table.Join(recordsToTable(recs), "key", directoryToTable(dir), "key")
	g = table.Filter(g, func(applied, enrolled float64) bool {
		return positive(applied) && positive(enrolled)
	}, "applied", "enrolled")
	if numRows(g) == 0 {
		return nil
	}
	return g
}

func positive(x float64) bool {
	return !math.IsNaN(x) && x > 0
}

func numRows(g table.Grouping) int {
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// RatioTable returns ratios as a table with columns "unitid", "year",
// "name", "control", "applied", "enrolled", and "ratio".
func RatioTable(ratios []Ratio) *table.Table {
	ids := make([]int, len(ratios))
	years := make([]int, len(ratios))
	names := make([]string, len(ratios))
	controls := make([]string, len(ratios))
	applied := make([]float64, len(ratios))
	enrolled := make([]float64, len(ratios))
	vals := make([]float64, len(ratios))
	for i, r := range ratios {
		ids[i], years[i] = r.InstitutionID, r.Year
		names[i], controls[i] = r.Name, r.Control.String()
		applied[i], enrolled[i], vals[i] = r.Applied, r.Enrolled, r.Ratio
	}
	return new(table.Builder).
		Add("unitid", ids).
		Add("year", years).
		Add("name", names).
		Add("control", controls).
		Add("applied", applied).
		Add("enrolled", enrolled).
		Add("ratio", vals).
		Done()
}

// IndexTable returns points as a table with columns "group", "year",
// "value", "base year", "base value", and "index".
func IndexTable(points []IndexPoint) *table.Table {
	groups := make([]string, len(points))
	years := make([]int, len(points))
	vals := make([]float64, len(points))
	baseYears := make([]int, len(points))
	baseVals := make([]float64, len(points))
	idx := make([]float64, len(points))
	for i, p := range points {
		groups[i], years[i], vals[i] = p.Group, p.Year, p.Value
		baseYears[i], baseVals[i], idx[i] = p.BaseYear, p.BaseValue, p.Index
	}
	return new(table.Builder).
		Add("group", groups).
		Add("year", years).
		Add("value", vals).
		Add("base year", baseYears).
		Add("base value", baseVals).
		Add("index", idx).
		Done()
}

// SummaryTable returns summaries as a table with columns "control",
// "year", "n", "mean", "median", "q1", "q3", and "geomean".
func SummaryTable(sums []RatioSummary) *table.Table {
	controls := make([]string, len(sums))
	years := make([]int, len(sums))
	ns := make([]int, len(sums))
	means := make([]float64, len(sums))
	medians := make([]float64, len(sums))
	q1s := make([]float64, len(sums))
	q3s := make([]float64, len(sums))
	geos := make([]float64, len(sums))
	for i, s := range sums {
		controls[i], years[i], ns[i] = s.Control.String(), s.Year, s.N
		means[i], medians[i], geos[i] = s.Mean, s.Median, s.GeoMean
		q1s[i], q3s[i] = s.Q1, s.Q3
	}
	return new(table.Builder).
		Add("control", controls).
		Add("year", years).
		Add("n", ns).
		Add("mean", means).
		Add("median", medians).
		Add("q1", q1s).
		Add("q3", q3s).
		Add("geomean", geos).
		Done()
}
