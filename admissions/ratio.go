// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admissions

import (
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// ComputeRatios returns the number of applicants per enrolled student
// for every admissions record that has a directory entry for the same
// institution and year and positive applicant and enrollment counts.
// Other records are dropped.
//
// The result is sorted by institution ID, then year.
func ComputeRatios(recs []Record, dir []Institution) []Ratio {
	g := usable(recs, dir)
	if g == nil {
		return []Ratio{}
	}
	g = table.MapCols(g, func(applied, enrolled, ratio []float64) {
		for i := range applied {
			ratio[i] = applied[i] / enrolled[i]
		}
	}, "applied", "enrolled")("ratio")
	t := table.Flatten(g)

	var ids, years []int
	var names []string
	var controls []Control
	var applied, enrolled, vals []float64
	slice.Convert(&ids, t.MustColumn("unitid"))
	slice.Convert(&years, t.MustColumn("year"))
	slice.Convert(&names, t.MustColumn("name"))
	slice.Convert(&controls, t.MustColumn("control"))
	slice.Convert(&applied, t.MustColumn("applied"))
	slice.Convert(&enrolled, t.MustColumn("enrolled"))
	slice.Convert(&vals, t.MustColumn("ratio"))

	ratios := make([]Ratio, len(ids))
	for i := range ratios {
		ratios[i] = Ratio{
			InstitutionID: ids[i],
			Year:          years[i],
			Name:          names[i],
			Control:       controls[i],
			Applied:       applied[i],
			Enrolled:      enrolled[i],
			Ratio:         vals[i],
		}
	}
	sort.SliceStable(ratios, func(i, j int) bool {
		if ratios[i].InstitutionID != ratios[j].InstitutionID {
			return ratios[i].InstitutionID < ratios[j].InstitutionID
		}
		return ratios[i].Year < ratios[j].Year
	})
	return ratios
}
