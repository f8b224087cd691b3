// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admissions

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// RatioSummary describes the distribution of applicants per enrolled
// student across the institutions of one control in one year.
type RatioSummary struct {
	Control Control `json:"control"`
	Year    int     `json:"year"`

	// N is the number of institutions.
	N int `json:"n"`

	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Q1      float64 `json:"q1"`
	Q3      float64 `json:"q3"`
	GeoMean float64 `json:"geomean"`
}

// SummarizeRatios summarizes ratios by control and year. The result
// is sorted by control, then year.
func SummarizeRatios(ratios []Ratio) []RatioSummary {
	type key struct {
		control Control
		year    int
	}
	samples := make(map[key][]float64)
	for _, r := range ratios {
		k := key{r.Control, r.Year}
		samples[k] = append(samples[k], r.Ratio)
	}

	sums := make([]RatioSummary, 0, len(samples))
	for k, xs := range samples {
		sort.Float64s(xs)
		s := stats.Sample{Xs: xs, Sorted: true}
		sums = append(sums, RatioSummary{
			Control: k.control,
			Year:    k.year,
			N:       len(xs),
			Mean:    stats.Mean(xs),
			Median:  s.Quantile(0.5),
			Q1:      s.Quantile(0.25),
			Q3:      s.Quantile(0.75),
			GeoMean: stats.GeoMean(xs),
		})
	}
	sort.Slice(sums, func(i, j int) bool {
		if sums[i].Control != sums[j].Control {
			return sums[i].Control < sums[j].Control
		}
		return sums[i].Year < sums[j].Year
	})
	return sums
}
