// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admissions

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestComputeRatiosFilter(t *testing.T) {
	recs := []Record{
		{1, 2020, 100, 0},
		{2, 2020, 0, 50},
		{3, 2020, 200, 50},
		{4, 2020, nan, 50},
		{5, 2020, 10, nan},
	}
	dir := []Institution{
		{1, 2020, "A", Public},
		{2, 2020, "B", Public},
		{3, 2020, "C", PrivateNonprofit},
		{4, 2020, "D", Public},
		{5, 2020, "E", Public},
	}
	got := ComputeRatios(recs, dir)
	want := []Ratio{{3, 2020, "C", PrivateNonprofit, 200, 50, 4.0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeRatios mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeRatiosJoin(t *testing.T) {
	recs := []Record{
		{2, 2021, 30, 10},
		{1, 2020, 10, 4},
		{1, 2019, 9, 3},
		{3, 2020, 50, 5}, // No directory entry.
		{2, 2020, 7, 7},  // Directory has 2021 only.
	}
	dir := []Institution{
		{1, 2019, "A", Public},
		{1, 2020, "A", Public},
		{1, 2020, "A duplicate", PrivateForProfit},
		{2, 2021, "B", PrivateNonprofit},
	}
	got := ComputeRatios(recs, dir)
	want := []Ratio{
		{1, 2019, "A", Public, 9, 3, 3},
		{1, 2020, "A", Public, 10, 4, 2.5},
		{2, 2021, "B", PrivateNonprofit, 30, 10, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeRatios mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeEmpty(t *testing.T) {
	dir := []Institution{{1, 2020, "A", Public}}
	for _, recs := range [][]Record{nil, {{1, 2020, 0, 0}}, {{2, 2020, 1, 1}}} {
		if got := ComputeRatios(recs, dir); len(got) != 0 {
			t.Errorf("ComputeRatios(%v) = %v, want empty", recs, got)
		}
		if got := ComputeIndex(recs, dir, IndexOptions{}); len(got) != 0 {
			t.Errorf("ComputeIndex(%v) = %v, want empty", recs, got)
		}
	}
	if got := ComputeRatios([]Record{{1, 2020, 1, 1}}, nil); len(got) != 0 {
		t.Errorf("ComputeRatios with no directory = %v, want empty", got)
	}
}

// indexFixture has two public institutions reporting in 2019 and 2020
// and one private nonprofit reporting only in 2020.
var indexRecs = []Record{
	{1, 2019, 400, 100},
	{2, 2019, 600, 100},
	{1, 2020, 600, 150},
	{2, 2020, 900, 90},
	{3, 2020, 80, 40},
	{3, 2021, 0, 40}, // Dropped.
}

var indexDir = []Institution{
	{1, 2019, "One", Public},
	{2, 2019, "Two", Public},
	{1, 2020, "One", Public},
	{2, 2020, "Two", Public},
	{3, 2020, "Three", PrivateNonprofit},
	{3, 2021, "Three", PrivateNonprofit},
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestComputeIndexEnrolled(t *testing.T) {
	got := ComputeIndex(indexRecs, indexDir, IndexOptions{})
	want := []IndexPoint{
		{"Private nonprofit", 2020, 40, 2020, 40, 100},
		{"Public", 2019, 200, 2019, 200, 100},
		{"Public", 2020, 240, 2019, 200, 120},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("ComputeIndex mismatch (-want +got):\n%s", diff)
	}
	checkBase(t, got)
}

func TestComputeIndexMetrics(t *testing.T) {
	for _, test := range []struct {
		metric Metric
		want   []float64 // Index of Public in 2019, 2020.
	}{
		{MetricApplied, []float64{100, 150}},
		// 1000/200 = 5 in 2019, 1500/240 = 6.25 in 2020.
		{MetricApplicantRatio, []float64{100, 125}},
	} {
		t.Run(test.metric.String(), func(t *testing.T) {
			got := ComputeIndex(indexRecs, indexDir, IndexOptions{Metric: test.metric})
			var idx []float64
			for _, p := range got {
				if p.Group == "Public" {
					idx = append(idx, p.Index)
				}
			}
			if diff := cmp.Diff(test.want, idx, approx); diff != "" {
				t.Errorf("Public index mismatch (-want +got):\n%s", diff)
			}
			checkBase(t, got)
		})
	}
}

func TestComputeIndexByInstitution(t *testing.T) {
	got := ComputeIndex(indexRecs, indexDir, IndexOptions{GroupBy: GroupByInstitution})
	want := []IndexPoint{
		{"One (1)", 2019, 100, 2019, 100, 100},
		{"One (1)", 2020, 150, 2019, 100, 150},
		{"Three (3)", 2020, 40, 2020, 40, 100},
		{"Two (2)", 2019, 100, 2019, 100, 100},
		{"Two (2)", 2020, 90, 2019, 100, 90},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("ComputeIndex mismatch (-want +got):\n%s", diff)
	}
	checkBase(t, got)
}

func TestComputeIndexFixedYear(t *testing.T) {
	got := ComputeIndex(indexRecs, indexDir, IndexOptions{Base: FixedYear(2020)})
	want := []IndexPoint{
		{"Private nonprofit", 2020, 40, 2020, 40, 100},
		{"Public", 2019, 200, 2020, 240, 100 * 200.0 / 240},
		{"Public", 2020, 240, 2020, 240, 100},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("ComputeIndex mismatch (-want +got):\n%s", diff)
	}
	checkBase(t, got)
}

// checkBase checks that every point in its group's base year has an
// index of exactly 100.
func checkBase(t *testing.T, points []IndexPoint) {
	t.Helper()
	for _, p := range points {
		if p.Year == p.BaseYear && p.Index != 100 {
			t.Errorf("%s base year %d has index %v, want exactly 100", p.Group, p.Year, p.Index)
		}
	}
}

func TestBaseRules(t *testing.T) {
	years := []int{2021, 2018, 2020}
	if got := EarliestYear(years); got != 1 {
		t.Errorf("EarliestYear(%v) = %d, want 1", years, got)
	}
	if got := FixedYear(2020)(years); got != 2 {
		t.Errorf("FixedYear(2020)(%v) = %d, want 2", years, got)
	}
	if got := FixedYear(1999)(years); got != 1 {
		t.Errorf("FixedYear(1999)(%v) = %d, want 1", years, got)
	}
}

func TestParseOptions(t *testing.T) {
	for _, m := range []Metric{MetricEnrolled, MetricApplied, MetricApplicantRatio} {
		if got, err := ParseMetric(m.String()); err != nil || got != m {
			t.Errorf("ParseMetric(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMetric("yield"); err == nil {
		t.Errorf("ParseMetric(yield) succeeded")
	}
	for _, g := range []GroupBy{GroupByControl, GroupByInstitution} {
		if got, err := ParseGroupBy(g.String()); err != nil || got != g {
			t.Errorf("ParseGroupBy(%q) = %v, %v", g.String(), got, err)
		}
	}
	if _, err := ParseGroupBy("state"); err == nil {
		t.Errorf("ParseGroupBy(state) succeeded")
	}
}

func TestSummarizeRatios(t *testing.T) {
	ratios := []Ratio{
		{InstitutionID: 1, Year: 2020, Control: Public, Ratio: 3},
		{InstitutionID: 2, Year: 2020, Control: Public, Ratio: 1},
		{InstitutionID: 3, Year: 2020, Control: Public, Ratio: 2},
		{InstitutionID: 4, Year: 2020, Control: PrivateNonprofit, Ratio: 5},
		{InstitutionID: 1, Year: 2019, Control: Public, Ratio: 4},
	}
	got := SummarizeRatios(ratios)
	want := []RatioSummary{
		{Control: Public, Year: 2019, N: 1, Mean: 4, Median: 4, Q1: 4, Q3: 4, GeoMean: 4},
		{Control: Public, Year: 2020, N: 3, Mean: 2, Median: 2, GeoMean: math.Cbrt(6)},
		{Control: PrivateNonprofit, Year: 2020, N: 1, Mean: 5, Median: 5, Q1: 5, Q3: 5, GeoMean: 5},
	}
	// Quartiles of a three-element sample depend on the estimator.
	for i := range got {
		if got[i].N > 1 {
			if !(1 <= got[i].Q1 && got[i].Q1 <= got[i].Median && got[i].Median <= got[i].Q3 && got[i].Q3 <= 3) {
				t.Errorf("%v %d: quartiles %v, %v, %v out of order", got[i].Control, got[i].Year, got[i].Q1, got[i].Median, got[i].Q3)
			}
			got[i].Q1, got[i].Q3 = 0, 0
		}
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("SummarizeRatios mismatch (-want +got):\n%s", diff)
	}
	if len(SummarizeRatios(nil)) != 0 {
		t.Errorf("SummarizeRatios(nil) not empty")
	}
}
