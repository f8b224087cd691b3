// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/aclements/datanotes/admissions"
)

const testAdmissions = `unitid,year,sex,ftpt,number_applied,number_enrolled_total
1,2019,99,99,400,100
1,2019,1,99,150,40
2,2019,99,99,600,100
1,2020,99,99,600,150
2,2020,99,99,900,90
3,2020,99,99,80,40
3,2021,99,99,0,40
4,2020,99,99,50,10
`

const testDirectory = `unitid,year,inst_name,inst_control
1,2019,One,1
2,2019,Two,1
1,2020,One,1
2,2020,Two,1
3,2020,Three,2
3,2021,Three,2
`

func writeInputs(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	adm := filepath.Join(dir, "admissions.csv")
	inst := filepath.Join(dir, "directory.csv")
	if err := os.WriteFile(adm, []byte(testAdmissions), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(inst, []byte(testDirectory), 0644); err != nil {
		t.Fatal(err)
	}
	return []string{"--admissions", adm, "--directory", inst}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	t.Logf("log output:\n%s", stderr.String())
	return stdout.String(), err
}

func TestRatiosJSON(t *testing.T) {
	args := append([]string{"ratios", "--format", "json"}, writeInputs(t)...)
	out, err := run(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	type ratio struct {
		ID      int     `json:"unitid"`
		Year    int     `json:"year"`
		Control string  `json:"control"`
		Ratio   float64 `json:"ratio"`
	}
	var got []ratio
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	want := []ratio{
		{1, 2019, "Public", 4},
		{1, 2020, "Public", 4},
		{2, 2019, "Public", 6},
		{2, 2020, "Public", 10},
		{3, 2020, "Private nonprofit", 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ratios mismatch (-want +got):\n%s", diff)
	}
}

func TestRatiosTable(t *testing.T) {
	args := append([]string{"ratios"}, writeInputs(t)...)
	out, err := run(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header and 5 rows:\n%s", len(lines), out)
	}
	for _, want := range []string{"unitid", "ratio"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(out, "10.000") {
		t.Errorf("table missing ratio 10.000:\n%s", out)
	}
}

func TestIndex(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "index.svg")
	args := append([]string{"index", "--format", "json", "--svg", svg}, writeInputs(t)...)
	out, err := run(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	var got []admissions.IndexPoint
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	want := []admissions.IndexPoint{
		{Group: "Private nonprofit", Year: 2020, Value: 40, BaseYear: 2020, BaseValue: 40, Index: 100},
		{Group: "Public", Year: 2019, Value: 200, BaseYear: 2019, BaseValue: 200, Index: 100},
		{Group: "Public", Year: 2020, Value: 240, BaseYear: 2019, BaseValue: 200, Index: 120},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("%s is not SVG", svg)
	}
}

func TestIndexOptions(t *testing.T) {
	args := append([]string{"index", "--format", "json", "--metric", "applied", "--group-by", "institution", "--base-year", "2020"}, writeInputs(t)...)
	out, err := run(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	var got []admissions.IndexPoint
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	idx := make(map[string][]float64)
	for _, p := range got {
		if p.BaseYear != 2020 {
			t.Errorf("%s %d: base year %d, want 2020", p.Group, p.Year, p.BaseYear)
		}
		idx[p.Group] = append(idx[p.Group], p.Index)
	}
	want := map[string][]float64{
		"One (1)":   {100 * 400.0 / 600, 100},
		"Two (2)":   {100 * 600.0 / 900, 100},
		"Three (3)": {100},
	}
	if diff := cmp.Diff(want, idx, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary(t *testing.T) {
	args := append([]string{"summary", "--format", "json"}, writeInputs(t)...)
	out, err := run(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	type summary struct {
		Control string  `json:"control"`
		Year    int     `json:"year"`
		N       int     `json:"n"`
		Mean    float64 `json:"mean"`
	}
	var got []summary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	want := []summary{
		{"Public", 2019, 2, 5},
		{"Public", 2020, 2, 7},
		{"Private nonprofit", 2020, 1, 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	inputs := writeInputs(t)
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"ratios"}, "not set"},
		{append([]string{"ratios", "--format", "svg"}, inputs...), `unknown format "svg"`},
		{append([]string{"index", "--metric", "yield"}, inputs...), `unknown metric "yield"`},
		{append([]string{"index", "--group-by", "state"}, inputs...), `unknown grouping "state"`},
		{[]string{"summary", "--admissions", inputs[1], "--directory", inputs[1] + ".missing"}, ".missing"},
	} {
		_, err := run(t, test.args...)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%v: got error %v, want error containing %q", test.args, err, test.want)
		}
	}
}
