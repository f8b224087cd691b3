// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admissions

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/datanotes/internal/csvtab"
)

// totalCode is the IPEDS code for the "Total" slice of the sex and
// ftpt (full-time/part-time) dimensions.
const totalCode = "99"

var recordColumns = []csvtab.Column{
	{Name: "unitid", Aliases: []string{"unitid", "institution_id"}},
	{Name: "year", Aliases: []string{"year"}},
	{Name: "applied", Aliases: []string{"number_applied", "applied", "applicants"}},
	{Name: "enrolled", Aliases: []string{"number_enrolled_total", "number_enrolled", "enrolled"}},
	{Name: "sex", Aliases: []string{"sex"}, Optional: true},
	{Name: "ftpt", Aliases: []string{"ftpt"}, Optional: true},
}

var directoryColumns = []csvtab.Column{
	{Name: "unitid", Aliases: []string{"unitid", "institution_id"}},
	{Name: "year", Aliases: []string{"year"}},
	{Name: "name", Aliases: []string{"inst_name", "institution_name", "name"}},
	{Name: "control", Aliases: []string{"inst_control", "control"}},
}

// ReadRecords reads an admissions table in CSV form from r.
//
// The table must have unitid, year, number_applied, and
// number_enrolled_total (or number_enrolled) columns. If it has sex
// or ftpt columns, only rows for the total of all sexes and
// attendance statuses (code 99) are kept. Missing counts, written as
// an empty field, NA, NaN, or a negative IPEDS missing-data code,
// are NaN.
func ReadRecords(r io.Reader) ([]Record, error) {
	tab, err := csvtab.Read(r, "admissions", recordColumns...)
	if err != nil {
		return nil, err
	}
	if tab == nil {
		return []Record{}, nil
	}

	ids := csvtab.Strings(tab, "unitid")
	years := csvtab.Strings(tab, "year")
	applied := csvtab.Strings(tab, "applied")
	enrolled := csvtab.Strings(tab, "enrolled")
	sexes := csvtab.Strings(tab, "sex")
	ftpts := csvtab.Strings(tab, "ftpt")

	recs := []Record{}
	for i := range ids {
		line := i + 2
		if sexes != nil && strings.TrimSpace(sexes[i]) != totalCode {
			continue
		}
		if ftpts != nil && strings.TrimSpace(ftpts[i]) != totalCode {
			continue
		}
		id, year, err := parseKey(ids[i], years[i])
		if err != nil {
			return nil, fmt.Errorf("admissions line %d: %w", line, err)
		}
		a, err := parseCount(applied[i])
		if err != nil {
			return nil, fmt.Errorf("admissions line %d: number applied: %w", line, err)
		}
		e, err := parseCount(enrolled[i])
		if err != nil {
			return nil, fmt.Errorf("admissions line %d: number enrolled: %w", line, err)
		}
		recs = append(recs, Record{id, year, a, e})
	}
	return recs, nil
}

// ReadDirectory reads an institution directory table in CSV form from
// r. The table must have unitid, year, inst_name, and inst_control
// columns.
func ReadDirectory(r io.Reader) ([]Institution, error) {
	tab, err := csvtab.Read(r, "directory", directoryColumns...)
	if err != nil {
		return nil, err
	}
	if tab == nil {
		return []Institution{}, nil
	}

	ids := csvtab.Strings(tab, "unitid")
	years := csvtab.Strings(tab, "year")
	names := csvtab.Strings(tab, "name")
	controls := csvtab.Strings(tab, "control")

	insts := make([]Institution, len(ids))
	for i := range ids {
		id, year, err := parseKey(ids[i], years[i])
		if err != nil {
			return nil, fmt.Errorf("directory line %d: %w", i+2, err)
		}
		insts[i] = Institution{id, year, strings.TrimSpace(names[i]), ParseControl(controls[i])}
	}
	return insts, nil
}

func parseKey(id, year string) (int, int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return 0, 0, fmt.Errorf("bad unitid: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, 0, fmt.Errorf("bad year: %w", err)
	}
	return n, y, nil
}

// parseCount parses an admissions count. Missing values are NaN.
func parseCount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return math.NaN(), nil
	}
	return v, nil
}
