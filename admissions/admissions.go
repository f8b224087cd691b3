// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package admissions computes how competitive college admissions are
// over time, from IPEDS admissions and institution directory data as
// published by the Urban Institute's Education Data Portal.
//
// ComputeRatios gives the number of applicants per enrolled student
// at each institution in each year. ComputeIndex sums a metric over a
// group of institutions (by default, by institution control) and
// indexes each group's series to 100 at the group's earliest year.
//
// Both operations inner-join admissions records to the directory on
// (institution, year) and use only rows where both the number of
// applicants and the number of enrolled students are known and
// positive. Rows without a directory entry and rows with missing or
// zero counts are silently left out, which changes the group totals
// accordingly.
package admissions

import (
	"fmt"
	"strconv"
	"strings"
)

// Control is how an institution is controlled and funded, using the
// IPEDS inst_control codes.
type Control int

const (
	ControlUnknown   Control = 0
	Public           Control = 1
	PrivateNonprofit Control = 2
	PrivateForProfit Control = 3
)

func (c Control) String() string {
	switch c {
	case ControlUnknown:
		return "Unknown"
	case Public:
		return "Public"
	case PrivateNonprofit:
		return "Private nonprofit"
	case PrivateForProfit:
		return "Private for-profit"
	}
	return fmt.Sprintf("Control(%d)", int(c))
}

// MarshalText encodes c as its String form.
func (c Control) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

var controlNames = map[string]Control{
	"public":                 Public,
	"private nonprofit":      PrivateNonprofit,
	"private non-profit":     PrivateNonprofit,
	"private not-for-profit": PrivateNonprofit,
	"private for-profit":     PrivateForProfit,
	"private forprofit":      PrivateForProfit,
	"for-profit":             PrivateForProfit,
}

// ParseControl parses an inst_control value, either a numeric code or
// a name. IPEDS missing-data codes (negative numbers) and anything
// unrecognized give ControlUnknown.
func ParseControl(s string) Control {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= int(Public) && n <= int(PrivateForProfit) {
			return Control(n)
		}
		return ControlUnknown
	}
	return controlNames[strings.ToLower(s)]
}

// Record is one institution's admissions counts for one year, for the
// total of all sexes and attendance statuses.
//
// Missing counts are NaN.
type Record struct {
	InstitutionID int
	Year          int
	Applied       float64
	Enrolled      float64
}

// Institution is one institution's directory entry for one year.
type Institution struct {
	InstitutionID int
	Year          int
	Name          string
	Control       Control
}

// Ratio is the applicants per enrolled student of one institution in
// one year.
type Ratio struct {
	InstitutionID int     `json:"unitid"`
	Year          int     `json:"year"`
	Name          string  `json:"name"`
	Control       Control `json:"control"`

	Applied  float64 `json:"applied"`
	Enrolled float64 `json:"enrolled"`
	Ratio    float64 `json:"ratio"`
}

// IndexPoint is one year of one group's indexed series.
type IndexPoint struct {
	Group string `json:"group"`
	Year  int    `json:"year"`

	// Value is the group's metric in Year.
	Value float64 `json:"value"`

	// BaseYear is the group's base year and BaseValue its metric
	// in that year.
	BaseYear  int     `json:"base_year"`
	BaseValue float64 `json:"base_value"`

	// Index is 100 * Value / BaseValue. It is exactly 100 in the
	// base year.
	Index float64 `json:"index"`
}
