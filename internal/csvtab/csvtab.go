// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtab reads CSV files with a header row into go-gg tables
// of strings, matching columns by any of several header spellings.
package csvtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Column describes a column to extract from a CSV file.
type Column struct {
	// Name is the column's name in the resulting table.
	Name string

	// Aliases are the header spellings that select this column,
	// in priority order. Headers are compared after lower-casing,
	// trimming, and replacing spaces with underscores.
	Aliases []string

	// Optional columns are omitted from the table if the header
	// has none of Aliases. Otherwise, a missing column is an
	// error.
	Optional bool
}

// Read reads a CSV file with a header row from r and returns a table
// containing cols, each as a []string, in order. Other columns are
// ignored. what names the file in errors.
//
// If the file has a header but no data rows, Read returns a nil
// table. Row i of the table is on line i+2 of the file.
func Read(r io.Reader, what string, cols ...Column) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", what, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s: missing header row", what)
	}

	var names []string
	var idx []int
	for _, col := range cols {
		i := findColumn(rows[0], col.Aliases)
		if i < 0 {
			if col.Optional {
				continue
			}
			return nil, fmt.Errorf("reading %s: no %s column (want one of %s)", what, col.Name, strings.Join(col.Aliases, ", "))
		}
		names = append(names, col.Name)
		idx = append(idx, i)
	}
	if len(rows) == 1 {
		return nil, nil
	}

	body := make([][]string, len(rows)-1)
	for i, row := range rows[1:] {
		body[i] = make([]string, len(idx))
		for j, k := range idx {
			body[i][j] = row[k]
		}
	}
	return table.TableFromStrings(names, body, false), nil
}

// Strings returns column name of t, or nil if t has no such column.
func Strings(t *table.Table, name string) []string {
	col := t.Column(name)
	if col == nil {
		return nil
	}
	return col.([]string)
}

// findColumn returns the index of the first header cell matching one
// of names.
func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, h := range header {
			h = strings.ToLower(strings.TrimSpace(h))
			h = strings.Replace(h, " ", "_", -1)
			if h == name {
				return i
			}
		}
	}
	return -1
}
