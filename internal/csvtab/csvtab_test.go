// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvtab

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testCols = []Column{
	{Name: "id", Aliases: []string{"unitid", "id"}},
	{Name: "name", Aliases: []string{"inst_name", "name"}},
	{Name: "sex", Aliases: []string{"sex"}, Optional: true},
}

func TestRead(t *testing.T) {
	const csvData = `Name,extra,UnitID
Alpha,x,1
Beta,y,2
`
	tab, err := Read(strings.NewReader(csvData), "test", testCols...)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"id", "name"}; !cmp.Equal(tab.Columns(), want) {
		t.Errorf("columns = %v, want %v", tab.Columns(), want)
	}
	if diff := cmp.Diff([]string{"1", "2"}, Strings(tab, "id")); diff != "" {
		t.Errorf("id column mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, Strings(tab, "name")); diff != "" {
		t.Errorf("name column mismatch (-want +got):\n%s", diff)
	}
	if got := Strings(tab, "sex"); got != nil {
		t.Errorf("optional column present: %v", got)
	}
}

func TestReadAliasPriority(t *testing.T) {
	// "unitid" is preferred over "id" even though "id" comes first.
	tab, err := Read(strings.NewReader("id,unitid,name\n9,1,A\n"), "test", testCols...)
	if err != nil {
		t.Fatal(err)
	}
	if got := Strings(tab, "id"); !cmp.Equal(got, []string{"1"}) {
		t.Errorf("id = %v, want [1]", got)
	}
}

func TestReadErrors(t *testing.T) {
	for _, test := range []struct {
		input, err string
	}{
		{"", "reading test: missing header row"},
		{"name\nA\n", "reading test: no id column (want one of unitid, id)"},
		{"id,name\n1\n", "wrong number of fields"},
	} {
		_, err := Read(strings.NewReader(test.input), "test", testCols...)
		if err == nil || !strings.Contains(err.Error(), test.err) {
			t.Errorf("Read(%q) error = %v, want %q", test.input, err, test.err)
		}
	}
}

func TestReadHeaderOnly(t *testing.T) {
	tab, err := Read(strings.NewReader("id,name\n"), "test", testCols...)
	if err != nil || tab != nil {
		t.Errorf("Read(header only) = %v, %v; want nil, nil", tab, err)
	}
}
