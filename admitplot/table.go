// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"
)

// outputFlags selects how a subcommand writes its results.
type outputFlags struct {
	format string
	path   string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "table", "output `format`: table or json")
	cmd.Flags().StringVarP(&o.path, "output", "o", "", "write output to `file` (default stdout)")
}

func (o *outputFlags) check() error {
	if o.format != "table" && o.format != "json" {
		return fmt.Errorf("unknown format %q (want table or json)", o.format)
	}
	return nil
}

// write writes tab, printing columns with formats, or recs as JSON,
// depending on the output format.
func (o *outputFlags) write(cmd *cobra.Command, tab *table.Table, formats []string, recs interface{}) error {
	var w io.Writer = cmd.OutOrStdout()
	var f *os.File
	if o.path != "" && o.path != "-" {
		var err error
		f, err = os.Create(o.path)
		if err != nil {
			return err
		}
		w = f
	}

	var err error
	if o.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		err = enc.Encode(recs)
	} else if tab.Len() > 0 {
		err = table.Fprint(w, tab, formats...)
	}
	if f != nil {
		if err1 := f.Close(); err == nil {
			err = err1
		}
	}
	return err
}

var (
	ratioFormats   = []string{"%d", "%d", "%s", "%s", "%.0f", "%.0f", "%.3f"}
	indexFormats   = []string{"%s", "%d", "%.6g", "%d", "%.6g", "%.2f"}
	summaryFormats = []string{"%s", "%d", "%d", "%.3f", "%.3f", "%.3f", "%.3f", "%.3f"}
)
