// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"

	"github.com/aclements/datanotes/internal/chart"
)

// plotFlags requests an SVG chart of a subcommand's results.
type plotFlags struct {
	svg  string
	view bool
}

func (p *plotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.svg, "svg", "", "also plot the results as SVG to `file`")
	cmd.Flags().BoolVar(&p.view, "view", false, "open the plot in a viewer (see chart.viewer)")
}

// plot writes data as an SVG chart, if requested, and opens it in a
// viewer if requested. Without --svg, --view plots to a temporary
// file.
func (a *app) plot(p plotFlags, data table.Grouping, spec chart.Spec) error {
	if p.svg == "" && !p.view {
		return nil
	}
	spec.Width, spec.Height = a.cfg.Chart.Width, a.cfg.Chart.Height

	var f *os.File
	var err error
	if p.svg != "" {
		f, err = os.Create(p.svg)
	} else {
		f, err = os.CreateTemp("", "admitplot-*.svg")
	}
	if err != nil {
		return err
	}
	if err := chart.WriteSVG(f, data, spec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Info("wrote plot", "path", f.Name())

	if p.view {
		a.log.Debug("opening plot", "viewer", a.cfg.Chart.Viewer)
		return chart.Open(a.cfg.Chart.Viewer, f.Name())
	}
	return nil
}
