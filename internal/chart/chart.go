// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders time series tables as SVG line charts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
)

// Spec describes a line chart of a table.
type Spec struct {
	// X and Y name the columns plotted on each axis.
	X, Y string

	// Series names the column that splits the data into lines.
	// Each line is colored and labeled by its value. If Series
	// is "", all data is one line.
	Series string

	Title          string
	XLabel, YLabel string

	// IncludeY lists values the Y axis always shows, such as a
	// baseline.
	IncludeY []float64

	// Width and Height are the size of the chart in pixels.
	Width, Height int
}

// WriteSVG plots data as described by s and writes it to w as SVG.
func WriteSVG(w io.Writer, data table.Grouping, s Spec) error {
	if numRows(data) == 0 {
		return errors.New("no data to plot")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("bad chart size %dx%d", s.Width, s.Height)
	}

	plot := gg.NewPlot(data)
	if len(s.IncludeY) > 0 {
		y := gg.NewLinearScaler()
		for _, v := range s.IncludeY {
			y.Include(v)
		}
		plot.SetScale("y", y)
	}
	plot.Add(gg.LayerLines{X: s.X, Y: s.Y, Color: s.Series})
	plot.Add(gg.LayerPoints{X: s.X, Y: s.Y, Color: s.Series})
	if s.Series != "" {
		plot.Add(gg.LayerTags{X: s.X, Y: s.Y, Label: s.Series})
	}
	if s.Title != "" {
		plot.Add(gg.Title(s.Title))
	}
	if s.XLabel != "" {
		plot.Add(gg.AxisLabel("x", s.XLabel))
	}
	if s.YLabel != "" {
		plot.Add(gg.AxisLabel("y", s.YLabel))
	}
	return plot.WriteSVG(w, s.Width, s.Height)
}

func numRows(g table.Grouping) int {
	if g == nil {
		return 0
	}
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// Open starts viewer to display the file at path and does not wait
// for it to exit. viewer is a shell-quoted command line; path is
// appended as its last argument. If viewer is "", a platform default
// is used.
func Open(viewer, path string) error {
	argv, err := viewerCommand(viewer, path)
	if err != nil {
		return err
	}
	return exec.Command(argv[0], argv[1:]...).Start()
}

func viewerCommand(viewer, path string) ([]string, error) {
	if viewer == "" {
		viewer = defaultViewer(runtime.GOOS)
	}
	argv, err := shellquote.Split(viewer)
	if err != nil {
		return nil, fmt.Errorf("parsing viewer command %q: %w", viewer, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty viewer command")
	}
	return append(argv, path), nil
}

func defaultViewer(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return `cmd /c start ""`
	}
	return "xdg-open"
}
