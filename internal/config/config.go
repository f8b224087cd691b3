// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings shared by the datanotes tools
// from an optional YAML file, with environment variable overrides.
package config

import (
	"fmt"
	"sort"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aclements/datanotes/roster"
)

// Config is the configuration of the datanotes tools.
type Config struct {
	Roster RosterConfig `yaml:"roster"`
	Chart  ChartConfig  `yaml:"chart"`
}

// RosterConfig configures roster graph building.
type RosterConfig struct {
	// ContinentOverrides maps national team names to continent
	// names. It takes precedence over the continent table. If the
	// configuration does not set it, DefaultOverrides is used.
	ContinentOverrides map[string]string `yaml:"continent_overrides"`
}

// ChartConfig configures SVG charts.
type ChartConfig struct {
	Width  int `yaml:"width" env:"DATANOTES_CHART_WIDTH" env-default:"800"`
	Height int `yaml:"height" env:"DATANOTES_CHART_HEIGHT" env-default:"500"`

	// Viewer is the command used to open a chart. The chart's
	// path is appended to its arguments. If empty, a platform
	// default is used.
	Viewer string `yaml:"viewer" env:"DATANOTES_VIEWER"`
}

// DefaultOverrides is the continent override table used when the
// configuration has none. The home nations of the United Kingdom play
// as separate national teams but are not countries in most reference
// tables.
var DefaultOverrides = map[string]string{
	"England": "Europe",
}

// Load reads the configuration file at path, then applies
// environment variable overrides. If path is "", only defaults and
// the environment are used.
func Load(path string) (*Config, error) {
	cfg := new(Config)
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("reading configuration from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", path, err)
	}

	if cfg.Roster.ContinentOverrides == nil {
		cfg.Roster.ContinentOverrides = make(map[string]string)
		for k, v := range DefaultOverrides {
			cfg.Roster.ContinentOverrides[k] = v
		}
	}
	if _, err := cfg.Roster.Overrides(); err != nil {
		return nil, err
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return nil, fmt.Errorf("bad chart size %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	return cfg, nil
}

// Overrides parses the continent override table.
func (c *RosterConfig) Overrides() (roster.Overrides, error) {
	teams := make([]string, 0, len(c.ContinentOverrides))
	for team := range c.ContinentOverrides {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	o := make(roster.Overrides, len(teams))
	for _, team := range teams {
		name := c.ContinentOverrides[team]
		cont, ok := roster.ParseContinent(name)
		if !ok || cont == roster.NoContinent {
			return nil, fmt.Errorf("continent override for %s: unknown continent %q", team, name)
		}
		o[team] = cont
	}
	return o, nil
}
