// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"fmt"
	"image/color"
	"io"
	"sort"

	"github.com/aclements/go-gg/palette/brewer"

	"github.com/aclements/datanotes/internal/csvtab"
)

// Continent classifies a national team geographically.
type Continent int

const (
	// Unknown is the continent of a national team that appears in
	// neither the override table nor the lookup table.
	Unknown Continent = iota
	Asia
	Europe
	Africa
	Oceania
	Americas

	// NoContinent is the continent of every club node. Clubs are
	// not geographically classified.
	NoContinent
)

var continentNames = [...]string{
	Unknown:     "Unknown",
	Asia:        "Asia",
	Europe:      "Europe",
	Africa:      "Africa",
	Oceania:     "Oceania",
	Americas:    "Americas",
	NoContinent: "None",
}

func (c Continent) String() string {
	if c < 0 || int(c) >= len(continentNames) {
		return fmt.Sprintf("Continent(%d)", int(c))
	}
	return continentNames[c]
}

var continentAliases = map[string]Continent{
	"asia":            Asia,
	"europe":          Europe,
	"africa":          Africa,
	"oceania":         Oceania,
	"australia":       Oceania,
	"americas":        Americas,
	"america":         Americas,
	"north america":   Americas,
	"south america":   Americas,
	"central america": Americas,
	"latin america":   Americas,
	"caribbean":       Americas,
	"unknown":         Unknown,
}

// ParseContinent parses a continent name as found in reference data.
// Regional spellings of the Americas map to Americas. It reports
// false if s is not recognized.
func ParseContinent(s string) (Continent, bool) {
	c, ok := continentAliases[FoldName(s)]
	return c, ok
}

// ClubColor is the display color of every club node.
const ClubColor = "#d3d3d3"

// continentSlot indexes brewer.Dark2_8 for each continent. The last
// entry of Dark2_8 is a neutral grey, which Unknown takes.
var continentSlot = map[Continent]int{
	Asia:     0,
	Europe:   1,
	Africa:   2,
	Oceania:  3,
	Americas: 4,
	Unknown:  7,
}

// Color returns the display color of nodes on continent c as an
// "#rrggbb" string.
func (c Continent) Color() string {
	slot, ok := continentSlot[c]
	if !ok {
		return ClubColor
	}
	return hexColor(brewer.Dark2_8[slot])
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Lookup maps country names to continents. Names are matched by
// FoldName. The zero Lookup and a nil *Lookup are empty.
type Lookup struct {
	m map[string]Continent
}

// NewLookup returns a Lookup containing the given country to
// continent mapping.
func NewLookup(m map[string]Continent) *Lookup {
	l := &Lookup{m: make(map[string]Continent, len(m))}
	for name, c := range m {
		l.m[FoldName(name)] = c
	}
	return l
}

var continentColumns = []csvtab.Column{
	{Name: "country", Aliases: []string{"country", "country_name", "name", "entity"}},
	{Name: "continent", Aliases: []string{"continent", "region"}},
}

// ReadContinents reads a CSV country/continent reference table from
// r. Continent values that ParseContinent does not recognize map to
// Unknown; the reference data is not otherwise validated. If a
// country appears more than once, the first row wins.
func ReadContinents(r io.Reader) (*Lookup, error) {
	tab, err := csvtab.Read(r, "continent table", continentColumns...)
	if err != nil {
		return nil, err
	}
	l := &Lookup{m: make(map[string]Continent)}
	if tab == nil {
		return l, nil
	}
	countries := csvtab.Strings(tab, "country")
	continents := csvtab.Strings(tab, "continent")
	for i, country := range countries {
		key := FoldName(country)
		if _, ok := l.m[key]; ok || key == "" {
			continue
		}
		c, _ := ParseContinent(continents[i])
		l.m[key] = c
	}
	return l, nil
}

// Continent returns the continent of country, and whether country
// was present.
func (l *Lookup) Continent(country string) (Continent, bool) {
	if l == nil {
		return Unknown, false
	}
	c, ok := l.m[FoldName(country)]
	return c, ok
}

// Len returns the number of countries in l.
func (l *Lookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.m)
}

// Overrides force the continent of specific national team names,
// regardless of the lookup table. They exist for names whose roster
// spelling differs from the reference data (for example, a home
// nation that the reference data only knows as part of a larger
// state). Keys are matched by FoldName.
type Overrides map[string]Continent

// Names returns the override keys in sorted order, for display.
func (o Overrides) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o Overrides) folded() map[string]Continent {
	m := make(map[string]Continent, len(o))
	for name, c := range o {
		m[FoldName(name)] = c
	}
	return m
}

// resolveContinent returns the continent of national team name,
// consulting overrides (already folded) before lookup.
func resolveContinent(name string, lookup *Lookup, overrides map[string]Continent) Continent {
	if c, ok := overrides[FoldName(name)]; ok {
		return c
	}
	if c, ok := lookup.Continent(name); ok {
		return c
	}
	return Unknown
}
