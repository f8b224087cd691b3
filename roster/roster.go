// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roster turns a tournament squad list into a weighted graph
// of clubs and the national teams their players represent.
//
// The input is a roster table with one row per player giving the
// player's national team and club, plus a reference table mapping
// country names to continents. Build produces a Graph whose nodes
// are every distinct club and national team and whose edges connect
// a club to a national team, weighted by the number of players the
// club sends to that team. Summarize then reduces the graph to a
// per-team breakdown of club-teammate clusters.
package roster

import (
	"fmt"
	"io"

	"github.com/aclements/datanotes/internal/csvtab"
)

// Player is one row of a roster table.
type Player struct {
	Name         string
	NationalTeam string
	Club         string
}

var playerColumns = []csvtab.Column{
	{Name: "player", Aliases: []string{"player", "player_name", "name"}},
	{Name: "national team", Aliases: []string{"national_team", "team", "nation", "country"}},
	{Name: "club", Aliases: []string{"club", "club_team"}},
}

// ReadPlayers reads a CSV roster table from r. The first row must be
// a header naming the player, national team, and club columns; other
// columns are ignored. Names are cleaned with CleanName.
func ReadPlayers(r io.Reader) ([]Player, error) {
	tab, err := csvtab.Read(r, "roster", playerColumns...)
	if err != nil {
		return nil, err
	}
	if tab == nil {
		return []Player{}, nil
	}

	names := csvtab.Strings(tab, "player")
	teams := csvtab.Strings(tab, "national team")
	clubs := csvtab.Strings(tab, "club")
	players := make([]Player, len(names))
	for i := range names {
		p := Player{CleanName(names[i]), CleanName(teams[i]), CleanName(clubs[i])}
		if p.NationalTeam == "" {
			return nil, fmt.Errorf("roster line %d: missing national team", i+2)
		}
		if p.Club == "" {
			return nil, fmt.Errorf("roster line %d: missing club", i+2)
		}
		players[i] = p
	}
	return players, nil
}
