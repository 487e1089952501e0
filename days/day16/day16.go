// Package day16 solves "The Floor Will Be Lava": trace a beam through
// mirrors and splitters and count the tiles it energizes.
package day16

import (
	"fmt"

	"github.com/Papperslappen/aoc2023/dfs"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 16, Title: "The Floor Will Be Lava", PartA: PartA, PartB: PartB}

// Feature is the optical element on a tile.
type Feature rune

const (
	Empty      Feature = '.'
	MirrorDown Feature = '\\'
	MirrorUp   Feature = '/'
	SplitV     Feature = '|'
	SplitH     Feature = '-'
)

func decode(r rune) (Feature, error) {
	switch f := Feature(r); f {
	case Empty, MirrorDown, MirrorUp, SplitV, SplitH:
		return f, nil
	}
	return 0, fmt.Errorf("unknown feature %q", r)
}

// Bend returns the headings a beam leaves f with after entering it
// heading d.
func (f Feature) Bend(d grid.Direction) []grid.Direction {
	switch f {
	case MirrorDown:
		// East↔South, North↔West
		if d.Horizontal() {
			return []grid.Direction{d.TurnRight()}
		}
		return []grid.Direction{d.TurnLeft()}
	case MirrorUp:
		// East↔North, West↔South
		if d.Horizontal() {
			return []grid.Direction{d.TurnLeft()}
		}
		return []grid.Direction{d.TurnRight()}
	case SplitV:
		if d.Horizontal() {
			return []grid.Direction{grid.North, grid.South}
		}
	case SplitH:
		if d.Vertical() {
			return []grid.Direction{grid.East, grid.West}
		}
	}
	return []grid.Direction{d}
}

// Beam is a beam on a tile with its heading on entry.
type Beam struct {
	At      grid.Point
	Heading grid.Direction
}

// Contraption is the parsed floor.
type Contraption struct {
	*grid.Grid[Feature]
}

// Parse decodes rows into a Contraption.
func Parse(rows []string) (*Contraption, error) {
	g, err := grid.FromRows(rows, decode)
	if err != nil {
		return nil, err
	}
	return &Contraption{Grid: g}, nil
}

// next lists the beams that b turns into on the following tiles.
func (c *Contraption) next(b Beam) []Beam {
	f, ok := c.AtPoint(b.At)
	if !ok {
		return nil
	}
	var out []Beam
	for _, d := range f.Bend(b.Heading) {
		if q, ok := c.Step(b.At, d, 1); ok {
			out = append(out, Beam{At: q, Heading: d})
		}
	}
	return out
}

// Energized counts the tiles a beam entering as b passes through.
func (c *Contraption) Energized(b Beam) (int, error) {
	res, err := dfs.Walk[Beam](dfs.NeighborFunc[Beam](c.next), b)
	if err != nil {
		return 0, err
	}
	tiles := make(map[grid.Point]struct{}, len(res.Visited))
	for beam := range res.Visited {
		tiles[beam.At] = struct{}{}
	}
	return len(tiles), nil
}

// Entries lists every beam entering from the edge, heading inwards.
func (c *Contraption) Entries() []Beam {
	var out []Beam
	for col := 0; col < c.Width; col++ {
		out = append(out,
			Beam{At: grid.Point{Col: col, Row: 0}, Heading: grid.South},
			Beam{At: grid.Point{Col: col, Row: c.Height - 1}, Heading: grid.North})
	}
	for row := 0; row < c.Height; row++ {
		out = append(out,
			Beam{At: grid.Point{Col: 0, Row: row}, Heading: grid.East},
			Beam{At: grid.Point{Col: c.Width - 1, Row: row}, Heading: grid.West})
	}
	return out
}

// PartA fires the beam east from the top-left tile.
func PartA(rows []string) (int64, error) {
	c, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	n, err := c.Energized(Beam{At: grid.Point{}, Heading: grid.East})
	return int64(n), err
}

// PartB tries every edge entry and keeps the best.
func PartB(rows []string) (int64, error) {
	c, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, b := range c.Entries() {
		n, err := c.Energized(b)
		if err != nil {
			return 0, err
		}
		best = max(best, n)
	}
	return int64(best), nil
}
