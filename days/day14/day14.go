// Package day14 solves "Parabolic Reflector Dish": tilt a platform of
// rounded rocks and measure the load on its north beams.
package day14

import (
	"fmt"
	"strings"

	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 14, Title: "Parabolic Reflector Dish", PartA: PartA, PartB: PartB}

// Cycles is the number of spin cycles in part B.
const Cycles = 1_000_000_000

// Space is one platform cell.
type Space rune

const (
	Round Space = 'O'
	Cube  Space = '#'
	Empty Space = '.'
)

func decode(r rune) (Space, error) {
	switch s := Space(r); s {
	case Round, Cube, Empty:
		return s, nil
	}
	return 0, fmt.Errorf("unknown space %q", r)
}

// Platform is a mutable copy of the parsed grid.
type Platform struct {
	Width, Height int
	spaces        []Space
}

// Parse decodes rows into a Platform.
func Parse(rows []string) (*Platform, error) {
	g, err := grid.FromRows(rows, decode)
	if err != nil {
		return nil, err
	}
	return &Platform{Width: g.Width, Height: g.Height, spaces: g.Cells()}, nil
}

func (p *Platform) at(q grid.Point) *Space { return &p.spaces[q.Col+p.Width*q.Row] }

// edge lists the cells along the wall that rocks roll towards in d.
func (p *Platform) edge(d grid.Direction) []grid.Point {
	var out []grid.Point
	switch d {
	case grid.North, grid.South:
		row := 0
		if d == grid.South {
			row = p.Height - 1
		}
		for c := 0; c < p.Width; c++ {
			out = append(out, grid.Point{Col: c, Row: row})
		}
	case grid.West, grid.East:
		col := 0
		if d == grid.East {
			col = p.Width - 1
		}
		for r := 0; r < p.Height; r++ {
			out = append(out, grid.Point{Col: col, Row: r})
		}
	}
	return out
}

// Tilt rolls every round rock as far as it goes in direction d.
// Each line is walked away from the wall while tracking the next free slot.
func (p *Platform) Tilt(d grid.Direction) {
	back := d.Opposite()
	for _, start := range p.edge(d) {
		free, freeOK := start, true
		for q, ok := start, true; ok; q, ok = back.Move(q, p.Width, p.Height) {
			switch *p.at(q) {
			case Cube:
				free, freeOK = back.Move(q, p.Width, p.Height)
			case Round:
				if !freeOK {
					continue
				}
				*p.at(q) = Empty
				*p.at(free) = Round
				free, freeOK = back.Move(free, p.Width, p.Height)
			}
		}
	}
}

// Spin tilts north, west, south, then east.
func (p *Platform) Spin() {
	for _, d := range []grid.Direction{grid.North, grid.West, grid.South, grid.East} {
		p.Tilt(d)
	}
}

// Load sums, over all round rocks, the number of rows from the rock to the
// south edge inclusive.
func (p *Platform) Load() int {
	load := 0
	for i, s := range p.spaces {
		if s == Round {
			load += p.Height - i/p.Width
		}
	}
	return load
}

// String renders the platform one row per line.
func (p *Platform) String() string {
	var b strings.Builder
	b.Grow(len(p.spaces) + p.Height)
	for i, s := range p.spaces {
		if i > 0 && i%p.Width == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(rune(s))
	}
	return b.String()
}

// LoadAfter returns the load after n spin cycles. The arrangement becomes
// periodic quickly, so states are remembered until one repeats and the
// remaining cycles are skipped.
func (p *Platform) LoadAfter(n int) int {
	seen := map[string]int{p.String(): 0}
	loads := []int{p.Load()}
	for i := 1; i <= n; i++ {
		p.Spin()
		key := p.String()
		if j, ok := seen[key]; ok {
			period := i - j
			return loads[j+(n-j)%period]
		}
		seen[key] = i
		loads = append(loads, p.Load())
	}
	return loads[n]
}

// PartA tilts north once.
func PartA(rows []string) (int64, error) {
	p, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	p.Tilt(grid.North)

	return int64(p.Load()), nil
}

// PartB runs a billion spin cycles.
func PartB(rows []string) (int64, error) {
	p, err := Parse(rows)
	if err != nil {
		return 0, err
	}

	return int64(p.LoadAfter(Cycles)), nil
}
