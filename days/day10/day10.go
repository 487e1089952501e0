// Package day10 solves "Pipe Maze": find the loop through the start tile,
// its farthest point and the tiles it encloses.
package day10

import (
	"errors"
	"fmt"

	"github.com/Papperslappen/aoc2023/bfs"
	"github.com/Papperslappen/aoc2023/dijkstra"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 10, Title: "Pipe Maze", PartA: PartA, PartB: PartB}

var (
	// ErrNoStart indicates a map without an 'S' tile.
	ErrNoStart = errors.New("day10: no start tile")

	// ErrBadStart indicates a start tile that does not join exactly two pipes.
	ErrBadStart = errors.New("day10: start tile does not join two pipes")
)

// Tile is the set of directions a tile opens towards, one bit per
// grid.Direction, plus a marker bit for the start tile.
type Tile uint8

const start Tile = 1 << 4

func opens(ds ...grid.Direction) Tile {
	var t Tile
	for _, d := range ds {
		t |= 1 << d
	}
	return t
}

var tiles = map[rune]Tile{
	'|': opens(grid.North, grid.South),
	'-': opens(grid.East, grid.West),
	'L': opens(grid.North, grid.East),
	'J': opens(grid.North, grid.West),
	'7': opens(grid.South, grid.West),
	'F': opens(grid.South, grid.East),
	'.': 0,
	'S': start | opens(grid.Directions[:]...),
}

// Opens reports whether t connects towards d.
func (t Tile) Opens(d grid.Direction) bool { return t&(1<<d) != 0 }

// decode is the grid.Decoder for the maze.
func decode(r rune) (Tile, error) {
	t, ok := tiles[r]
	if !ok {
		return 0, fmt.Errorf("unknown tile %q", r)
	}
	return t, nil
}

// Maze is a parsed pipe map with its start position.
type Maze struct {
	*grid.Grid[Tile]
	Start grid.Point
}

// Parse decodes rows into a Maze.
func Parse(rows []string) (*Maze, error) {
	g, err := grid.FromRows(rows, decode)
	if err != nil {
		return nil, err
	}
	s, ok := g.Find(func(t Tile) bool { return t&start != 0 })
	if !ok {
		return nil, ErrNoStart
	}

	return &Maze{Grid: g, Start: s}, nil
}

// Connected lists the tiles p is joined to: p opens towards them and they
// open back towards p. The start tile opens everywhere, so it joins exactly
// the pipes that point at it.
func (m *Maze) Connected(p grid.Point) []grid.Point {
	t, ok := m.AtPoint(p)
	if !ok {
		return nil
	}
	out := make([]grid.Point, 0, 2)
	for _, d := range grid.Directions {
		if !t.Opens(d) {
			continue
		}
		if q, u, ok := m.MoveDirection(p, d); ok && u.Opens(d.Opposite()) {
			out = append(out, q)
		}
	}

	return out
}

// Distances returns the step distance from the start to every loop tile.
// It fails with ErrBadStart unless exactly two pipes join the start.
func (m *Maze) Distances() (map[grid.Point]uint64, error) {
	if _, err := m.StartShape(); err != nil {
		return nil, err
	}
	g := dijkstra.NeighborFunc[grid.Point](func(p grid.Point) []dijkstra.Edge[grid.Point] {
		next := m.Connected(p)
		edges := make([]dijkstra.Edge[grid.Point], len(next))
		for i, q := range next {
			edges[i] = dijkstra.Edge[grid.Point]{To: q, Cost: 1}
		}
		return edges
	})

	return dijkstra.Explore[grid.Point](g, m.Start)
}

// Loop returns the set of tiles on the loop through the start.
// It fails with ErrBadStart unless exactly two pipes join the start.
func (m *Maze) Loop() (map[grid.Point]bool, error) {
	if _, err := m.StartShape(); err != nil {
		return nil, err
	}
	res, err := bfs.Walk[grid.Point](bfs.NeighborFunc[grid.Point](m.Connected), m.Start)
	if err != nil {
		return nil, err
	}
	loop := make(map[grid.Point]bool, len(res.Order))
	for _, p := range res.Order {
		loop[p] = true
	}

	return loop, nil
}

// StartShape returns the pipe hidden under the start tile.
func (m *Maze) StartShape() (Tile, error) {
	var shape Tile
	for _, q := range m.Connected(m.Start) {
		for _, d := range grid.Directions {
			if n, ok := m.Step(m.Start, d, 1); ok && n == q {
				shape |= 1 << d
			}
		}
	}
	n := 0
	for _, d := range grid.Directions {
		if shape.Opens(d) {
			n++
		}
	}
	if n != 2 {
		return 0, fmt.Errorf("%w: %d connections at %v", ErrBadStart, n, m.Start)
	}

	return shape, nil
}

// Enclosed counts tiles strictly inside the loop. Each row is scanned west
// to east; crossing a loop tile that opens north flips inside and outside.
func (m *Maze) Enclosed() (int, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	shape, err := m.StartShape()
	if err != nil {
		return 0, err
	}

	count := 0
	for row := 0; row < m.Height; row++ {
		inside := false
		for col := 0; col < m.Width; col++ {
			p := grid.Point{Col: col, Row: row}
			if !loop[p] {
				if inside {
					count++
				}
				continue
			}
			t, _ := m.AtPoint(p)
			if p == m.Start {
				t = shape
			}
			if t.Opens(grid.North) {
				inside = !inside
			}
		}
	}

	return count, nil
}

// PartA returns the number of steps to the loop tile farthest from the start.
func PartA(rows []string) (int64, error) {
	m, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	dist, err := m.Distances()
	if err != nil {
		return 0, err
	}
	var far uint64
	for _, d := range dist {
		far = max(far, d)
	}

	return int64(far), nil
}

// PartB counts the tiles enclosed by the loop.
func PartB(rows []string) (int64, error) {
	m, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	n, err := m.Enclosed()

	return int64(n), err
}
