// Package day17 solves "Clumsy Crucible": the least heat loss route for a
// crucible that must turn after a bounded run of straight moves.
package day17

import (
	"errors"
	"fmt"

	"github.com/Papperslappen/aoc2023/dijkstra"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 17, Title: "Clumsy Crucible", PartA: PartA, PartB: PartB}

// ErrRun indicates an invalid straight-run range.
var ErrRun = errors.New("day17: invalid run range")

// Run bounds the number of blocks moved in one straight line.
type Run struct {
	Min, Max int
}

var (
	// Crucible moves one to three blocks before turning.
	Crucible = Run{Min: 1, Max: 3}
	// UltraCrucible moves four to ten blocks before turning.
	UltraCrucible = Run{Min: 4, Max: 10}
)

// State is a position together with the heading that reached it.
// The start has no heading and may leave in any direction.
type State struct {
	At      grid.Point
	Heading grid.Direction
	Moved   bool
}

func decode(r rune) (uint64, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit: %q", r)
	}
	return uint64(r - '0'), nil
}

// City is the heat loss map.
type City struct {
	*grid.Grid[uint64]
}

// Parse decodes rows of digits into a City.
func Parse(rows []string) (*City, error) {
	g, err := grid.FromRows(rows, decode)
	if err != nil {
		return nil, err
	}
	return &City{Grid: g}, nil
}

// neighbors turns a quarter left or right (any direction from the start)
// and emits each stop reachable after run.Min to run.Max straight blocks,
// costed by the heat lost on every block entered.
func (c *City) neighbors(run Run) dijkstra.NeighborFunc[State] {
	return func(s State) []dijkstra.Edge[State] {
		turns := grid.Directions[:]
		if s.Moved {
			turns = []grid.Direction{s.Heading.TurnLeft(), s.Heading.TurnRight()}
		}

		var out []dijkstra.Edge[State]
		for _, d := range turns {
			p, cost := s.At, uint64(0)
			for step := 1; step <= run.Max; step++ {
				q, loss, ok := c.MoveDirection(p, d)
				if !ok {
					break
				}
				p, cost = q, cost+loss
				if step >= run.Min {
					out = append(out, dijkstra.Edge[State]{To: State{At: p, Heading: d, Moved: true}, Cost: cost})
				}
			}
		}
		return out
	}
}

// MinHeatLoss returns the cheapest route from the top-left block to the
// bottom-right one.
func (c *City) MinHeatLoss(run Run) (*dijkstra.Result[State], error) {
	if run.Min < 1 || run.Max < run.Min {
		return nil, fmt.Errorf("%w: %d..%d", ErrRun, run.Min, run.Max)
	}
	goal := grid.Point{Col: c.Width - 1, Row: c.Height - 1}

	return dijkstra.Solve[State](c.neighbors(run), State{},
		func(s State) bool { return s.At == goal },
		dijkstra.WithEarlyExit())
}

func solve(rows []string, run Run) (int64, error) {
	c, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	res, err := c.MinHeatLoss(run)
	if err != nil {
		return 0, err
	}
	return int64(res.Cost), nil
}

// PartA uses the ordinary crucible.
func PartA(rows []string) (int64, error) { return solve(rows, Crucible) }

// PartB uses the ultra crucible.
func PartB(rows []string) (int64, error) { return solve(rows, UltraCrucible) }
