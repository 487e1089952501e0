// Package day18 solves "Lavaduct Lagoon": measure the lagoon a dig plan
// outlines, trench included.
package day18

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 18, Title: "Lavaduct Lagoon", PartA: PartA, PartB: PartB}

// Dig is one plan step.
type Dig struct {
	Dir   grid.Direction
	Steps int64
}

var letters = map[string]grid.Direction{"R": grid.East, "U": grid.North, "L": grid.West, "D": grid.South}

// hexDirs maps the colour code's final digit.
var hexDirs = [4]grid.Direction{grid.East, grid.South, grid.West, grid.North}

// ParseDig reads "R 6 (#70c710)". With colour set, the steps and
// direction are decoded from the hex code instead.
func ParseDig(row string, colour bool) (Dig, error) {
	f := strings.Fields(row)
	if len(f) != 3 {
		return Dig{}, fmt.Errorf("%w: dig %q", input.ErrMalformed, row)
	}
	if colour {
		code, ok := strings.CutPrefix(strings.Trim(f[2], "()"), "#")
		if !ok || len(code) != 6 || code[5] < '0' || code[5] > '3' {
			return Dig{}, fmt.Errorf("%w: colour %q", input.ErrMalformed, f[2])
		}
		steps, err := strconv.ParseInt(code[:5], 16, 64)
		if err != nil {
			return Dig{}, fmt.Errorf("%w: colour %q: %v", input.ErrMalformed, f[2], err)
		}
		return Dig{Dir: hexDirs[code[5]-'0'], Steps: steps}, nil
	}
	d, ok := letters[f[0]]
	if !ok {
		return Dig{}, fmt.Errorf("%w: direction %q", input.ErrMalformed, f[0])
	}
	steps, err := input.PosInt(f[1])
	if err != nil {
		return Dig{}, err
	}
	return Dig{Dir: d, Steps: int64(steps)}, nil
}

// Area counts the cells inside the closed trench plus the trench itself.
// The shoelace formula gives the area enclosed by the cell centres; Pick's
// theorem then adds the half of each boundary cell left outside, plus one.
func Area(plan []Dig) int64 {
	var col, row, twice, perimeter int64
	for _, d := range plan {
		dc, dr := d.Dir.Offset()
		nc, nr := col+int64(dc)*d.Steps, row+int64(dr)*d.Steps
		twice += col*nr - nc*row
		perimeter += d.Steps
		col, row = nc, nr
	}
	if twice < 0 {
		twice = -twice
	}
	return twice/2 + perimeter/2 + 1
}

func solve(rows []string, colour bool) (int64, error) {
	plan := make([]Dig, 0, len(rows))
	for _, row := range rows {
		d, err := ParseDig(row, colour)
		if err != nil {
			return 0, err
		}
		plan = append(plan, d)
	}
	return Area(plan), nil
}

// PartA follows the plain plan.
func PartA(rows []string) (int64, error) { return solve(rows, false) }

// PartB follows the plan hidden in the colour codes.
func PartB(rows []string) (int64, error) { return solve(rows, true) }
