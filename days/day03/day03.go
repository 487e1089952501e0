// Package day03 solves "Gear Ratios": find part numbers next to symbols in
// an engine schematic.
package day03

import (
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 3, Title: "Gear Ratios", PartA: PartA, PartB: PartB}

// Number is a run of digits on one row.
type Number struct {
	Value int
	Start grid.Point // leftmost digit
	Len   int
}

// Schematic is the parsed engine schematic.
type Schematic struct {
	*grid.Grid[rune]
	Numbers []Number
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isSymbol reports anything that is neither a digit nor '.'.
func isSymbol(r rune) bool { return r != '.' && !isDigit(r) }

// Parse reads the schematic and collects every number.
func Parse(rows []string) (*Schematic, error) {
	g, err := grid.FromRows(rows, grid.Runes)
	if err != nil {
		return nil, err
	}
	s := &Schematic{Grid: g}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; {
			r, _ := g.At(col, row)
			if !isDigit(r) {
				col++
				continue
			}
			n := Number{Start: grid.Point{Col: col, Row: row}}
			for ; col < g.Width; col++ {
				r, _ = g.At(col, row)
				if !isDigit(r) {
					break
				}
				n.Value = n.Value*10 + int(r-'0')
				n.Len++
			}
			s.Numbers = append(s.Numbers, n)
		}
	}
	return s, nil
}

// around lists the in-bounds cells bordering n, diagonals included.
func (s *Schematic) around(n Number) []grid.Point {
	var out []grid.Point
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= n.Len; dc++ {
			if dr == 0 && dc >= 0 && dc < n.Len {
				continue
			}
			if p := n.Start.Add(dc, dr); s.Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// PartA sums numbers adjacent to any symbol.
func PartA(rows []string) (int64, error) {
	s, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range s.Numbers {
		for _, p := range s.around(n) {
			if r, _ := s.AtPoint(p); isSymbol(r) {
				total += int64(n.Value)
				break
			}
		}
	}
	return total, nil
}

// PartB sums the gear ratios: the product of the two numbers next to a '*'
// that touches exactly two numbers.
func PartB(rows []string) (int64, error) {
	s, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	gears := make(map[grid.Point][]int)
	for _, n := range s.Numbers {
		for _, p := range s.around(n) {
			if r, _ := s.AtPoint(p); r == '*' {
				gears[p] = append(gears[p], n.Value)
			}
		}
	}
	var total int64
	for _, parts := range gears {
		if len(parts) == 2 {
			total += int64(parts[0] * parts[1])
		}
	}
	return total, nil
}
