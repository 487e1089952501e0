// Package day11 solves "Cosmic Expansion": sum the distances between all
// galaxy pairs after empty rows and columns grow.
package day11

import (
	"errors"
	"fmt"

	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 11, Title: "Cosmic Expansion", PartA: PartA, PartB: PartB}

// ErrScale indicates an expansion factor below 1.
var ErrScale = errors.New("day11: expansion factor must be at least 1")

func decode(r rune) (bool, error) {
	switch r {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, fmt.Errorf("unknown cell %q", r)
}

// SumDistances returns the sum of Manhattan distances over every pair of
// galaxies, where each empty row and column counts as scale rows or columns.
func SumDistances(rows []string, scale int64) (int64, error) {
	if scale < 1 {
		return 0, fmt.Errorf("%w: %d", ErrScale, scale)
	}
	g, err := grid.FromRows(rows, decode)
	if err != nil {
		return 0, err
	}

	var galaxies []grid.Point
	usedCol := make([]bool, g.Width)
	usedRow := make([]bool, g.Height)
	for p, galaxy := range g.All() {
		if galaxy {
			galaxies = append(galaxies, p)
			usedCol[p.Col] = true
			usedRow[p.Row] = true
		}
	}

	// prefix(used)[i] counts the empty lines before index i.
	prefix := func(used []bool) []int64 {
		out := make([]int64, len(used)+1)
		for i, u := range used {
			out[i+1] = out[i]
			if !u {
				out[i+1]++
			}
		}
		return out
	}
	emptyCols, emptyRows := prefix(usedCol), prefix(usedRow)
	between := func(empty []int64, a, b int) int64 {
		if a > b {
			a, b = b, a
		}
		return empty[b] - empty[a]
	}

	var total int64
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			gaps := between(emptyCols, a.Col, b.Col) + between(emptyRows, a.Row, b.Row)
			total += int64(a.Manhattan(b)) + (scale-1)*gaps
		}
	}

	return total, nil
}

// PartA doubles every empty line.
func PartA(rows []string) (int64, error) { return SumDistances(rows, 2) }

// PartB replaces every empty line with a million.
func PartB(rows []string) (int64, error) { return SumDistances(rows, 1_000_000) }
