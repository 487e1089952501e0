// Package day09 solves "Mirage Maintenance": extrapolate integer sequences
// by repeated differencing.
package day09

import (
	"fmt"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 9, Title: "Mirage Maintenance", PartA: PartA, PartB: PartB}

// Extrapolate returns the values one step before the first and one step
// after the last element of seq. seq must be non-empty.
func Extrapolate(seq []int64) (before, after int64) {
	first, last := seq[0], seq[len(seq)-1]

	diffs := make([]int64, len(seq)-1)
	allZero := true
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
		if diffs[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		return first, last
	}
	b, a := Extrapolate(diffs)

	return first - b, last + a
}

func sum(rows []string, pick func(before, after int64) int64) (int64, error) {
	var total int64
	for i, row := range rows {
		seq, err := input.Ints[int64](row)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(seq) == 0 {
			return 0, fmt.Errorf("%w: row %d is empty", input.ErrMalformed, i+1)
		}
		total += pick(Extrapolate(seq))
	}

	return total, nil
}

// PartA sums the next value of every sequence.
func PartA(rows []string) (int64, error) {
	return sum(rows, func(_, after int64) int64 { return after })
}

// PartB sums the previous value of every sequence.
func PartB(rows []string) (int64, error) {
	return sum(rows, func(before, _ int64) int64 { return before })
}
