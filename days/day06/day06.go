// Package day06 solves "Wait For It": count the hold times that win a boat
// race.
package day06

import (
	"fmt"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 6, Title: "Wait For It", PartA: PartA, PartB: PartB}

// Race is one race: its duration and the record distance to beat.
type Race struct {
	Time     uint64
	Distance uint64
}

// WaysToWin counts hold times h in [0, Time] with h*(Time-h) > Distance.
// The travelled distance rises until Time/2 and is symmetric, so the answer
// is found by bisecting for the first winning hold time.
func (r Race) WaysToWin() uint64 {
	beats := func(h uint64) bool { return h*(r.Time-h) > r.Distance }

	half := r.Time / 2
	if !beats(half) {
		return 0
	}
	lo, hi := uint64(0), half
	for lo < hi {
		mid := lo + (hi-lo)/2
		if beats(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return r.Time - 2*lo + 1
}

// parse reads the "Time:" and "Distance:" rows into races.
func parse(rows []string) ([]Race, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: want Time and Distance rows, got %d rows", input.ErrMalformed, len(rows))
	}
	times, err := input.Labelled[uint64](rows[0], "Time")
	if err != nil {
		return nil, err
	}
	dists, err := input.Labelled[uint64](rows[1], "Distance")
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("%w: %d times but %d distances", input.ErrMalformed, len(times), len(dists))
	}

	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: dists[i]}
	}

	return races, nil
}

// PartA multiplies the number of ways to win each race.
func PartA(rows []string) (int64, error) {
	races, err := parse(rows)
	if err != nil {
		return 0, err
	}
	product := uint64(1)
	for _, r := range races {
		product *= r.WaysToWin()
	}

	return int64(product), nil
}

// PartB reads each row as one number with the spaces removed.
func PartB(rows []string) (int64, error) {
	if len(rows) < 2 {
		return 0, fmt.Errorf("%w: want Time and Distance rows, got %d rows", input.ErrMalformed, len(rows))
	}
	t, err := input.Digits(rows[0])
	if err != nil {
		return 0, err
	}
	d, err := input.Digits(rows[1])
	if err != nil {
		return 0, err
	}

	return int64(Race{Time: t, Distance: d}.WaysToWin()), nil
}
