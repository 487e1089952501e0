// Package day01 solves "Trebuchet?!": recover calibration values from the
// first and last digit of each row.
package day01

import (
	"fmt"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 1, Title: "Trebuchet?!", PartA: PartA, PartB: PartB}

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at s[i]. Spelled-out digits count
// only when spelled is set; spellings may overlap ("eightwo" holds 8 and 2).
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if spelled {
		for d, w := range words {
			if strings.HasPrefix(s[i:], w) {
				return d, true
			}
		}
	}
	return 0, false
}

// Calibration combines the first and last digit of row into a two-digit
// number.
func Calibration(row string, spelled bool) (int, error) {
	first, last, found := 0, 0, false
	for i := 0; i < len(row); i++ {
		d, ok := digitAt(row, i, spelled)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}
	if !found {
		return 0, fmt.Errorf("%w: no digit in %q", input.ErrMalformed, row)
	}
	return first*10 + last, nil
}

func sum(rows []string, spelled bool) (int64, error) {
	var total int64
	for _, row := range rows {
		v, err := Calibration(strings.TrimSpace(row), spelled)
		if err != nil {
			return 0, err
		}
		total += int64(v)
	}
	return total, nil
}

// PartA uses numeric digits only.
func PartA(rows []string) (int64, error) { return sum(rows, false) }

// PartB also accepts digits spelled out as words.
func PartB(rows []string) (int64, error) { return sum(rows, true) }
