// Package day13 solves "Point of Incidence": locate the mirror line in each
// pattern of ash and rocks.
package day13

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 13, Title: "Point of Incidence", PartA: PartA, PartB: PartB}

// ErrTooWide indicates a pattern with a side longer than 64 cells.
var ErrTooWide = errors.New("day13: pattern side exceeds 64 cells")

func decode(r rune) (bool, error) {
	switch r {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, fmt.Errorf("unknown cell %q", r)
}

// Pattern holds one pattern packed as bitmasks, one per row and per column.
type Pattern struct {
	Rows []uint64
	Cols []uint64
}

func pack(line []bool) uint64 {
	var v uint64
	for _, rock := range line {
		v <<= 1
		if rock {
			v |= 1
		}
	}
	return v
}

// ParsePattern decodes one block of rows.
func ParsePattern(rows []string) (Pattern, error) {
	g, err := grid.FromRows(rows, decode)
	if err != nil {
		return Pattern{}, err
	}
	if g.Width > 64 || g.Height > 64 {
		return Pattern{}, fmt.Errorf("%w: %d×%d", ErrTooWide, g.Width, g.Height)
	}

	p := Pattern{Rows: make([]uint64, g.Height), Cols: make([]uint64, g.Width)}
	for r := range p.Rows {
		p.Rows[r] = pack(g.Row(r))
	}
	for c := range p.Cols {
		p.Cols[c] = pack(g.Column(c))
	}

	return p, nil
}

// Mirror returns the number of lines before the first mirror position in
// values that differs from a perfect reflection in exactly smudges cells,
// or 0 when there is none.
func Mirror(values []uint64, smudges int) int {
	for mid := 1; mid < len(values); mid++ {
		diff := 0
		for i := 1; i <= min(mid, len(values)-mid) && diff <= smudges; i++ {
			diff += bits.OnesCount64(values[mid-i] ^ values[mid+i-1])
		}
		if diff == smudges {
			return mid
		}
	}
	return 0
}

// Summary is columns left of the vertical mirror plus 100 times rows above
// the horizontal one.
func (p Pattern) Summary(smudges int) int {
	return Mirror(p.Cols, smudges) + 100*Mirror(p.Rows, smudges)
}

func total(rows []string, smudges int) (int64, error) {
	var sum int64
	for i, block := range input.Blocks(rows) {
		p, err := ParsePattern(block)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		sum += int64(p.Summary(smudges))
	}
	return sum, nil
}

// PartA summarizes the exact mirrors.
func PartA(rows []string) (int64, error) { return total(rows, 0) }

// PartB summarizes the mirrors after fixing exactly one smudge.
func PartB(rows []string) (int64, error) { return total(rows, 1) }
