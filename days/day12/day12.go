// Package day12 solves "Hot Springs": count the ways unknown springs can be
// filled in to match the damaged-group record.
package day12

import (
	"fmt"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 12, Title: "Hot Springs", PartA: PartA, PartB: PartB}

// Record is one row: springs ('.', '#', '?') and damaged run lengths.
type Record struct {
	Springs string
	Groups  []int
}

// ParseRecord reads "???.### 1,1,3".
func ParseRecord(row string) (Record, error) {
	f := strings.Fields(row)
	if len(f) != 2 || strings.Trim(f[0], ".#?") != "" {
		return Record{}, fmt.Errorf("%w: record %q", input.ErrMalformed, row)
	}
	groups, err := input.Ints[int](strings.ReplaceAll(f[1], ",", " "))
	if err != nil {
		return Record{}, err
	}
	for _, g := range groups {
		if g <= 0 {
			return Record{}, fmt.Errorf("%w: group %d in %q", input.ErrMalformed, g, row)
		}
	}
	return Record{Springs: f[0], Groups: groups}, nil
}

// Unfold repeats the springs n times joined by '?' and the groups n times.
func (r Record) Unfold(n int) Record {
	springs := make([]string, n)
	var groups []int
	for i := range n {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements counts fillings of '?' consistent with Groups.
func (r Record) Arrangements() int64 {
	s, g := r.Springs, r.Groups
	// ways[i][j]: arrangements of s[i:] matching g[j:].
	ways := make([][]int64, len(s)+2)
	for i := range ways {
		ways[i] = make([]int64, len(g)+1)
	}
	ways[len(s)][len(g)] = 1
	ways[len(s)+1][len(g)] = 1

	for i := len(s) - 1; i >= 0; i-- {
		for j := len(g); j >= 0; j-- {
			var n int64
			if s[i] != '#' {
				n += ways[i+1][j]
			}
			if s[i] != '.' && j < len(g) && fits(s, i, g[j]) {
				// The group is followed by a working spring or the end.
				n += ways[min(i+g[j]+1, len(s)+1)][j+1]
			}
			ways[i][j] = n
		}
	}
	return ways[0][0]
}

// fits reports whether a damaged run of length n can start at s[i].
func fits(s string, i, n int) bool {
	if i+n > len(s) || strings.ContainsRune(s[i:i+n], '.') {
		return false
	}
	return i+n == len(s) || s[i+n] != '#'
}

func total(rows []string, fold int) (int64, error) {
	var sum int64
	for _, row := range rows {
		r, err := ParseRecord(row)
		if err != nil {
			return 0, err
		}
		sum += r.Unfold(fold).Arrangements()
	}
	return sum, nil
}

// PartA sums arrangements over all records.
func PartA(rows []string) (int64, error) { return total(rows, 1) }

// PartB does the same after unfolding every record five times.
func PartB(rows []string) (int64, error) { return total(rows, 5) }
