// Package day05 solves "If You Give A Seed A Fertilizer": push seeds, and
// later whole seed intervals, through a chain of range maps.
package day05

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 5, Title: "If You Give A Seed A Fertilizer", PartA: PartA, PartB: PartB}

// Span is the half-open interval [Start, Start+Len).
type Span struct {
	Start, Len int64
}

func (s Span) end() int64 { return s.Start + s.Len }

// Rule maps [Source, Source+Len) onto [Dest, Dest+Len).
type Rule struct {
	Dest, Source, Len int64
}

// Map is one named stage, e.g. "seed-to-soil".
type Map struct {
	Name  string
	Rules []Rule
}

// Apply maps a single value. Values no rule covers map to themselves.
func (m Map) Apply(v int64) int64 {
	for _, r := range m.Rules {
		if v >= r.Source && v < r.Source+r.Len {
			return r.Dest + v - r.Source
		}
	}
	return v
}

// ApplySpan maps s, splitting it wherever rule boundaries cut it.
func (m Map) ApplySpan(s Span) []Span {
	var out []Span
	pending := []Span{s}
	for _, r := range m.Rules {
		var rest []Span
		for _, p := range pending {
			lo, hi := max(p.Start, r.Source), min(p.end(), r.Source+r.Len)
			if lo >= hi {
				rest = append(rest, p)
				continue
			}
			out = append(out, Span{Start: r.Dest + lo - r.Source, Len: hi - lo})
			if p.Start < lo {
				rest = append(rest, Span{Start: p.Start, Len: lo - p.Start})
			}
			if hi < p.end() {
				rest = append(rest, Span{Start: hi, Len: p.end() - hi})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Almanac is the seed list followed by the map chain.
type Almanac struct {
	Seeds []int64
	Maps  []Map
}

// Parse reads "seeds: ..." and the blank-row separated maps.
func Parse(rows []string) (*Almanac, error) {
	blocks := input.Blocks(rows)
	if len(blocks) < 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: want a seeds row followed by maps", input.ErrMalformed)
	}
	seeds, err := input.Labelled[int64](blocks[0][0], "seeds")
	if err != nil {
		return nil, err
	}
	a := &Almanac{Seeds: seeds}
	for _, b := range blocks[1:] {
		name, ok := strings.CutSuffix(strings.TrimSpace(b[0]), " map:")
		if !ok {
			return nil, fmt.Errorf("%w: map header %q", input.ErrMalformed, b[0])
		}
		m := Map{Name: name}
		for _, row := range b[1:] {
			v, err := input.Ints[int64](row)
			if err != nil {
				return nil, err
			}
			if len(v) != 3 {
				return nil, fmt.Errorf("%w: map rule %q", input.ErrMalformed, row)
			}
			m.Rules = append(m.Rules, Rule{Dest: v[0], Source: v[1], Len: v[2]})
		}
		a.Maps = append(a.Maps, m)
	}
	return a, nil
}

// PartA returns the lowest location any listed seed reaches.
func PartA(rows []string) (int64, error) {
	a, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", input.ErrMalformed)
	}
	best := int64(-1)
	for _, v := range a.Seeds {
		for _, m := range a.Maps {
			v = m.Apply(v)
		}
		if best < 0 || v < best {
			best = v
		}
	}
	return best, nil
}

// PartB reads the seeds as (start, length) pairs and returns the lowest
// location any seed in those intervals reaches.
func PartB(rows []string) (int64, error) {
	a, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, fmt.Errorf("%w: seeds must come in (start, length) pairs", input.ErrMalformed)
	}
	var spans []Span
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] > 0 {
			spans = append(spans, Span{Start: a.Seeds[i], Len: a.Seeds[i+1]})
		}
	}
	for _, m := range a.Maps {
		var next []Span
		for _, s := range spans {
			next = append(next, m.ApplySpan(s)...)
		}
		spans = next
	}
	if len(spans) == 0 {
		return 0, fmt.Errorf("%w: every seed range is empty", input.ErrMalformed)
	}
	return slices.MinFunc(spans, func(x, y Span) int {
		switch {
		case x.Start < y.Start:
			return -1
		case x.Start > y.Start:
			return 1
		}
		return 0
	}).Start, nil
}
