// Package day19 solves "Aplenty": route parts through rating workflows and
// count every rating combination the workflows accept.
package day19

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 19, Title: "Aplenty", PartA: PartA, PartB: PartB}

var (
	// ErrUnknownWorkflow indicates a rule sends parts to a missing workflow.
	ErrUnknownWorkflow = errors.New("day19: unknown workflow")
	// ErrCycle indicates workflows that send a part around a loop.
	ErrCycle = errors.New("day19: workflow cycle")
)

const (
	accept = "A"
	reject = "R"
	start  = "in"
	// MaxRating bounds every category in PartB.
	MaxRating = 4000
)

// Part holds the x, m, a and s ratings in that order.
type Part [4]int

const categories = "xmas"

// Rule sends a part to Dest when Part[Cat] compares to Value with Op.
// Op 0 always matches.
type Rule struct {
	Cat   int
	Op    byte
	Value int
	Dest  string
}

func (r Rule) matches(p Part) bool {
	switch r.Op {
	case '<':
		return p[r.Cat] < r.Value
	case '>':
		return p[r.Cat] > r.Value
	}
	return true
}

// System is the workflow table and the parts to sort.
type System struct {
	Workflows map[string][]Rule
	Parts     []Part
}

// Parse reads the workflow block and the part block.
func Parse(rows []string) (*System, error) {
	blocks := input.Blocks(rows)
	if len(blocks) == 0 || len(blocks) > 2 {
		return nil, fmt.Errorf("%w: want workflows and parts", input.ErrMalformed)
	}
	s := &System{Workflows: make(map[string][]Rule, len(blocks[0]))}
	for _, row := range blocks[0] {
		name, rules, err := parseWorkflow(row)
		if err != nil {
			return nil, err
		}
		s.Workflows[name] = rules
	}
	if len(blocks) == 2 {
		for _, row := range blocks[1] {
			p, err := parsePart(row)
			if err != nil {
				return nil, err
			}
			s.Parts = append(s.Parts, p)
		}
	}
	return s, nil
}

// parseWorkflow reads "px{a<2006:qkq,m>2090:A,rfg}".
func parseWorkflow(row string) (string, []Rule, error) {
	row = strings.TrimSpace(row)
	name, body, ok := strings.Cut(row, "{")
	if !ok || name == "" || !strings.HasSuffix(body, "}") {
		return "", nil, fmt.Errorf("%w: workflow %q", input.ErrMalformed, row)
	}
	var rules []Rule
	for _, f := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		cond, dest, ok := strings.Cut(f, ":")
		if !ok {
			rules = append(rules, Rule{Dest: f})
			continue
		}
		if len(cond) < 3 || dest == "" {
			return "", nil, fmt.Errorf("%w: rule %q", input.ErrMalformed, f)
		}
		cat := strings.IndexByte(categories, cond[0])
		if cat < 0 || (cond[1] != '<' && cond[1] != '>') {
			return "", nil, fmt.Errorf("%w: rule %q", input.ErrMalformed, f)
		}
		v, err := input.PosInt(cond[2:])
		if err != nil {
			return "", nil, err
		}
		rules = append(rules, Rule{Cat: cat, Op: cond[1], Value: int(v), Dest: dest})
	}
	if last := rules[len(rules)-1]; last.Op != 0 {
		return "", nil, fmt.Errorf("%w: workflow %q has no fallback", input.ErrMalformed, row)
	}
	return name, rules, nil
}

// parsePart reads "{x=787,m=2655,a=1222,s=2876}".
func parsePart(row string) (Part, error) {
	var p Part
	row = strings.TrimSpace(row)
	if !strings.HasPrefix(row, "{") || !strings.HasSuffix(row, "}") {
		return p, fmt.Errorf("%w: part %q", input.ErrMalformed, row)
	}
	fields := strings.Split(row[1:len(row)-1], ",")
	if len(fields) != len(categories) {
		return p, fmt.Errorf("%w: part %q", input.ErrMalformed, row)
	}
	for i, f := range fields {
		v, ok := strings.CutPrefix(f, categories[i:i+1]+"=")
		if !ok {
			return p, fmt.Errorf("%w: rating %q", input.ErrMalformed, f)
		}
		n, err := input.PosInt(v)
		if err != nil {
			return p, err
		}
		p[i] = int(n)
	}
	return p, nil
}

// Accepted runs p from "in" until it is accepted or rejected.
func (s *System) Accepted(p Part) (bool, error) {
	cur := start
	for range len(s.Workflows) + 1 {
		switch cur {
		case accept:
			return true, nil
		case reject:
			return false, nil
		}
		rules, ok := s.Workflows[cur]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownWorkflow, cur)
		}
		for _, r := range rules {
			if r.matches(p) {
				cur = r.Dest
				break
			}
		}
	}
	return false, fmt.Errorf("%w: from %q", ErrCycle, start)
}

// span is the inclusive rating interval [lo, hi] per category.
type span [4][2]int

func (b span) size() int64 {
	n := int64(1)
	for _, r := range b {
		if r[1] < r[0] {
			return 0
		}
		n *= int64(r[1] - r[0] + 1)
	}
	return n
}

// split cuts b into the part r matches and the part it passes on.
func (r Rule) split(b span) (in, out span) {
	in, out = b, b
	lo, hi := b[r.Cat][0], b[r.Cat][1]
	switch r.Op {
	case '<':
		in[r.Cat] = [2]int{lo, min(hi, r.Value-1)}
		out[r.Cat] = [2]int{max(lo, r.Value), hi}
	case '>':
		in[r.Cat] = [2]int{max(lo, r.Value+1), hi}
		out[r.Cat] = [2]int{lo, min(hi, r.Value)}
	default:
		out[r.Cat] = [2]int{1, 0}
	}
	return in, out
}

// Combinations counts rating combinations in [1, MaxRating]^4 that "in"
// eventually accepts.
func (s *System) Combinations() (int64, error) {
	var full span
	for i := range full {
		full[i] = [2]int{1, MaxRating}
	}
	return s.count(start, full, 0)
}

func (s *System) count(name string, b span, depth int) (int64, error) {
	switch {
	case b.size() == 0 || name == reject:
		return 0, nil
	case name == accept:
		return b.size(), nil
	case depth > len(s.Workflows):
		return 0, fmt.Errorf("%w: through %q", ErrCycle, name)
	}
	rules, ok := s.Workflows[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkflow, name)
	}
	var total int64
	for _, r := range rules {
		in, out := r.split(b)
		n, err := s.count(r.Dest, in, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
		b = out
	}
	return total, nil
}

// PartA sums the ratings of accepted parts.
func PartA(rows []string) (int64, error) {
	s, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, p := range s.Parts {
		ok, err := s.Accepted(p)
		if err != nil {
			return 0, err
		}
		if ok {
			total += int64(p[0] + p[1] + p[2] + p[3])
		}
	}
	return total, nil
}

// PartB ignores the listed parts and counts accepted combinations.
func PartB(rows []string) (int64, error) {
	s, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	return s.Combinations()
}
