// Package day08 solves "Haunted Wasteland": follow left/right instructions
// through a node network, then run every ghost start at once.
package day08

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 8, Title: "Haunted Wasteland", PartA: PartA, PartB: PartB}

// ErrUnknownNode indicates an instruction led to a node with no entry.
var ErrUnknownNode = errors.New("day08: unknown node")

// Network is the instruction string and the node table.
type Network struct {
	Turns string
	Nodes map[string][2]string
}

// Parse reads "LR", a blank row, then "AAA = (BBB, CCC)" rows.
func Parse(rows []string) (*Network, error) {
	blocks := input.Blocks(rows)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: want instructions, a blank row and nodes", input.ErrMalformed)
	}
	turns := strings.TrimSpace(blocks[0][0])
	if turns == "" || strings.Trim(turns, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", input.ErrMalformed, turns)
	}
	n := &Network{Turns: turns, Nodes: make(map[string][2]string, len(blocks[1]))}
	for _, row := range blocks[1] {
		name, pair, ok := strings.Cut(row, "=")
		pair = strings.TrimSpace(pair)
		if !ok || !strings.HasPrefix(pair, "(") || !strings.HasSuffix(pair, ")") {
			return nil, fmt.Errorf("%w: node %q", input.ErrMalformed, row)
		}
		left, right, ok := strings.Cut(pair[1:len(pair)-1], ",")
		if !ok {
			return nil, fmt.Errorf("%w: node %q", input.ErrMalformed, row)
		}
		n.Nodes[strings.TrimSpace(name)] = [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}
	}
	return n, nil
}

// Walk counts steps from start until done holds, cycling the instructions.
// A start that already satisfies done takes zero steps.
func (n *Network) Walk(start string, done func(string) bool) (int64, error) {
	cur := start
	var steps int64
	for !done(cur) {
		next, ok := n.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownNode, cur)
		}
		side := 0
		if n.Turns[steps%int64(len(n.Turns))] == 'R' {
			side = 1
		}
		cur = next[side]
		steps++
	}
	return steps, nil
}

// PartA walks from AAA to ZZZ.
func PartA(rows []string) (int64, error) {
	n, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	return n.Walk("AAA", func(s string) bool { return s == "ZZZ" })
}

// PartB walks every node ending in A until each ends in Z at the same
// time. Each ghost loops with a period equal to its first arrival, so the
// answer is the least common multiple of the individual walks.
func PartB(rows []string) (int64, error) {
	n, err := Parse(rows)
	if err != nil {
		return 0, err
	}
	total := int64(1)
	found := false
	for name := range n.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		steps, err := n.Walk(name, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		if steps > 0 {
			total = total / gcd(total, steps) * steps
		}
		found = true
	}
	if !found {
		return 0, fmt.Errorf("%w: no node ends in A", input.ErrMalformed)
	}
	return total, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
