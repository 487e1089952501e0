// Package day15 solves "Lens Library": the HASH algorithm and the lens
// box initialization sequence it drives.
package day15

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 15, Title: "Lens Library", PartA: PartA, PartB: PartB}

// Hash runs the HASH algorithm over the bytes of s.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// Steps joins the rows (newlines are ignored) and splits on commas.
func Steps(rows []string) []string {
	return strings.Split(strings.Join(rows, ""), ",")
}

// Lens is a labelled lens of a given focal length.
type Lens struct {
	Label string
	Focal int
}

// Boxes is the row of 256 lens boxes.
type Boxes [256][]Lens

// Apply runs one "label=N" or "label-" step.
func (b *Boxes) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok && validLabel(label) {
		box := &b[Hash(label)]
		*box = slices.DeleteFunc(*box, func(l Lens) bool { return l.Label == label })
		return nil
	}

	label, focal, ok := strings.Cut(step, "=")
	if !ok || !validLabel(label) {
		return fmt.Errorf("%w: step %q", input.ErrMalformed, step)
	}
	n, err := input.PosInt(focal)
	if err != nil {
		return fmt.Errorf("step %q: %w", step, err)
	}

	box := &b[Hash(label)]
	lens := Lens{Label: label, Focal: int(n)}
	if i := slices.IndexFunc(*box, func(l Lens) bool { return l.Label == label }); i >= 0 {
		(*box)[i] = lens
	} else {
		*box = append(*box, lens)
	}
	return nil
}

// Power sums box number × slot × focal length over every lens, counting
// boxes and slots from one.
func (b *Boxes) Power() int {
	total := 0
	for i, box := range b {
		for slot, l := range box {
			total += (i + 1) * (slot + 1) * l.Focal
		}
	}
	return total
}

func validLabel(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// PartA sums the HASH of every step.
func PartA(rows []string) (int64, error) {
	total := 0
	for _, s := range Steps(rows) {
		total += Hash(s)
	}
	return int64(total), nil
}

// PartB runs the initialization sequence and reports the focusing power.
func PartB(rows []string) (int64, error) {
	var boxes Boxes
	for _, s := range Steps(rows) {
		if err := boxes.Apply(s); err != nil {
			return 0, err
		}
	}
	return int64(boxes.Power()), nil
}
