// Package day04 solves "Scratchcards": score matching numbers and cascade
// won copies of later cards.
package day04

import (
	"fmt"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 4, Title: "Scratchcards", PartA: PartA, PartB: PartB}

// Card holds the winning numbers and the numbers on the ticket.
type Card struct {
	ID      int
	Winning map[int]bool
	Ticket  []int
}

// ParseCard reads "Card 1: 41 48 | 83 86 6".
func ParseCard(row string) (Card, error) {
	head, body, ok := strings.Cut(row, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %q has no ':'", input.ErrMalformed, row)
	}
	ids, err := input.Labelled[int](head, "Card")
	if err != nil {
		return Card{}, err
	}
	if len(ids) != 1 {
		return Card{}, fmt.Errorf("%w: card header %q", input.ErrMalformed, head)
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %q has no '|'", input.ErrMalformed, row)
	}
	winning, err := input.Ints[int](left)
	if err != nil {
		return Card{}, err
	}
	ticket, err := input.Ints[int](right)
	if err != nil {
		return Card{}, err
	}

	c := Card{ID: ids[0], Winning: make(map[int]bool, len(winning)), Ticket: ticket}
	for _, n := range winning {
		c.Winning[n] = true
	}
	return c, nil
}

// Matches counts ticket numbers that are winning numbers.
func (c Card) Matches() int {
	n := 0
	for _, v := range c.Ticket {
		if c.Winning[v] {
			n++
		}
	}
	return n
}

// Score is 1 for the first match, doubled for each further one.
func (c Card) Score() int {
	if m := c.Matches(); m > 0 {
		return 1 << (m - 1)
	}
	return 0
}

func parse(rows []string) ([]Card, error) {
	cards := make([]Card, 0, len(rows))
	for _, row := range rows {
		c, err := ParseCard(row)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// PartA sums the card scores.
func PartA(rows []string) (int64, error) {
	cards, err := parse(rows)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cards {
		total += int64(c.Score())
	}
	return total, nil
}

// PartB counts cards once every match has won copies of the cards below it.
// Wins never reach past the last card.
func PartB(rows []string) (int64, error) {
	cards, err := parse(rows)
	if err != nil {
		return 0, err
	}
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return total, nil
}
