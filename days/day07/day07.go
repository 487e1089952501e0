// Package day07 solves "Camel Cards": rank poker-like hands and total the
// bids, optionally with jokers.
package day07

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 7, Title: "Camel Cards", PartA: PartA, PartB: PartB}

// Kind is a hand's type, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int64
}

// ParseHand reads "32T3K 765".
func ParseHand(row string) (Hand, error) {
	f := strings.Fields(row)
	if len(f) != 2 || len(f[0]) != 5 {
		return Hand{}, fmt.Errorf("%w: hand %q", input.ErrMalformed, row)
	}
	for _, c := range f[0] {
		if !strings.ContainsRune(order, c) {
			return Hand{}, fmt.Errorf("%w: card %q in %q", input.ErrMalformed, c, row)
		}
	}
	bid, err := input.PosInt(f[1])
	if err != nil {
		return Hand{}, err
	}
	return Hand{Cards: f[0], Bid: int64(bid)}, nil
}

// Kind classifies the hand. With jokers, each J joins the largest group
// of other cards.
func (h Hand) Kind(jokers bool) Kind {
	counts := make(map[rune]int, 5)
	for _, c := range h.Cards {
		counts[c]++
	}
	wild := 0
	if jokers {
		wild = counts['J']
		delete(counts, 'J')
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// compare orders by kind, then card by card from the left.
func compare(a, b Hand, jokers bool) int {
	if c := cmp.Compare(a.Kind(jokers), b.Kind(jokers)); c != 0 {
		return c
	}
	ranks := order
	if jokers {
		ranks = jokerOrder
	}
	for i := range a.Cards {
		if c := cmp.Compare(strings.IndexByte(ranks, a.Cards[i]), strings.IndexByte(ranks, b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings sorts hands weakest first and sums rank times bid.
func Winnings(hands []Hand, jokers bool) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b Hand) int { return compare(a, b, jokers) })
	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.Bid
	}
	return total
}

func parse(rows []string) ([]Hand, error) {
	hands := make([]Hand, 0, len(rows))
	for _, row := range rows {
		h, err := ParseHand(row)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// PartA ranks with J as jack.
func PartA(rows []string) (int64, error) {
	hands, err := parse(rows)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, false), nil
}

// PartB ranks with J as the weakest wild card.
func PartB(rows []string) (int64, error) {
	hands, err := parse(rows)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, true), nil
}
