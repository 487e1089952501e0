package day07_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day07"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day07.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(6440), a)

	b, err := day07.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(5905), b)
}

func TestKind(t *testing.T) {
	tests := []struct {
		cards       string
		plain, wild day07.Kind
	}{
		{"23456", day07.HighCard, day07.HighCard},
		{"32T3K", day07.OnePair, day07.OnePair},
		{"KK677", day07.TwoPair, day07.TwoPair},
		{"KTJJT", day07.TwoPair, day07.FourOfAKind},
		{"T55J5", day07.ThreeOfAKind, day07.FourOfAKind},
		{"22333", day07.FullHouse, day07.FullHouse},
		{"2233J", day07.TwoPair, day07.FullHouse},
		{"JJJJ2", day07.FourOfAKind, day07.FiveOfAKind},
		{"JJJJJ", day07.FiveOfAKind, day07.FiveOfAKind},
	}
	for _, tc := range tests {
		h := day07.Hand{Cards: tc.cards}
		assert.Equal(t, tc.plain, h.Kind(false), tc.cards)
		assert.Equal(t, tc.wild, h.Kind(true), tc.cards)
	}
}

// TestJokerIsWeakest: on equal kinds a leading joker loses to a deuce.
func TestJokerIsWeakest(t *testing.T) {
	hands := []day07.Hand{{Cards: "2222J", Bid: 1}, {Cards: "J2222", Bid: 10}}
	// Both five of a kind; J2222 ranks first, so it takes rank 1.
	assert.Equal(t, int64(10*1+1*2), day07.Winnings(hands, true))
	// Without jokers both are four of a kind and J2222 wins on its first card.
	assert.Equal(t, int64(1*1+10*2), day07.Winnings(hands, false))
}

func TestMalformed(t *testing.T) {
	for _, bad := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K -1"} {
		_, err := day07.PartA([]string{bad})
		assert.ErrorIs(t, err, input.ErrMalformed, bad)
	}
}
