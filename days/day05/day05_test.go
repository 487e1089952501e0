package day05_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day05"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day05.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(35), a)

	b, err := day05.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(46), b)
}

func TestApply(t *testing.T) {
	m := day05.Map{Rules: []day05.Rule{{Dest: 50, Source: 98, Len: 2}, {Dest: 52, Source: 50, Len: 48}}}
	tests := []struct{ in, want int64 }{
		{79, 81}, {14, 14}, {98, 50}, {99, 51}, {100, 100}, {49, 49},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, m.Apply(tc.in), "seed %d", tc.in)
	}
}

// TestApplySpanSplits: a span straddling a rule is cut at both edges.
func TestApplySpanSplits(t *testing.T) {
	m := day05.Map{Rules: []day05.Rule{{Dest: 100, Source: 5, Len: 5}}}
	got := m.ApplySpan(day05.Span{Start: 0, Len: 20})
	assert.ElementsMatch(t, []day05.Span{
		{Start: 100, Len: 5},
		{Start: 0, Len: 5},
		{Start: 10, Len: 10},
	}, got)

	assert.Equal(t, []day05.Span{{Start: 20, Len: 3}}, m.ApplySpan(day05.Span{Start: 20, Len: 3}))
}

func TestMalformed(t *testing.T) {
	for name, raw := range map[string]string{
		"no maps":     "seeds: 1 2",
		"bad header":  "seeds: 1 2\n\nseed-to-soil\n1 2 3",
		"short rule":  "seeds: 1 2\n\nseed-to-soil map:\n1 2",
		"seeds label": "plants: 1 2\n\nx map:\n1 2 3",
	} {
		_, err := day05.PartA(input.SplitRaw(raw))
		assert.ErrorIs(t, err, input.ErrMalformed, name)
	}

	_, err := day05.PartB(input.SplitRaw("seeds: 1 2 3\n\nx map:\n1 2 3"))
	assert.ErrorIs(t, err, input.ErrMalformed)
}
