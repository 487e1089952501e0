package day13_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day13"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day13.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(405), a)

	b, err := day13.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(400), b)
}

func TestSummaryPerPattern(t *testing.T) {
	blocks := input.Blocks(input.SplitRaw(example))
	require.Len(t, blocks, 2)

	first, err := day13.ParsePattern(blocks[0])
	require.NoError(t, err)
	assert.Equal(t, 5, first.Summary(0))
	assert.Equal(t, 300, first.Summary(1))

	second, err := day13.ParsePattern(blocks[1])
	require.NoError(t, err)
	assert.Equal(t, 400, second.Summary(0))
	assert.Equal(t, 100, second.Summary(1))
}

func TestMirror(t *testing.T) {
	assert.Equal(t, 0, day13.Mirror([]uint64{1, 2, 3}, 0))
	assert.Equal(t, 1, day13.Mirror([]uint64{5, 5, 3}, 0))
	assert.Equal(t, 2, day13.Mirror([]uint64{1, 5, 5, 1}, 0))
	assert.Equal(t, 2, day13.Mirror([]uint64{3, 5, 4, 3}, 1))
	assert.Equal(t, 0, day13.Mirror([]uint64{7}, 0))
}

func TestParseErrors(t *testing.T) {
	_, err := day13.ParsePattern([]string{strings.Repeat("#", 65)})
	assert.ErrorIs(t, err, day13.ErrTooWide)

	_, err = day13.PartA([]string{"#.", "#o"})
	assert.ErrorIs(t, err, grid.ErrInvalidCell)
}
