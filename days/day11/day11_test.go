package day11_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day11"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....`

func TestSumDistances(t *testing.T) {
	rows := input.SplitRaw(example)
	tests := []struct {
		scale int64
		want  int64
	}{
		{1, 292},
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tt := range tests {
		got, err := day11.SumDistances(rows, tt.scale)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "scale %d", tt.scale)
	}
}

func TestPartA(t *testing.T) {
	got, err := day11.PartA(input.SplitRaw(example))
	require.NoError(t, err)
	assert.Equal(t, int64(374), got)
}

func TestErrors(t *testing.T) {
	_, err := day11.SumDistances(input.SplitRaw(example), 0)
	assert.ErrorIs(t, err, day11.ErrScale)

	_, err = day11.PartB([]string{"#x"})
	assert.ErrorIs(t, err, grid.ErrInvalidCell)

	got, err := day11.PartB([]string{"#.."})
	require.NoError(t, err)
	assert.Zero(t, got)
}
