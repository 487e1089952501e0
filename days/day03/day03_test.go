package day03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day03"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day03.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(4361), a)

	b, err := day03.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(467835), b)
}

func TestParseNumbers(t *testing.T) {
	s, err := day03.Parse([]string{"12.3", "..45"})
	require.NoError(t, err)
	assert.Equal(t, []day03.Number{
		{Value: 12, Start: grid.Point{Col: 0, Row: 0}, Len: 2},
		{Value: 3, Start: grid.Point{Col: 3, Row: 0}, Len: 1},
		{Value: 45, Start: grid.Point{Col: 2, Row: 1}, Len: 2},
	}, s.Numbers)
}

// TestEdgeNumbers: numbers touching the right edge and diagonal symbols count.
func TestEdgeNumbers(t *testing.T) {
	a, err := day03.PartA([]string{"..#", ".99", "7.."})
	require.NoError(t, err)
	assert.Equal(t, int64(99), a)

	b, err := day03.PartB([]string{"2*3", "..*", "..."})
	require.NoError(t, err)
	assert.Equal(t, int64(6), b)
}

func TestRagged(t *testing.T) {
	_, err := day03.PartA([]string{"...", ".."})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}
