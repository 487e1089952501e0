package day16_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day16"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day16.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(46), a)

	b, err := day16.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(51), b)
}

func TestBend(t *testing.T) {
	tests := []struct {
		f    day16.Feature
		in   grid.Direction
		want []grid.Direction
	}{
		{day16.Empty, grid.North, []grid.Direction{grid.North}},
		{day16.MirrorDown, grid.East, []grid.Direction{grid.South}},
		{day16.MirrorDown, grid.North, []grid.Direction{grid.West}},
		{day16.MirrorUp, grid.East, []grid.Direction{grid.North}},
		{day16.MirrorUp, grid.South, []grid.Direction{grid.West}},
		{day16.SplitV, grid.East, []grid.Direction{grid.North, grid.South}},
		{day16.SplitV, grid.South, []grid.Direction{grid.South}},
		{day16.SplitH, grid.North, []grid.Direction{grid.East, grid.West}},
		{day16.SplitH, grid.West, []grid.Direction{grid.West}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.f.Bend(tt.in), "%c heading %v", tt.f, tt.in)
	}
}

// TestEnergizedLoop: a beam trapped between mirrors terminates.
func TestEnergizedLoop(t *testing.T) {
	c, err := day16.Parse([]string{
		`/-\`,
		`|.|`,
		`\-/`,
	})
	require.NoError(t, err)
	n, err := c.Energized(day16.Beam{At: grid.Point{Col: 1, Row: 0}, Heading: grid.East})
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestEntries(t *testing.T) {
	c, err := day16.Parse([]string{"...", "..."})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2*3+2*2)
}

func TestParseError(t *testing.T) {
	_, err := day16.PartA([]string{"..", ".x"})
	assert.ErrorIs(t, err, grid.ErrInvalidCell)
}
