package day14_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day14"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

const afterOneCycle = `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day14.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(136), a)

	b, err := day14.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(64), b)
}

func TestSpin(t *testing.T) {
	p, err := day14.Parse(input.SplitRaw(example))
	require.NoError(t, err)
	p.Spin()
	assert.Equal(t, afterOneCycle, p.String())
}

// TestLoadAfterMatchesSimulation compares the shortcut with plain spinning.
func TestLoadAfterMatchesSimulation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 17, 99} {
		fast, err := day14.Parse(input.SplitRaw(example))
		require.NoError(t, err)
		slow, err := day14.Parse(input.SplitRaw(example))
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			slow.Spin()
		}
		assert.Equal(t, slow.Load(), fast.LoadAfter(n), "n=%d", n)
	}
}

func TestTiltEachDirection(t *testing.T) {
	tests := []struct {
		dir  grid.Direction
		want string
	}{
		{grid.North, "O#O\n.O.\n..."},
		{grid.South, ".#.\n...\nOOO"},
		{grid.West, "O#.\nO..\nO.."},
		{grid.East, "O#.\n..O\n..O"},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			p, err := day14.Parse([]string{"O#.", ".O.", "..O"})
			require.NoError(t, err)
			p.Tilt(tt.dir)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := day14.PartA([]string{"O.", "x."})
	assert.ErrorIs(t, err, grid.ErrInvalidCell)
}
