package day17_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day17"
	"github.com/Papperslappen/aoc2023/dijkstra"
	"github.com/Papperslappen/aoc2023/grid"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

const unfortunate = `111111111111
999999999991
999999999991
999999999991
999999999991`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day17.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(102), a)

	b, err := day17.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(94), b)
}

func TestUltraMustRunFour(t *testing.T) {
	b, err := day17.PartB(input.SplitRaw(unfortunate))
	require.NoError(t, err)
	assert.Equal(t, int64(71), b)
}

// TestRouteRespectsRuns checks the reconstructed route: it starts at the
// origin, ends at the goal, alternates axes and its costs add up.
func TestRouteRespectsRuns(t *testing.T) {
	c, err := day17.Parse(input.SplitRaw(example))
	require.NoError(t, err)
	res, err := c.MinHeatLoss(day17.Crucible)
	require.NoError(t, err)

	route := res.Route()
	require.NotEmpty(t, route)
	assert.Equal(t, day17.State{}, route[0])
	assert.Equal(t, grid.Point{Col: 12, Row: 12}, route[len(route)-1].At)

	var total uint64
	for i := 1; i < len(route); i++ {
		prev, cur := route[i-1], route[i]
		if prev.Moved {
			assert.NotEqual(t, prev.Heading.Horizontal(), cur.Heading.Horizontal(), "step %d", i)
		}
		p := prev.At
		steps := 0
		for p != cur.At {
			var loss uint64
			var ok bool
			p, loss, ok = c.MoveDirection(p, cur.Heading)
			require.True(t, ok)
			total += loss
			steps++
		}
		assert.True(t, steps >= 1 && steps <= 3, "run of %d", steps)
	}
	assert.Equal(t, res.Cost, total)
}

func TestSingleBlock(t *testing.T) {
	a, err := day17.PartA([]string{"7"})
	require.NoError(t, err)
	assert.Zero(t, a)
}

func TestErrors(t *testing.T) {
	c, err := day17.Parse([]string{"12", "34"})
	require.NoError(t, err)
	_, err = c.MinHeatLoss(day17.Run{Min: 0, Max: 3})
	assert.ErrorIs(t, err, day17.ErrRun)

	// A 1×3 strip is too short for a run of four.
	_, err = day17.PartB([]string{"123"})
	assert.ErrorIs(t, err, dijkstra.ErrGoalUnreachable)

	_, err = day17.PartA([]string{"1a"})
	assert.ErrorIs(t, err, grid.ErrInvalidCell)
}
