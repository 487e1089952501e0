package day12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day12"
	"github.com/Papperslappen/aoc2023/input"
)

const example = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1`

func TestExample(t *testing.T) {
	rows := input.SplitRaw(example)

	a, err := day12.PartA(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(21), a)

	b, err := day12.PartB(rows)
	require.NoError(t, err)
	assert.Equal(t, int64(525152), b)
}

func TestArrangements(t *testing.T) {
	tests := []struct {
		row          string
		once, folded int64
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 4, 16384},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 16},
		{"????.######..#####. 1,6,5", 4, 2500},
		{"?###???????? 3,2,1", 10, 506250},
		{"# 1", 1, 1},
		{"## 1", 0, 0},
		{"... 1", 0, 0},
	}
	for _, tc := range tests {
		r, err := day12.ParseRecord(tc.row)
		require.NoError(t, err, tc.row)
		assert.Equal(t, tc.once, r.Arrangements(), tc.row)
		assert.Equal(t, tc.folded, r.Unfold(5).Arrangements(), tc.row)
	}
}

func TestUnfold(t *testing.T) {
	r := day12.Record{Springs: ".#", Groups: []int{1}}.Unfold(5)
	assert.Equal(t, ".#?.#?.#?.#?.#", r.Springs)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, r.Groups)
}

func TestMalformed(t *testing.T) {
	for _, bad := range []string{"??? ", "?x? 1", "??? 1,a", "??? 0"} {
		_, err := day12.PartA([]string{bad})
		assert.ErrorIs(t, err, input.ErrMalformed, bad)
	}
}
