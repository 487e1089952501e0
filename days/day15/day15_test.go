package day15_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/days/day15"
	"github.com/Papperslappen/aoc2023/input"
)

const example = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7"

func TestHash(t *testing.T) {
	assert.Equal(t, 52, day15.Hash("HASH"))
	assert.Equal(t, 0, day15.Hash("rn"))
	assert.Equal(t, 3, day15.Hash("pc"))
	assert.Equal(t, 0, day15.Hash(""))
}

func TestExample(t *testing.T) {
	a, err := day15.PartA([]string{"HASH"})
	require.NoError(t, err)
	assert.Equal(t, int64(52), a)

	a, err = day15.PartA([]string{example})
	require.NoError(t, err)
	assert.Equal(t, int64(1320), a)

	b, err := day15.PartB([]string{example})
	require.NoError(t, err)
	assert.Equal(t, int64(145), b)
}

func TestBoxes(t *testing.T) {
	var b day15.Boxes
	for _, s := range day15.Steps([]string{example}) {
		require.NoError(t, b.Apply(s))
	}
	assert.Equal(t, []day15.Lens{{Label: "rn", Focal: 1}, {Label: "cm", Focal: 2}}, b[0])
	assert.Equal(t, []day15.Lens{{Label: "ot", Focal: 7}, {Label: "ab", Focal: 5}, {Label: "pc", Focal: 6}}, b[3])
	assert.Empty(t, b[1])
}

// TestStepsIgnoreNewlines: a wrapped sequence hashes the same as one line.
func TestStepsIgnoreNewlines(t *testing.T) {
	assert.Equal(t, []string{"rn=1", "cm-", "qp=3"}, day15.Steps([]string{"rn=1,c", "m-,qp=3"}))
}

func TestMalformed(t *testing.T) {
	for _, bad := range []string{"rn", "=4", "rn=", "rn=x", "r1=2", "-"} {
		_, err := day15.PartB([]string{bad})
		assert.ErrorIs(t, err, input.ErrMalformed, bad)
	}
}
