package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Papperslappen/aoc2023/dfs"
)

// chain is the directed chain 0→1→…→n-1.
func chain(n int) dfs.NeighborFunc[int] {
	return func(v int) []int {
		if v+1 < n {
			return []int{v + 1}
		}
		return nil
	}
}

// tree is the complete binary tree on 1..n with children 2v and 2v+1.
func tree(n int) dfs.NeighborFunc[int] {
	return func(v int) []int {
		var out []int
		for _, c := range []int{2 * v, 2*v + 1} {
			if c <= n {
				out = append(out, c)
			}
		}
		return out
	}
}

func TestWalk_NilGraph(t *testing.T) {
	res, err := dfs.Walk[int](nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)

	var f dfs.NeighborFunc[int]
	_, err = dfs.Walk[int](f, 0)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

func TestWalk_ChainPostOrder(t *testing.T) {
	res, err := dfs.Walk[int](chain(5), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, res.Order)
	assert.Equal(t, 4, res.Depth[4])
	assert.Equal(t, 3, res.Parent[4])
	assert.Len(t, res.Visited, 5)
}

func TestWalk_TreeHooks(t *testing.T) {
	var pre []int
	res, err := dfs.Walk[int](tree(7), 1, dfs.WithOnVisit(func(v int) error {
		pre = append(pre, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5, 3, 6, 7}, pre)
	assert.Equal(t, []int{4, 5, 2, 6, 7, 3, 1}, res.Order)
}

// TestWalk_Cycle: a state space with cycles is still visited once per state.
func TestWalk_Cycle(t *testing.T) {
	ring := dfs.NeighborFunc[int](func(v int) []int { return []int{(v + 1) % 6, (v + 5) % 6, v} })
	res, err := dfs.Walk[int](ring, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
	assert.Len(t, res.Visited, 6)
}

func TestWalk_MaxDepth(t *testing.T) {
	res, err := dfs.Walk[int](chain(10), 0, dfs.WithMaxDepth[int](2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, res.Order)

	res, err = dfs.Walk[int](chain(10), 0, dfs.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestWalk_FilterNeighbor(t *testing.T) {
	res, err := dfs.Walk[int](tree(7), 1, dfs.WithFilterNeighbor(func(_, v int) bool { return v%2 == 0 }))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestWalk_HookErrors(t *testing.T) {
	boom := errors.New("boom")
	res, err := dfs.Walk[int](chain(5), 0, dfs.WithOnExit(func(v int) error {
		if v == 3 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
	assert.True(t, res.Visited[4])

	_, err = dfs.Walk[int](chain(5), 0, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Walk[int](chain(3), 0, dfs.WithContext[int](ctx))
	require.ErrorIs(t, err, context.Canceled)
}
