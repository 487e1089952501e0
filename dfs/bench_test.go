package dfs_test

import (
	"testing"

	"github.com/Papperslappen/aoc2023/dfs"
)

// BenchmarkWalk_Tree measures DFS on a complete binary tree of N states.
func BenchmarkWalk_Tree(b *testing.B) {
	const N = 1 << 14
	g := tree(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Walk[int](g, 1)
	}
}
