package dijkstra_test

import (
	"testing"

	"github.com/Papperslappen/aoc2023/dijkstra"
	"github.com/Papperslappen/aoc2023/grid"
)

// BenchmarkSolve_Grid runs the engine corner to corner on a 141×141 grid of
// uniform cost, the size of a real puzzle input.
func BenchmarkSolve_Grid(b *testing.B) {
	const n = 141
	cells := make([]uint64, n*n)
	for i := range cells {
		cells[i] = uint64(1 + i%9)
	}
	g, err := grid.New(n, n, cells)
	if err != nil {
		b.Fatal(err)
	}
	next := dijkstra.NeighborFunc[grid.Point](func(p grid.Point) []dijkstra.Edge[grid.Point] {
		out := make([]dijkstra.Edge[grid.Point], 0, 4)
		for _, d := range grid.Directions {
			if q, cost, ok := g.MoveDirection(p, d); ok {
				out = append(out, dijkstra.Edge[grid.Point]{To: q, Cost: cost})
			}
		}
		return out
	})
	end := grid.Point{Col: n - 1, Row: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Solve[grid.Point](next, grid.Point{}, func(p grid.Point) bool { return p == end }, dijkstra.WithEarlyExit()); err != nil {
			b.Fatal(err)
		}
	}
}
