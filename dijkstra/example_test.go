package dijkstra_test

import (
	"fmt"

	"github.com/Papperslappen/aoc2023/dijkstra"
	"github.com/Papperslappen/aoc2023/grid"
)

// ExampleSolve_triangle demonstrates the engine on a three-node graph given
// by a neighbor function.
// Complexity: O((V+E) log V).
func ExampleSolve_triangle() {
	edges := map[string][]dijkstra.Edge[string]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 5}},
		"B": {{To: "C", Cost: 2}},
	}
	next := dijkstra.NeighborFunc[string](func(s string) []dijkstra.Edge[string] {
		return edges[s]
	})

	res, err := dijkstra.Solve[string](next, "A", func(s string) bool { return s == "C" })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost, "route:", res.Route())
	// Output: cost: 3 route: [A B C]
}

// ExampleSolve_grid finds the cheapest walk across a digit grid where
// entering a cell costs its digit. The state is just the grid point.
func ExampleSolve_grid() {
	g, _ := grid.FromRows([]string{
		"131",
		"191",
		"111",
	}, func(r rune) (uint64, error) { return uint64(r - '0'), nil })

	next := dijkstra.NeighborFunc[grid.Point](func(p grid.Point) []dijkstra.Edge[grid.Point] {
		var out []dijkstra.Edge[grid.Point]
		for _, d := range grid.Directions {
			if q, cost, ok := g.MoveDirection(p, d); ok {
				out = append(out, dijkstra.Edge[grid.Point]{To: q, Cost: cost})
			}
		}
		return out
	})

	end := grid.Point{Col: g.Width - 1, Row: g.Height - 1}
	res, _ := dijkstra.Solve[grid.Point](next, grid.Point{}, func(p grid.Point) bool { return p == end })
	fmt.Println("cost:", res.Cost)
	// Output: cost: 4
}

// ExampleExplore returns the distance to every reachable state.
func ExampleExplore() {
	next := dijkstra.NeighborFunc[int](func(n int) []dijkstra.Edge[int] {
		if n >= 3 {
			return nil
		}
		return []dijkstra.Edge[int]{{To: n + 1, Cost: 2}}
	})
	dist, _ := dijkstra.Explore[int](next, 0)
	fmt.Println(dist)
	// Output: map[0:0 1:2 2:4 3:6]
}
