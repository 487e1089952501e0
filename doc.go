// Package aoc2023 collects Advent of Code 2023 solvers built on a small
// library of grid and search helpers.
//
// Library packages:
//
//	grid/     : immutable Grid[T] from text rows, Point, compass Direction & bounded stepping
//	dijkstra/ : generic lazy Dijkstra over implicit state graphs (Solve, Explore)
//	bfs/      : generic breadth-first walker with depths, parents & hooks
//	dfs/      : generic depth-first walker with pre/post-order hooks
//	input/    : rows, blank-line blocks & integer lists from raw text
//	puzzle/   : Solver descriptor & day registry
//
// Solvers live in days/dayNN, each exposing PartA, PartB and a
// puzzle.Solver named Puzzle. The cmd/aoc command runs one of them:
//
//	go run ./cmd/aoc -day 17 -input dec17.txt
//
// Quick example, cheapest walk across a digit grid:
//
//	g, _ := grid.FromRows([]string{"131", "999", "111"}, digit)
//	next := dijkstra.NeighborFunc[grid.Point](func(p grid.Point) []dijkstra.Edge[grid.Point] {
//		var out []dijkstra.Edge[grid.Point]
//		for _, d := range grid.Directions {
//			if q, c, ok := g.MoveDirection(p, d); ok {
//				out = append(out, dijkstra.Edge[grid.Point]{To: q, Cost: uint64(c)})
//			}
//		}
//		return out
//	})
//	res, _ := dijkstra.Solve[grid.Point](next, grid.Point{}, func(p grid.Point) bool {
//		return p == grid.Point{Col: 2, Row: 2}
//	})
//	fmt.Println(res.Cost)
package aoc2023
