// Package bfs provides breadth-first search over an implicit graph,
// returning unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - States are any comparable value; a Graph[S] hands out the neighbors of
//     a state on demand, so the graph is never materialized.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from state → distance (edges) from start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - Neighbor filtering via WithFilterNeighbor and a depth cap via
//     WithMaxDepth.
//
// Why
//
//   - Loop membership and distances on puzzle maps where every step costs 1.
//   - Reachability of a state space without the heap overhead of dijkstra.
//
// Determinism
//
//	Neighbors are enqueued in the order the Graph returns them, so a
//	deterministic neighbor function gives a reproducible visit order.
//
// Complexity (V = reachable states, E = edges produced for them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue, Depth, Parent, visited set)
//
// Usage
//
//	res, err := bfs.Walk[grid.Point](g, start,
//	    bfs.WithMaxDepth[grid.Point](3),
//	    bfs.WithOnVisit(func(p grid.Point, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilGraph         if the graph is nil.
//   - ErrOptionViolation  if an invalid Option was supplied (negative depth).
//   - ErrNoPath           from Result.PathTo for a state never reached.
//   - Wrapped errors returned by OnVisit, and ctx.Err() on cancellation.
package bfs
