// Package dijkstra provides a generic, lazy implementation of Dijkstra's
// shortest-path algorithm over implicit graphs.
//
// Overview:
//
//   - The graph is never materialized. A Graph[S] hands out the outgoing
//     edges of a state on demand; the engine calls it once per settled state.
//   - States are any comparable Go value: a grid point, a point plus heading,
//     a point plus heading plus run length. Equality and hashing come from the
//     language; an optional Comparer[S] adds a total order used only to break
//     ties between equal-cost frontier entries.
//   - Solve returns the cheapest state satisfying a goal predicate together
//     with its cost and predecessor chain. Explore returns the final distance
//     of every reachable state.
//
// When to use:
//
//   - Weighted grid traversal with movement rules encoded in the state
//     (heat-loss crucibles, run-length limits).
//   - Full-frontier distance maps (farthest point of a pipe loop).
//
// Key features:
//
//   - Functional options: WithEarlyExit stops once a goal state is settled,
//     WithMaxCost prunes states costlier than a cap.
//   - Goal selection over every discovered state, not only the first one popped.
//   - Path reconstruction with a bounded predecessor walk.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), V and E counted over the states reachable from
//     start and the edges the neighbor function produces for them.
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Preconditions (not validated):
//
//   - Neighbors must be a pure, deterministic function of its input state.
//   - Edge costs are uint64 and therefore non-negative; the settled-is-final
//     invariant depends on it.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph (or neighbor function) is nil.
//   - ErrNilGoal:         Solve was called without a goal predicate.
//   - ErrGoalUnreachable: no discovered state satisfies the goal.
//   - ErrCostOverflow:    a path cost would wrap past math.MaxUint64.
//   - ErrBrokenPath:      the predecessor chain does not lead back to start.
//
// API reference:
//
//	func Solve[S comparable](g Graph[S], start S, goal func(S) bool, opts ...Option) (*Result[S], error)
//	func Explore[S comparable](g Graph[S], start S, opts ...Option) (map[S]uint64, error)
package dijkstra
