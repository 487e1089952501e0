// Package dfs implements depth-first search over an implicit graph.
//
// Key features:
//   - Walk(g, start, opts...): traverse every state reachable from start
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for V reachable states and the E edges produced for
//     them, plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrNilGraph               if g is nil.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
