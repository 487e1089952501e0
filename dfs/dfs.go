package dfs

import "fmt"

// walker encapsulates state during DFS.
type walker[S comparable] struct {
	graph Graph[S]
	opts  Options[S]
	res   *Result[S]
}

// Walk performs depth-first search from start over g.
// Returns the Result, or an error if aborted by context or hook; on abort
// Order is cleared and the partial maps are returned.
func Walk[S comparable](g Graph[S], start S, opts ...Option[S]) (*Result[S], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrNilGraph
	}
	if f, ok := g.(NeighborFunc[S]); ok && f == nil {
		return nil, ErrNilGraph
	}

	// 2. Apply options
	o := DefaultOptions[S]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result
	res := &Result[S]{
		Depth:   make(map[S]int),
		Parent:  make(map[S]S),
		Visited: make(map[S]bool),
	}
	w := &walker[S]{graph: g, opts: o, res: res}

	// 4. Traverse
	if err := w.traverse(start, 0); err != nil {
		res.Order = nil
		return res, err
	}

	return res, nil
}

// traverse visits s at the given depth, recursing into unvisited neighbors.
func (w *walker[S]) traverse(s S, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[s] = true
	w.res.Depth[s] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", s, err)
		}
	}

	// 4. Explore neighbors unless the depth cap is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, n := range w.graph.Neighbors(s) {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(s, n) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[n] {
				continue
			}
			w.res.Parent[n] = s
			if err := w.traverse(n, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(s); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", s, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, s)

	return nil
}
