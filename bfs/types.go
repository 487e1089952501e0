package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a state that was never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph produces the neighbors of a state on demand.
type Graph[S comparable] interface {
	Neighbors(s S) []S
}

// NeighborFunc adapts a plain function to the Graph interface.
type NeighborFunc[S comparable] func(s S) []S

// Neighbors calls f(s).
func (f NeighborFunc[S]) Neighbors(s S) []S { return f(s) }

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	OnEnqueue func(s S, depth int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(s S, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor S) bool

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no depth limit and no filtering.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:            context.Background(),
		OnEnqueue:      func(S, int) {},
		OnDequeue:      func(S, int) {},
		OnVisit:        func(S, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ S) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, neighbor S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was visited.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the path from the start state to dest inclusive.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []S{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
