package dfs

import (
	"context"
	"errors"
)

// ErrNilGraph is returned when a nil graph is passed to Walk.
var ErrNilGraph = errors.New("dfs: graph is nil")

// Graph produces the neighbors of a state on demand.
type Graph[S comparable] interface {
	Neighbors(s S) []S
}

// NeighborFunc adapts a plain function to the Graph interface.
type NeighborFunc[S comparable] func(s S) []S

// Neighbors calls f(s).
func (f NeighborFunc[S]) Neighbors(s S) []S { return f(s) }

// Option configures optional behavior of DFS traversal.
type Option[S comparable] func(*Options[S])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[S comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a state
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(s S) error

	// OnExit, if non-nil, is invoked after all descendants of a state have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(s S) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start state. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor
	// before descending. Return false to skip it.
	FilterNeighbor func(curr, neighbor S) bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and no neighbor filtering.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context has no effect.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[S comparable](fn func(s S) error) Option[S] {
	return func(o *Options[S]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[S comparable](fn func(s S) error) Option[S] {
	return func(o *Options[S]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 means only the start
// state is visited; a negative limit disables the cap.
func WithMaxDepth[S comparable](limit int) Option[S] {
	return func(o *Options[S]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false; they are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor[S comparable](fn func(curr, neighbor S) bool) Option[S] {
	return func(o *Options[S]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[S comparable] struct {
	// Order lists states in post-order (finish order).
	Order []S
	// Depth is the discovery depth of each visited state.
	Depth map[S]int
	// Parent maps each visited state (except start) to its DFS-tree parent.
	Parent map[S]S
	// Visited holds every state reached.
	Visited map[S]bool
	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
