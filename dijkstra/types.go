package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve and Explore.
var (
	// ErrNilGraph indicates that a nil Graph or NeighborFunc was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilGoal indicates that Solve was called without a goal predicate.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrGoalUnreachable indicates that no discovered state satisfies the goal.
	ErrGoalUnreachable = errors.New("dijkstra: goal unreachable")

	// ErrCostOverflow indicates that a path cost would exceed math.MaxUint64.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows uint64")

	// ErrBrokenPath indicates a predecessor chain that is cyclic or dangling.
	ErrBrokenPath = errors.New("dijkstra: broken predecessor chain")
)

// Edge is an outgoing transition to state To at the given non-negative Cost.
type Edge[S comparable] struct {
	To   S
	Cost uint64
}

// Graph produces the outgoing edges of a state on demand.
type Graph[S comparable] interface {
	Neighbors(s S) []Edge[S]
}

// NeighborFunc adapts a plain function to the Graph interface.
type NeighborFunc[S comparable] func(s S) []Edge[S]

// Neighbors calls f(s).
func (f NeighborFunc[S]) Neighbors(s S) []Edge[S] { return f(s) }

// Comparer is an optional extension of Graph. When implemented, Compare
// orders states with equal cost (negative: a first). The order need not mean
// anything in the problem domain but must be total and consistent.
type Comparer[S comparable] interface {
	Compare(a, b S) int
}

// ordered bundles a neighbor function with a comparison.
type ordered[S comparable] struct {
	next NeighborFunc[S]
	cmp  func(a, b S) int
}

func (o ordered[S]) Neighbors(s S) []Edge[S] { return o.next(s) }
func (o ordered[S]) Compare(a, b S) int      { return o.cmp(a, b) }

// Ordered returns a Graph whose ties are broken by cmp.
func Ordered[S comparable](next NeighborFunc[S], cmp func(a, b S) int) Graph[S] {
	return ordered[S]{next: next, cmp: cmp}
}

// Options configures the behavior of Solve and Explore.
//
// EarlyExit – stop once the cheapest goal cost is known instead of draining
// the frontier. Cost, End and Path are identical either way.
//
// MaxCost – states whose cost would exceed this value are never recorded.
// Default is math.MaxUint64 (no cap).
type Options struct {
	EarlyExit bool   // Stop once the cheapest goal cost is settled
	MaxCost   uint64 // Largest path cost worth exploring
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithEarlyExit stops the search after the first settled goal state and
// every other state of the same cost.
// Ignored by Explore, which has no goal.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithMaxCost prunes every state whose cost would exceed limit.
func WithMaxCost(limit uint64) Option {
	return func(o *Options) {
		o.MaxCost = limit
	}
}

// DefaultOptions returns the defaults: drain the whole frontier, no cost cap.
func DefaultOptions() Options {
	return Options{
		EarlyExit: false,
		MaxCost:   math.MaxUint64,
	}
}

// Result describes the cheapest goal state found by Solve.
//
// Path lists the predecessors of End walking backwards: Path[0] is the state
// just before End and the last element is the start state. End itself is not
// included; Path is empty when start satisfies the goal.
type Result[S comparable] struct {
	Cost     uint64 // total cost from start to End
	End      S      // cheapest state satisfying the goal
	Path     []S    // predecessors of End, nearest first
	Explored int    // number of states settled during the search
}

// Route returns the forward path from start to End inclusive.
func (r *Result[S]) Route() []S {
	route := make([]S, 0, len(r.Path)+1)
	for i := len(r.Path) - 1; i >= 0; i-- {
		route = append(route, r.Path[i])
	}
	return append(route, r.End)
}
