package bfs

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	graph   Graph[S]
	opts    Options[S]
	ctx     context.Context
	queue   deque.Deque[queueItem[S]]
	visited map[S]bool
	res     *Result[S]
}

// Walk runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrNilGraph, ErrOptionViolation, a wrapped OnVisit error, or the
// context error on cancellation. The partial Result is returned alongside
// hook and context errors.
func Walk[S comparable](g Graph[S], start S, opts ...Option[S]) (*Result[S], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if f, ok := g.(NeighborFunc[S]); ok && f == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[S]bool),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// enqueue marks s visited at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent *S) {
	w.visited[s] = true
	w.res.Depth[s] = d
	if parent != nil {
		w.res.Parent[s] = *parent
	}
	w.opts.OnEnqueue(s, d)
	w.queue.PushBack(queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue.PopFront()
		w.opts.OnDequeue(item.state, item.depth)
		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.state) {
		if !w.opts.FilterNeighbor(item.state, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, &item.state)
		}
	}
}
