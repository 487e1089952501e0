package dijkstra

import (
	"container/heap"
	"fmt"
)

// Solve computes the minimum total cost from start to the cheapest state
// satisfying goal, over the implicit graph g.
//
// Behavior:
//
//  1. start is recorded at cost 0 with no predecessor.
//  2. States are settled in order of increasing cost; each settled state's
//     edges are fetched once from g and relaxed. A neighbor is updated only
//     on a strictly cheaper cost.
//  3. By default the whole reachable frontier is drained, after which every
//     discovered state is tested against goal and the cheapest one wins. With
//     WithEarlyExit the search stops once every state costing as much as the
//     first settled goal is settled, so the winner is the same either way.
//  4. The predecessor chain of the winner is walked back to start.
//
// Ties between equal-cost goal states go to the smaller state under
// Comparer when g implements it, otherwise to the earliest discovered.
//
// Returns ErrNilGraph, ErrNilGoal, ErrGoalUnreachable, ErrCostOverflow or
// ErrBrokenPath.
func Solve[S comparable](g Graph[S], start S, goal func(S) bool, opts ...Option) (*Result[S], error) {
	// 1) Validate inputs
	if isNil(g) {
		return nil, ErrNilGraph
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	// 2) Build options
	r := newRunner(g, opts)
	r.init(start)

	// 3) Run main loop, optionally stopping at a settled goal
	if err := r.process(goal); err != nil {
		return nil, err
	}

	// 4) Pick the cheapest discovered goal state
	end, found := r.cheapest(goal)
	if !found {
		return nil, ErrGoalUnreachable
	}

	// 5) Reconstruct the predecessor chain
	path, err := r.path(end)
	if err != nil {
		return nil, err
	}

	return &Result[S]{
		Cost:     r.records[end].cost,
		End:      end,
		Path:     path,
		Explored: len(r.settled),
	}, nil
}

// Explore settles every state reachable from start (within MaxCost) and
// returns the final cost of each. WithEarlyExit has no effect.
func Explore[S comparable](g Graph[S], start S, opts ...Option) (map[S]uint64, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	r := newRunner(g, opts)
	r.init(start)
	if err := r.process(nil); err != nil {
		return nil, err
	}

	dist := make(map[S]uint64, len(r.records))
	for s, rec := range r.records {
		dist[s] = rec.cost
	}
	return dist, nil
}

func isNil[S comparable](g Graph[S]) bool {
	if g == nil {
		return true
	}
	if f, ok := g.(NeighborFunc[S]); ok && f == nil {
		return true
	}
	return false
}

// record is the best-known cost and predecessor of a discovered state.
type record[S comparable] struct {
	cost    uint64
	prev    S
	hasPrev bool
	seq     uint64 // discovery order, used as the last tie-breaker
}

// runner holds the mutable state for a single Solve or Explore execution.
type runner[S comparable] struct {
	g       Graph[S]         // neighbor source; read-only
	cmp     func(a, b S) int // optional tie-breaker from Comparer
	options Options          // EarlyExit, MaxCost
	records map[S]record[S]  // state → best cost, predecessor
	settled map[S]bool       // states whose cost is final
	pq      frontier[S]      // min-heap with lazy decrease-key
	seq     uint64           // next discovery sequence number
}

func newRunner[S comparable](g Graph[S], opts []Option) *runner[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &runner[S]{
		g:       g,
		options: cfg,
		records: make(map[S]record[S]),
		settled: make(map[S]bool),
	}
	if c, ok := g.(Comparer[S]); ok {
		r.cmp = c.Compare
	}
	r.pq.cmp = r.cmp
	return r
}

// init records start at cost 0 and seeds the heap with it.
func (r *runner[S]) init(start S) {
	r.records[start] = record[S]{cost: 0, seq: r.seq}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &item[S]{state: start, cost: 0, seq: r.seq})
	r.seq++
}

// process settles states until the heap is empty or, under EarlyExit, every
// state as cheap as the first settled goal is settled. Equal-cost goals
// reachable through zero-cost edges are therefore still discovered.
func (r *runner[S]) process(goal func(S) bool) error {
	var (
		stopping bool
		bound    uint64
	)
	for r.pq.Len() > 0 {
		if stopping && r.pq.items[0].cost > bound {
			return nil
		}
		it := heap.Pop(&r.pq).(*item[S])

		// Stale heap entry: a cheaper copy was already settled.
		if r.settled[it.state] {
			continue
		}
		r.settled[it.state] = true

		if !stopping && goal != nil && r.options.EarlyExit && goal(it.state) {
			stopping, bound = true, it.cost
		}
		if err := r.relax(it.state, it.cost); err != nil {
			return err
		}
	}
	return nil
}

// relax offers every outgoing edge of u, settled at cost d, to its target.
func (r *runner[S]) relax(u S, d uint64) error {
	for _, e := range r.g.Neighbors(u) {
		// Non-negative costs: a settled state cannot improve.
		if r.settled[e.To] {
			continue
		}
		next := d + e.Cost
		if next < d {
			return fmt.Errorf("%w: %d + %d", ErrCostOverflow, d, e.Cost)
		}
		if next > r.options.MaxCost {
			continue
		}

		rec, seen := r.records[e.To]
		if seen && next >= rec.cost {
			continue
		}
		if !seen {
			rec.seq = r.seq
			r.seq++
		}
		rec.cost, rec.prev, rec.hasPrev = next, u, true
		r.records[e.To] = rec

		// Lazy decrease-key: older entries for e.To are skipped when popped.
		heap.Push(&r.pq, &item[S]{state: e.To, cost: next, seq: rec.seq})
	}
	return nil
}

// cheapest scans all discovered states for the cheapest one satisfying goal.
func (r *runner[S]) cheapest(goal func(S) bool) (best S, found bool) {
	var bestRec record[S]
	for s, rec := range r.records {
		if !goal(s) {
			continue
		}
		if !found || r.before(rec.cost, s, rec.seq, bestRec.cost, best, bestRec.seq) {
			best, bestRec, found = s, rec, true
		}
	}
	return best, found
}

// before orders (cost, state, seq) triples: cost first, then Comparer, then
// discovery order.
func (r *runner[S]) before(ca uint64, a S, sa uint64, cb uint64, b S, sb uint64) bool {
	if ca != cb {
		return ca < cb
	}
	if r.cmp != nil {
		if c := r.cmp(a, b); c != 0 {
			return c < 0
		}
	}
	return sa < sb
}

// path walks predecessor links back from end. The walk is bounded by the
// number of discovered states so a corrupted chain cannot loop forever.
func (r *runner[S]) path(end S) ([]S, error) {
	var path []S
	cur, ok := r.records[end]
	if !ok {
		return nil, fmt.Errorf("%w: end state was never discovered", ErrBrokenPath)
	}
	for cur.hasPrev {
		if len(path) >= len(r.records) {
			return nil, fmt.Errorf("%w: walk exceeded %d states", ErrBrokenPath, len(r.records))
		}
		path = append(path, cur.prev)
		if cur, ok = r.records[cur.prev]; !ok {
			return nil, fmt.Errorf("%w: predecessor was never discovered", ErrBrokenPath)
		}
	}
	return path, nil
}

// item is a frontier entry: a state and the cost it was pushed with.
type item[S comparable] struct {
	state S
	cost  uint64
	seq   uint64
}

// frontier is a min-heap of *item ordered by cost, then by the optional
// comparison, then by discovery sequence.
type frontier[S comparable] struct {
	items []*item[S]
	cmp   func(a, b S) int
}

// Len returns the number of items in the heap.
func (pq frontier[S]) Len() int { return len(pq.items) }

// Less defines the comparison: smaller cost → higher priority.
func (pq frontier[S]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if pq.cmp != nil {
		if c := pq.cmp(a.state, b.state); c != 0 {
			return c < 0
		}
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq frontier[S]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap.
func (pq *frontier[S]) Push(x any) { pq.items = append(pq.items, x.(*item[S])) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *frontier[S]) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return it
}
