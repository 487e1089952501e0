// Package puzzle describes daily solvers and keeps them in a registry
// keyed by day number.
package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidSolver indicates a Solver with a non-positive day or a
	// missing part function.
	ErrInvalidSolver = errors.New("puzzle: invalid solver")

	// ErrDuplicateDay indicates two solvers registered for the same day.
	ErrDuplicateDay = errors.New("puzzle: duplicate day")

	// ErrUnknownDay indicates a lookup for a day with no solver.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrEmptyRegistry is returned by Latest when nothing is registered.
	ErrEmptyRegistry = errors.New("puzzle: registry is empty")
)

// Func solves one part of a puzzle from its input rows.
type Func func(rows []string) (int64, error)

// Solver bundles both parts of one day.
type Solver struct {
	Day   int
	Title string
	PartA Func
	PartB Func
}

// Answers holds the result of running both parts.
type Answers struct {
	A, B int64
}

// Validate reports whether s can be registered.
func (s Solver) Validate() error {
	if s.Day <= 0 {
		return fmt.Errorf("%w: day %d", ErrInvalidSolver, s.Day)
	}
	if s.PartA == nil || s.PartB == nil {
		return fmt.Errorf("%w: day %d has a nil part", ErrInvalidSolver, s.Day)
	}

	return nil
}

// Run solves part A then part B on the same rows.
func (s Solver) Run(rows []string) (Answers, error) {
	var ans Answers
	var err error
	if ans.A, err = s.PartA(rows); err != nil {
		return Answers{}, fmt.Errorf("day %d part A: %w", s.Day, err)
	}
	if ans.B, err = s.PartB(rows); err != nil {
		return Answers{}, fmt.Errorf("day %d part B: %w", s.Day, err)
	}

	return ans, nil
}

// String returns "day N: Title".
func (s Solver) String() string {
	return fmt.Sprintf("day %d: %s", s.Day, s.Title)
}

// Registry maps day numbers to solvers.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry returns a registry holding solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{byDay: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add registers s. It fails on an invalid solver or an already used day.
func (r *Registry) Add(s Solver) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, dup := r.byDay[s.Day]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day)
	}
	r.byDay[s.Day] = s

	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return Solver{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}

// Latest returns the solver with the highest day number.
func (r *Registry) Latest() (Solver, error) {
	days := r.Days()
	if len(days) == 0 {
		return Solver{}, ErrEmptyRegistry
	}

	return r.byDay[days[len(days)-1]], nil
}
