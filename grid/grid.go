package grid

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// New builds a Grid from a row-major cell buffer. The buffer is copied.
// Returns ErrEmptyGrid if width or height is not positive and
// ErrNonRectangular if len(cells) != width*height.
func New[T any](width, height int, cells []T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %d×%d", ErrNonRectangular, len(cells), width, height)
	}
	buf := make([]T, len(cells))
	copy(buf, cells)

	return &Grid[T]{Width: width, Height: height, cells: buf}, nil
}

// FromRows decodes rows of text into a Grid, one cell per rune.
// The width is taken from the first row and every other row is checked
// against it.
// Complexity: O(W×H) time and memory.
func FromRows[T any](rows []string, decode Decoder[T]) (*Grid[T], error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	cells := make([]T, 0, w*len(rows))
	for r, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, n, w)
		}
		c := 0
		for _, ch := range row {
			v, err := decode(ch)
			if err != nil {
				return nil, fmt.Errorf("%w %q at (%d,%d): %v", ErrInvalidCell, ch, c, r, err)
			}
			cells = append(cells, v)
			c++
		}
	}

	return &Grid[T]{Width: w, Height: len(rows), cells: cells}, nil
}

// Runes is the identity Decoder.
func Runes(r rune) (rune, error) { return r, nil }

// InBounds reports whether (col,row) lies within the grid.
func (g *Grid[T]) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// Contains reports whether p lies within the grid.
func (g *Grid[T]) Contains(p Point) bool {
	return g.InBounds(p.Col, p.Row)
}

// At returns the cell at (col,row), or ok=false outside the grid.
func (g *Grid[T]) At(col, row int) (v T, ok bool) {
	if !g.InBounds(col, row) {
		return v, false
	}
	return g.cells[g.index(col, row)], true
}

// AtPoint is At for a Point.
func (g *Grid[T]) AtPoint(p Point) (T, bool) {
	return g.At(p.Col, p.Row)
}

// Step moves p by steps cells in direction d, or reports ok=false if the
// destination leaves the grid.
func (g *Grid[T]) Step(p Point, d Direction, steps int) (Point, bool) {
	return d.MoveSteps(p, steps, g.Width, g.Height)
}

// MoveDirection steps once from p in direction d and returns the destination
// together with its cell value. ok is false if p or the destination is
// outside the grid.
func (g *Grid[T]) MoveDirection(p Point, d Direction) (q Point, v T, ok bool) {
	if !g.Contains(p) {
		return q, v, false
	}
	if q, ok = d.Move(p, g.Width, g.Height); !ok {
		return q, v, false
	}
	return q, g.cells[g.index(q.Col, q.Row)], true
}

// Find returns the first point, in row-major order, whose cell satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// All yields every point and its cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Cells returns a row-major copy of the cell buffer.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Row returns a copy of row r, or nil if r is out of range.
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.Height {
		return nil
	}
	out := make([]T, g.Width)
	copy(out, g.cells[r*g.Width:(r+1)*g.Width])
	return out
}

// Column returns a copy of column c, or nil if c is out of range.
func (g *Grid[T]) Column(c int) []T {
	if c < 0 || c >= g.Width {
		return nil
	}
	out := make([]T, g.Height)
	for r := range out {
		out[r] = g.cells[g.index(c, r)]
	}
	return out
}

// index maps (col,row) to the row-major offset col + Width*row.
func (g *Grid[T]) index(col, row int) int {
	return col + g.Width*row
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{Col: idx % g.Width, Row: idx / g.Width}
}
