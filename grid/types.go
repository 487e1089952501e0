package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates the cell decoder rejected a rune.
	ErrInvalidCell = errors.New("grid: invalid cell")
)

// Point addresses a cell by column and row.
type Point struct {
	Col, Row int
}

// Add returns p translated by (dc, dr).
func (p Point) Add(dc, dr int) Point {
	return Point{Col: p.Col + dc, Row: p.Row + dr}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.Col-q.Col) + abs(p.Row-q.Row)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Decoder converts a single input rune into a cell value.
type Decoder[T any] func(r rune) (T, error)

// Grid is a rectangular, row-major buffer of cell values.
// It is immutable once built; accessors that expose cells return copies.
type Grid[T any] struct {
	Width, Height int
	cells         []T
}
