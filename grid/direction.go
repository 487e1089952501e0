package grid

// Direction is one of the four compass moves.
type Direction uint8

const (
	// East increases Col.
	East Direction = iota
	// North decreases Row.
	North
	// West decreases Col.
	West
	// South increases Row.
	South
)

// Directions lists all four directions in canonical order.
var Directions = [4]Direction{East, North, West, South}

var directionNames = [4]string{"E", "N", "W", "S"}

// String returns the one-letter compass name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnLeft rotates a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 1) % 4
}

// TurnRight rotates a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 3) % 4
}

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool {
	return d == North || d == South
}

// Offset returns the unit (dCol, dRow) of one step in direction d.
func (d Direction) Offset() (dc, dr int) {
	switch d {
	case East:
		return 1, 0
	case North:
		return 0, -1
	case West:
		return -1, 0
	case South:
		return 0, 1
	}
	return 0, 0
}

// MoveSteps moves p by steps cells in direction d inside a width×height area.
// East and South must stay below width and height; North and West use a
// checked subtraction and fail instead of going negative. ok is false when
// the destination, or p itself, lies outside the area, or steps is negative.
func (d Direction) MoveSteps(p Point, steps, width, height int) (Point, bool) {
	if steps < 0 || p.Col < 0 || p.Row < 0 || p.Col >= width || p.Row >= height {
		return Point{}, false
	}
	switch d {
	case East:
		if steps >= width-p.Col {
			return Point{}, false
		}
		return Point{Col: p.Col + steps, Row: p.Row}, true
	case South:
		if steps >= height-p.Row {
			return Point{}, false
		}
		return Point{Col: p.Col, Row: p.Row + steps}, true
	case North:
		if steps > p.Row {
			return Point{}, false
		}
		return Point{Col: p.Col, Row: p.Row - steps}, true
	case West:
		if steps > p.Col {
			return Point{}, false
		}
		return Point{Col: p.Col - steps, Row: p.Row}, true
	}
	return Point{}, false
}

// Move is MoveSteps with a single step.
func (d Direction) Move(p Point, width, height int) (Point, bool) {
	return d.MoveSteps(p, 1, width, height)
}
