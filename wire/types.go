// Package wire defines the core value types shared by the tracing,
// intersection and query layers: Direction, Coord and Orientation.
package wire

import "fmt"

// Direction identifies one of the four axis-aligned move directions.
type Direction uint8

const (
	// Up moves toward positive Y.
	Up Direction = iota
	// Down moves toward negative Y.
	Down
	// Left moves toward negative X.
	Left
	// Right moves toward positive X.
	Right
)

// String returns the single path letter: U, D, L or R.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection maps a path letter to its Direction.
// Any byte outside U, D, L, R fails with ErrBadDirection; there is no
// fallback direction.
func ParseDirection(b byte) (Direction, error) {
	switch b {
	case 'U':
		return Up, nil
	case 'D':
		return Down, nil
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadDirection, string(b))
	}
}

// Delta returns the unit step taken by a single move in direction d.
func (d Direction) Delta() Coord {
	switch d {
	case Up:
		return Coord{X: 0, Y: 1}
	case Down:
		return Coord{X: 0, Y: -1}
	case Left:
		return Coord{X: -1, Y: 0}
	default:
		return Coord{X: 1, Y: 0}
	}
}

// Coord is an integer grid position. Coords are comparable values,
// usable directly as map keys; the zero value is the shared origin.
type Coord struct {
	X, Y int64
}

// Origin is the shared starting point of both wires in every query.
var Origin = Coord{}

// String formats the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns c translated by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Manhattan returns |X| + |Y|, the grid distance from the origin.
func (c Coord) Manhattan() int64 {
	x, y := c.X, c.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}

// Orientation classifies a segment as Horizontal (shared Y) or Vertical
// (shared X). Axis-aligned input guarantees every segment is exactly one
// of the two.
type Orientation uint8

const (
	// Horizontal runs share a Y coordinate.
	Horizontal Orientation = iota
	// Vertical runs share an X coordinate.
	Vertical
)

// String returns "Horizontal" or "Vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}
