package geom

import "errors"

// Epsilon is the default tolerance for approximate point equality.
const Epsilon = 1e-8

// ErrInvalidAxis indicates a reflection axis other than AxisX or AxisY.
var ErrInvalidAxis = errors.New("geom: invalid reflection axis, use AxisX or AxisY")

// Axis selects a reflection axis. Reflecting across AxisX negates the
// x-coordinate of every point; AxisY negates the y-coordinate.
type Axis int

const (
	// AxisX mirrors left/right (negates x).
	AxisX Axis = iota
	// AxisY mirrors top/bottom (negates y).
	AxisY
)

// Valid reports whether a is one of the two declared axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY
}

// String returns the lowercase axis name, or "invalid" for out-of-range values.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "invalid"
	}
}

// ParseAxis converts "x" or "y" into an Axis.
// Returns ErrInvalidAxis for any other string.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return 0, ErrInvalidAxis
	}
}

// Point is a pair of real coordinates. Immutable.
type Point struct {
	X, Y float64
}

// Segment is an ordered pair of points in the tile-local frame.
// Equality treats it as undirected: Start/End may be swapped.
type Segment struct {
	Start, End Point
}

// Vertex is a single drawable point in the tile-local frame.
type Vertex struct {
	At Point
}

// Drawing is the drawable content of one tile: a multiset of segments
// and a multiset of vertices, local to the tile's own coordinate frame.
// Transforms produce new Drawings; a Drawing is never mutated.
type Drawing struct {
	Segments []Segment
	Vertices []Vertex
}
