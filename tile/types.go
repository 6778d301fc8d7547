package tile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/phillip-keldenich/tiling-problem/geom"
)

// Side identifies one of the four sides of a tile, in the fixed
// counter-clockwise enumeration order bottom, right, top, left.
type Side int

const (
	SideBottom Side = iota
	SideRight
	SideTop
	SideLeft

	// NumSides is the number of tile sides.
	NumSides = 4
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	default:
		return "invalid"
	}
}

// Opposite returns the side facing s across a shared boundary.
func (s Side) Opposite() Side {
	switch s {
	case SideBottom:
		return SideTop
	case SideTop:
		return SideBottom
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// EdgeList is the ordered sequence of real-valued labels along one tile
// side, kept sorted ascending so label multisets compare by value rather
// than by the order the input happened to list them in.
type EdgeList []float64

// NewEdgeList copies labels and normalizes them into canonical (ascending)
// order. This is the single normalization point: every EdgeList in the
// system passes through here, so callers' slices are never mutated.
func NewEdgeList(labels []float64) EdgeList {
	out := make(EdgeList, len(labels))
	copy(out, labels)
	sort.Float64s(out)

	return out
}

// Negate returns a new, re-normalized EdgeList with every label sign-flipped.
// Labels are signed to distinguish mirrored edges, so reflection flips them.
func (e EdgeList) Negate() EdgeList {
	out := make([]float64, len(e))
	for i, v := range e {
		out[i] = -v
	}

	return NewEdgeList(out)
}

// Key returns a canonical string form of e, suitable as a map key.
// Identical label lists always produce identical keys.
func (e EdgeList) Key() string {
	var b strings.Builder
	for i, v := range e {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	return b.String()
}

// TileType is one square tile template: a name, four edge-label lists and
// a drawing in the tile-local frame. Values are immutable once built;
// Rotate and Reflect return new instances.
type TileType struct {
	Name    string
	Edges   [NumSides]EdgeList
	Drawing geom.Drawing
}

// Orientation is a TileType produced by rotating/reflecting a base type
// during catalog expansion. ActualIndex is the 0-based position of the
// originating base type in the input catalog.
type Orientation struct {
	TileType
	ActualIndex int
}
