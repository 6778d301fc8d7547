package render

import (
	"errors"

	"github.com/phillip-keldenich/tiling-problem/geom"
	"github.com/phillip-keldenich/tiling-problem/tiling"
)

// ErrEmptySolution indicates there is nothing to draw.
var ErrEmptySolution = errors.New("render: empty solution")

// Options tunes the output raster/vector geometry.
type Options struct {
	// Scale is the number of output units (pixels for PNG) per world unit;
	// one tile spans 2×2 world units.
	Scale float64
	// StrokeWidth is the tile segment stroke width in output units.
	StrokeWidth float64
	// VertexRadius is the vertex dot radius in output units.
	VertexRadius float64
}

// DefaultOptions returns the rendering defaults: 40 units per world unit,
// 2-unit strokes, 3-unit vertex dots.
func DefaultOptions() Options {
	return Options{Scale: 40, StrokeWidth: 2, VertexRadius: 3}
}

// layout is the shared world→output mapping. World coordinates have y
// pointing up; image coordinates have y pointing down, so y flips around
// the grid's vertical extent.
type layout struct {
	width, height int // grid dimensions in cells
	scale         float64
}

// newLayout derives grid dimensions from the solution's cell keys.
func newLayout(sol tiling.Solution, scale float64) (layout, error) {
	if len(sol) == 0 {
		return layout{}, ErrEmptySolution
	}
	var w, h int
	for c := range sol {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}

	return layout{width: w, height: h, scale: scale}, nil
}

// outputSize returns the drawing surface extent in output units.
func (l layout) outputSize() (float64, float64) {
	return float64(2*l.width) * l.scale, float64(2*l.height) * l.scale
}

// toOutput maps a world point (tile drawings already translated to their
// cell offsets) to output coordinates.
func (l layout) toOutput(p geom.Point) (float64, float64) {
	// World x spans [-1, 2w-1], y spans [-1, 2h-1]; shift by +1, flip y.
	return (p.X + 1) * l.scale, (float64(2*l.height-1) - p.Y) * l.scale
}

// cellDrawing returns the orientation drawing of cell c translated to its
// world position.
func cellDrawing(sol tiling.Solution, c tiling.Cell) geom.Drawing {
	return sol[c].Drawing.Translate(2*float64(c.X), 2*float64(c.Y))
}

// cellBorder returns the four boundary segments of cell c in world
// coordinates, drawn underneath the tile content.
func cellBorder(c tiling.Cell) [4]geom.Segment {
	x, y := 2*float64(c.X), 2*float64(c.Y)

	return [4]geom.Segment{
		{Start: geom.Point{X: x - 1, Y: y - 1}, End: geom.Point{X: x + 1, Y: y - 1}},
		{Start: geom.Point{X: x + 1, Y: y - 1}, End: geom.Point{X: x + 1, Y: y + 1}},
		{Start: geom.Point{X: x + 1, Y: y + 1}, End: geom.Point{X: x - 1, Y: y + 1}},
		{Start: geom.Point{X: x - 1, Y: y + 1}, End: geom.Point{X: x - 1, Y: y - 1}},
	}
}
