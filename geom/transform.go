package geom

// Exact cosine/sine of k×90°, indexed by k mod 4. Using the table instead
// of math.Cos keeps repeated rotations bit-exact: four quarter turns
// return every coordinate to its original value.
var (
	quarterCos = [4]float64{1, 0, -1, 0}
	quarterSin = [4]float64{0, 1, 0, -1}
)

// quarter normalizes an arbitrary rotation amount to 0..3.
func quarter(amount int) int {
	return ((amount % 4) + 4) % 4
}

// Rotate returns p rotated by amount×90° counter-clockwise about the origin.
func (p Point) Rotate(amount int) Point {
	q := quarter(amount)
	c, s := quarterCos[q], quarterSin[q]

	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// Translate returns p shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// reflect mirrors p across a previously validated axis.
func (p Point) reflect(a Axis) Point {
	if a == AxisX {
		return Point{X: -p.X, Y: p.Y}
	}

	return Point{X: p.X, Y: -p.Y}
}

// Rotate returns s rotated by amount×90° about the origin.
func (s Segment) Rotate(amount int) Segment {
	return Segment{Start: s.Start.Rotate(amount), End: s.End.Rotate(amount)}
}

// Translate returns s shifted by (dx, dy).
func (s Segment) Translate(dx, dy float64) Segment {
	return Segment{Start: s.Start.Translate(dx, dy), End: s.End.Translate(dx, dy)}
}

// Reflect returns s mirrored across a.
// Returns ErrInvalidAxis if a is not AxisX or AxisY.
func (s Segment) Reflect(a Axis) (Segment, error) {
	if !a.Valid() {
		return Segment{}, ErrInvalidAxis
	}

	return Segment{Start: s.Start.reflect(a), End: s.End.reflect(a)}, nil
}

// Rotate returns v rotated by amount×90° about the origin.
func (v Vertex) Rotate(amount int) Vertex {
	return Vertex{At: v.At.Rotate(amount)}
}

// Translate returns v shifted by (dx, dy).
func (v Vertex) Translate(dx, dy float64) Vertex {
	return Vertex{At: v.At.Translate(dx, dy)}
}

// Reflect returns v mirrored across a.
// Returns ErrInvalidAxis if a is not AxisX or AxisY.
func (v Vertex) Reflect(a Axis) (Vertex, error) {
	if !a.Valid() {
		return Vertex{}, ErrInvalidAxis
	}

	return Vertex{At: v.At.reflect(a)}, nil
}

// Rotate returns a copy of d with every segment and vertex rotated by
// amount×90° about the origin. Complexity: O(len(Segments)+len(Vertices)).
func (d Drawing) Rotate(amount int) Drawing {
	out := Drawing{
		Segments: make([]Segment, len(d.Segments)),
		Vertices: make([]Vertex, len(d.Vertices)),
	}
	for i, s := range d.Segments {
		out.Segments[i] = s.Rotate(amount)
	}
	for i, v := range d.Vertices {
		out.Vertices[i] = v.Rotate(amount)
	}

	return out
}

// Translate returns a copy of d shifted by (dx, dy). Used only for final
// layout of a solved tiling, never during catalog expansion.
func (d Drawing) Translate(dx, dy float64) Drawing {
	out := Drawing{
		Segments: make([]Segment, len(d.Segments)),
		Vertices: make([]Vertex, len(d.Vertices)),
	}
	for i, s := range d.Segments {
		out.Segments[i] = s.Translate(dx, dy)
	}
	for i, v := range d.Vertices {
		out.Vertices[i] = v.Translate(dx, dy)
	}

	return out
}

// Reflect returns a copy of d mirrored across a.
// Returns ErrInvalidAxis if a is not AxisX or AxisY.
func (d Drawing) Reflect(a Axis) (Drawing, error) {
	if !a.Valid() {
		return Drawing{}, ErrInvalidAxis
	}
	out := Drawing{
		Segments: make([]Segment, len(d.Segments)),
		Vertices: make([]Vertex, len(d.Vertices)),
	}
	for i, s := range d.Segments {
		out.Segments[i], _ = s.Reflect(a)
	}
	for i, v := range d.Vertices {
		out.Vertices[i], _ = v.Reflect(a)
	}

	return out, nil
}
