package tile

import "github.com/phillip-keldenich/tiling-problem/geom"

// NewTileType builds a TileType from raw edge-label slices, normalizing
// each list (sorted ascending) exactly once. The input slices are copied,
// never retained or mutated.
func NewTileType(name string, bottom, right, top, left []float64, drawing geom.Drawing) TileType {
	return TileType{
		Name: name,
		Edges: [NumSides]EdgeList{
			SideBottom: NewEdgeList(bottom),
			SideRight:  NewEdgeList(right),
			SideTop:    NewEdgeList(top),
			SideLeft:   NewEdgeList(left),
		},
		Drawing: drawing,
	}
}

// Rotate returns t rotated by amount×90° counter-clockwise: the four edge
// lists are cyclically permuted in the order bottom→right→top→left (what
// was left becomes bottom after one step) and the drawing rotates with them.
// Callers pass 0–3; other amounts wrap modulo 4.
func (t TileType) Rotate(amount int) TileType {
	var edges [NumSides]EdgeList
	for i := 0; i < NumSides; i++ {
		j := ((i+amount)%NumSides + NumSides) % NumSides
		edges[j] = t.Edges[i]
	}

	return TileType{Name: t.Name, Edges: edges, Drawing: t.Drawing.Rotate(amount)}
}

// Reflect returns t mirrored across a. For AxisX the bottom and top lists
// are negated element-wise (labels are signed to distinguish mirrored
// edges) and left/right swap unnegated; for AxisY left and right are
// negated and bottom/top swap. Returns geom.ErrInvalidAxis otherwise.
func (t TileType) Reflect(a geom.Axis) (TileType, error) {
	drawing, err := t.Drawing.Reflect(a)
	if err != nil {
		return TileType{}, err
	}
	var edges [NumSides]EdgeList
	if a == geom.AxisX {
		edges[SideBottom] = t.Edges[SideBottom].Negate()
		edges[SideTop] = t.Edges[SideTop].Negate()
		edges[SideRight] = t.Edges[SideLeft]
		edges[SideLeft] = t.Edges[SideRight]
	} else {
		edges[SideRight] = t.Edges[SideRight].Negate()
		edges[SideLeft] = t.Edges[SideLeft].Negate()
		edges[SideBottom] = t.Edges[SideTop]
		edges[SideTop] = t.Edges[SideBottom]
	}

	return TileType{Name: t.Name, Edges: edges, Drawing: drawing}, nil
}

// Boundaries returns the four edge-label lists in the fixed order
// bottom, right, top, left.
func (t TileType) Boundaries() [NumSides]EdgeList {
	return t.Edges
}

// AlmostEqual reports whether t and other are the same orientation for
// deduplication purposes. Equality is decided by drawing geometry alone;
// edge labels are not compared (orientations are merged by visual identity).
func (t TileType) AlmostEqual(other TileType) bool {
	return t.Drawing.AlmostEqual(other.Drawing)
}
