package tile

// BoundaryRegistry assigns a dense integer id to every distinct edge-label
// list appearing on any side of any orientation, and records per side which
// orientations exhibit each id. It is a pure function of the orientation
// list: rebuild it whenever that list changes.
type BoundaryRegistry struct {
	types  []EdgeList
	index  map[string]int
	bySide [NumSides][][]int
}

// NewBoundaryRegistry scans orients in order, visiting each orientation's
// boundaries in the fixed order bottom, right, top, left, and assigns ids
// in first-seen order. Complexity: O(len(orients)).
func NewBoundaryRegistry(orients []Orientation) *BoundaryRegistry {
	r := &BoundaryRegistry{index: make(map[string]int)}
	for _, o := range orients {
		for _, boundary := range o.Boundaries() {
			key := boundary.Key()
			if _, seen := r.index[key]; !seen {
				r.index[key] = len(r.types)
				r.types = append(r.types, boundary)
			}
		}
	}
	for side := Side(0); side < NumSides; side++ {
		r.bySide[side] = make([][]int, len(r.types))
	}
	for i, o := range orients {
		for side, boundary := range o.Boundaries() {
			id := r.index[boundary.Key()]
			r.bySide[side][id] = append(r.bySide[side][id], i)
		}
	}

	return r
}

// Len returns the number of distinct boundary types.
func (r *BoundaryRegistry) Len() int {
	return len(r.types)
}

// Type returns the canonical edge-label list for a boundary-type id.
func (r *BoundaryRegistry) Type(id int) EdgeList {
	return r.types[id]
}

// ID returns the id assigned to an edge-label list and whether it is known.
func (r *BoundaryRegistry) ID(e EdgeList) (int, bool) {
	id, ok := r.index[e.Key()]

	return id, ok
}

// WithSide returns the orientation indices exhibiting boundary-type id on
// the given side. The returned slice is owned by the registry; do not mutate.
func (r *BoundaryRegistry) WithSide(side Side, id int) []int {
	return r.bySide[side][id]
}
