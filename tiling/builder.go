package tiling

import (
	"fmt"

	"github.com/phillip-keldenich/tiling-problem/csp"
	"github.com/phillip-keldenich/tiling-problem/tile"
)

// adjacency is an ordered pair of neighboring cells; From is always the
// cell below (vertical) or to the left (horizontal) of To, so each shared
// edge is allocated exactly once.
type adjacency struct {
	From, To Cell
}

// vertical reports whether the pair is stacked (To directly above From).
func (a adjacency) vertical() bool {
	return a.From.Y < a.To.Y
}

// Builder writes the boolean encoding of one instance into a csp.Model.
// The three phases (cell variables, boundary variables, boundary-matching
// links) must run in that order; Build enforces it. A Builder is
// single-use and not safe for concurrent mutation.
type Builder struct {
	inst     *Instance
	orients  []tile.Orientation
	registry *tile.BoundaryRegistry
	model    csp.Model

	// cellVars[cellIndex][orientIndex], row-major cell indexing.
	cellVars [][]csp.Var
	// boundaryVars[pair][boundaryTypeID].
	boundaryVars map[adjacency][]csp.Var
}

// NewBuilder prepares a builder over the given model. The orientation list
// and registry must describe the same expansion (the registry is a pure
// function of the orientation list).
func NewBuilder(inst *Instance, orients []tile.Orientation, registry *tile.BoundaryRegistry, model csp.Model) *Builder {
	return &Builder{
		inst:         inst,
		orients:      orients,
		registry:     registry,
		model:        model,
		cellVars:     make([][]csp.Var, inst.NumCells()),
		boundaryVars: make(map[adjacency][]csp.Var),
	}
}

// Build emits the full encoding into the model.
func (b *Builder) Build() {
	b.addCellVars()
	b.addBoundaryVars()
	b.addBoundaryConstraints()
}

// addCellVars allocates one boolean per cell×orientation, constrains each
// cell to exactly one active orientation, and pins the total usage of each
// base tile type to its required count: an exact equality, so counts that
// cannot fill the grid surface as infeasibility at solve time.
func (b *Builder) addCellVars() {
	byBase := make([][]csp.Var, len(b.inst.TileTypes))
	for y := 0; y < b.inst.Height; y++ {
		for x := 0; x < b.inst.Width; x++ {
			cell := Cell{X: x, Y: y}
			vars := make([]csp.Var, len(b.orients))
			for i, o := range b.orients {
				v := b.model.NewBoolVar(fmt.Sprintf("cell(%d,%d)|orient(%d)", x, y, i))
				vars[i] = v
				byBase[o.ActualIndex] = append(byBase[o.ActualIndex], v)
			}
			b.model.AddExactlyOne(vars)
			b.cellVars[b.inst.index(cell)] = vars
		}
	}
	for i, count := range b.inst.Counts {
		b.model.AddSumEqual(byBase[i], count)
	}
}

// addBoundaryVars allocates, for every cell with an in-bounds neighbor
// above or to the right, one boolean per boundary type for that ordered
// pair, constrained exactly-one. Enumerating only up/right neighbors
// allocates each adjacency once.
func (b *Builder) addBoundaryVars() {
	for y := 0; y < b.inst.Height; y++ {
		for x := 0; x < b.inst.Width; x++ {
			for _, n := range [2]Cell{{X: x, Y: y + 1}, {X: x + 1, Y: y}} {
				if !b.inst.InBounds(n.X, n.Y) {
					continue
				}
				pair := adjacency{From: Cell{X: x, Y: y}, To: n}
				vars := make([]csp.Var, b.registry.Len())
				for id := range vars {
					vars[id] = b.model.NewBoolVar(
						fmt.Sprintf("boundary(%d,%d|%d,%d)|type(%d)", x, y, n.X, n.Y, id))
				}
				b.model.AddExactlyOne(vars)
				b.boundaryVars[pair] = vars
			}
		}
	}
}

// addBoundaryConstraints links every boundary variable to the cell
// variables on both sides of its edge. For a vertical pair the boundary
// variable of type id must hold iff the lower cell's active orientation
// shows id on top, and independently iff the upper cell's shows id on the
// bottom; horizontal pairs use right/left. Together with exactly-one-ness
// this forces both cells to agree on the shared boundary type.
func (b *Builder) addBoundaryConstraints() {
	for pair, vars := range b.boundaryVars {
		fromVars := b.cellVars[b.inst.index(pair.From)]
		toVars := b.cellVars[b.inst.index(pair.To)]
		fromSide, toSide := tile.SideRight, tile.SideLeft
		if pair.vertical() {
			fromSide, toSide = tile.SideTop, tile.SideBottom
		}
		for id, bv := range vars {
			b.linkBoundary(bv, fromVars, b.registry.WithSide(fromSide, id))
			b.linkBoundary(bv, toVars, b.registry.WithSide(toSide, id))
		}
	}
}

// linkBoundary enforces bv ↔ (some matching cell variable is active):
// a disjunction makes bv imply at least one match, and one implication per
// match makes any active match force bv.
func (b *Builder) linkBoundary(bv csp.Var, cellVars []csp.Var, matching []int) {
	lits := make([]csp.Lit, 0, len(matching)+1)
	lits = append(lits, bv.Not())
	for _, i := range matching {
		lits = append(lits, cellVars[i].Lit())
	}
	b.model.AddDisjunction(lits)
	for _, i := range matching {
		b.model.AddImplication(cellVars[i], bv)
	}
}

// cellOrientation returns, after a feasible solve, the unique active
// orientation index for cell c. It returns an ErrIntegrity-wrapped error
// if zero or multiple cell variables are true; with a correctly built
// model this never happens and indicates a modeling or solver bug.
func (b *Builder) cellOrientation(c Cell) (int, error) {
	found := -1
	for i, v := range b.cellVars[b.inst.index(c)] {
		if !b.model.BoolValue(v) {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("%w: multiple orientations active in cell (%d,%d)", ErrIntegrity, c.X, c.Y)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("%w: no orientation active in cell (%d,%d)", ErrIntegrity, c.X, c.Y)
	}

	return found, nil
}
