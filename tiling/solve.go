package tiling

import (
	"fmt"

	"github.com/phillip-keldenich/tiling-problem/csp"
	"github.com/phillip-keldenich/tiling-problem/tile"
)

// SolveOptions configures one solve.
type SolveOptions struct {
	// Symmetry selects which transforms the orientation generator applies.
	Symmetry tile.Options
	// Model, when non-nil, receives the encoding instead of a fresh
	// csp.SATModel. Injecting a model is how tests observe the formulation.
	Model csp.Model
}

// DefaultSolveOptions allows rotations and reflections and uses the
// SAT-backed model.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{Symmetry: tile.DefaultOptions()}
}

// Solve expands the catalog, builds the boolean encoding, runs the engine
// once (a single blocking call; no retry, no incremental re-solve) and
// extracts the assignment.
//
// Outcomes:
//   - a total Solution on success;
//   - ErrNoSolution when the engine proves infeasibility;
//   - an ErrSolver-wrapped error for any other terminal status;
//   - an ErrIntegrity-wrapped error if extraction finds a cell with zero
//     or multiple active orientations.
func Solve(inst *Instance, opts SolveOptions) (Solution, error) {
	orients, err := tile.Orientations(inst.TileTypes, opts.Symmetry)
	if err != nil {
		return nil, err
	}
	registry := tile.NewBoundaryRegistry(orients)
	model := opts.Model
	if model == nil {
		model = csp.NewSATModel()
	}

	builder := NewBuilder(inst, orients, registry, model)
	builder.Build()

	switch status := model.Solve(); status {
	case csp.StatusOptimal, csp.StatusFeasible:
		return extract(builder, orients)
	case csp.StatusInfeasible:
		return nil, ErrNoSolution
	default:
		return nil, fmt.Errorf("%w: unexpected status %s", ErrSolver, status)
	}
}

// extract walks every cell and maps its unique active variable back to an
// orientation. The result is total over the grid or not returned at all.
func extract(b *Builder, orients []tile.Orientation) (Solution, error) {
	sol := make(Solution, b.inst.NumCells())
	for y := 0; y < b.inst.Height; y++ {
		for x := 0; x < b.inst.Width; x++ {
			cell := Cell{X: x, Y: y}
			i, err := b.cellOrientation(cell)
			if err != nil {
				return nil, err
			}
			sol[cell] = orients[i]
		}
	}

	return sol, nil
}
