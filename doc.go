// Package tilingproblem solves edge-matching tiling puzzles by boolean
// constraint satisfaction.
//
// What:
//
//	A catalog of square tile types, each with labeled edge colors on its
//	four sides and a drawing, must fill a width×height grid so that every
//	pair of adjacent cells presents matching edge colors on their shared
//	boundary, using each tile type exactly as often as requested.
//
// How it is organized:
//
//	geom/     — drawable primitives and exact quarter-turn transforms
//	tile/     — tile types, symmetry orientation expansion, boundary ids
//	csp/      — the boolean model interface and its SAT backend
//	tiling/   — instance, constraint encoding, solve & extract
//	tilingio/ — JSON instance loading
//	render/   — SVG/PNG output of solved tilings
//	cmd/tilingsolve — the command-line front end
//
// Quick example:
//
//	inst, err := tilingio.LoadFile("puzzle.json")
//	if err != nil { ... }
//	sol, err := tiling.Solve(inst, tiling.DefaultSolveOptions())
//	switch {
//	case errors.Is(err, tiling.ErrNoSolution):
//		// proven infeasible: a result, not a fault
//	case err != nil:
//		// configuration error, solver fault or integrity violation
//	default:
//		_ = render.WriteSVG(out, sol, render.DefaultOptions())
//	}
package tilingproblem
