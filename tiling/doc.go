// Package tiling encodes edge-matching tiling puzzles as boolean
// constraint-satisfaction models and extracts solutions.
//
// What:
//
//   - Instance: the problem statement: a catalog of tile types, the exact
//     number of times each must be used, and the target grid dimensions.
//   - Builder: translates an instance plus its expanded orientation list
//     into a csp.Model: one boolean per cell×orientation with per-cell
//     exactly-one and per-base-type exact cardinality; one boolean per
//     adjacency×boundary-type with exactly-one; and linking constraints
//     forcing both cells of every adjacency to agree on the boundary type
//     of their shared edge.
//   - Solve: runs the engine once and reconstructs the total
//     cell→orientation mapping, failing loudly on integrity violations.
//
// Why:
//
//   - The boundary variables make edge matching a deterministic function
//     of each cell's active orientation; exactly-one-ness plus the two
//     implication directions force both sides to compute the same value,
//     which is precisely the matching condition.
//
// Outcomes are three-valued: a Solution, ErrNoSolution (proven
// infeasible, an expected result rather than a failure), or a fatal error
// (configuration, solver fault, or integrity violation).
//
// Model construction is single-threaded; a Builder owns its variable sets
// and must not be mutated concurrently. Independent solves share no state
// and may run in parallel.
package tiling
