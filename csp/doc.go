// Package csp defines the boolean constraint-model interface the tiling
// encoder writes into, and a SAT-backed implementation of it.
//
// What:
//
//   - Model: an injected capability offering boolean variables and the
//     four constraint kinds the encoder needs (exactly-one, linear sum
//     equality, disjunction over literals, and implication), plus a single
//     blocking Solve and per-variable value lookup.
//   - SATModel: the production Model on top of
//     github.com/crillab/gophersat/solver, lowering every constraint to
//     cardinality constraints over integer literals.
//
// Why:
//
//   - Keeping the solving engine behind a small interface lets the
//     formulation logic be exercised against a recording or brute-force
//     model in tests, without binding the encoder to one solver.
//
// A Model instance is not safe for concurrent mutation; independent
// instances share no state and may be used in parallel.
package csp
