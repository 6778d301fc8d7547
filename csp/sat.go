package csp

import "github.com/crillab/gophersat/solver"

// SATModel implements Model on top of the gophersat SAT solver. Every
// constraint is lowered to cardinality constraints over integer literals
// (variable i becomes literal i+1; negation flips the sign), so exactly-one
// and exact sums need no auxiliary encoding.
//
// A SATModel is single-use: accumulate constraints, call Solve once, then
// read values. It is not safe for concurrent mutation.
type SATModel struct {
	names   []string
	constrs []solver.CardConstr
	// unsat marks the model trivially infeasible (e.g. a sum constraint
	// demanding more true variables than exist); Solve then short-circuits
	// without invoking the engine.
	unsat  bool
	model  []bool
	solved bool
}

var _ Model = (*SATModel)(nil)

// NewSATModel returns an empty SAT-backed model.
func NewSATModel() *SATModel {
	return &SATModel{}
}

// NewBoolVar allocates a fresh variable.
func (m *SATModel) NewBoolVar(name string) Var {
	m.names = append(m.names, name)

	return Var(len(m.names) - 1)
}

// NumVars returns the number of allocated variables.
func (m *SATModel) NumVars() int {
	return len(m.names)
}

// NumConstraints returns the number of lowered cardinality constraints.
func (m *SATModel) NumConstraints() int {
	return len(m.constrs)
}

// VarName returns the diagnostic name v was allocated with.
func (m *SATModel) VarName(v Var) string {
	return m.names[v]
}

// intLit converts a Lit to gophersat's 1-based signed literal encoding.
func intLit(l Lit) int {
	lit := int(l.Var) + 1
	if l.Neg {
		return -lit
	}

	return lit
}

// AddExactlyOne constrains exactly one of vars to be true. An empty var
// set makes the model infeasible.
func (m *SATModel) AddExactlyOne(vars []Var) {
	m.AddSumEqual(vars, 1)
}

// AddSumEqual constrains the count of true variables among vars to equal
// total: at least total positives and at least len(vars)-total negatives.
func (m *SATModel) AddSumEqual(vars []Var, total int) {
	n := len(vars)
	if total < 0 || total > n {
		m.unsat = true

		return
	}
	if total > 0 {
		lits := make([]int, n)
		for i, v := range vars {
			lits[i] = intLit(v.Lit())
		}
		m.constrs = append(m.constrs, solver.CardConstr{Lits: lits, AtLeast: total})
	}
	if total < n {
		negs := make([]int, n)
		for i, v := range vars {
			negs[i] = intLit(v.Not())
		}
		m.constrs = append(m.constrs, solver.CardConstr{Lits: negs, AtLeast: n - total})
	}
}

// AddDisjunction adds the clause "at least one literal holds". An empty
// disjunction makes the model infeasible.
func (m *SATModel) AddDisjunction(lits []Lit) {
	if len(lits) == 0 {
		m.unsat = true

		return
	}
	ints := make([]int, len(lits))
	for i, l := range lits {
		ints[i] = intLit(l)
	}
	m.constrs = append(m.constrs, solver.CardConstr{Lits: ints, AtLeast: 1})
}

// AddImplication adds antecedent → consequent as the clause (¬a ∨ b).
func (m *SATModel) AddImplication(antecedent, consequent Var) {
	m.AddDisjunction([]Lit{antecedent.Not(), consequent.Lit()})
}

// Solve runs gophersat once. Satisfiable models report StatusFeasible
// (the formulation is satisfaction-only, so there is nothing to optimize);
// a proof of unsatisfiability reports StatusInfeasible; anything else,
// StatusUnknown.
func (m *SATModel) Solve() Status {
	if m.unsat {
		return StatusInfeasible
	}
	if len(m.constrs) == 0 {
		// No constraints: the empty assignment satisfies the model.
		m.solved = true

		return StatusFeasible
	}
	pb := solver.ParseCardConstrs(m.constrs)
	s := solver.New(pb)
	switch s.Solve() {
	case solver.Sat:
		m.model = s.Model()
		m.solved = true

		return StatusFeasible
	case solver.Unsat:
		return StatusInfeasible
	default:
		return StatusUnknown
	}
}

// BoolValue returns v's value in the satisfying assignment. Variables the
// engine never saw (absent from every constraint) default to false.
func (m *SATModel) BoolValue(v Var) bool {
	if !m.solved || int(v) >= len(m.model) {
		return false
	}

	return m.model[v]
}
