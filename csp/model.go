package csp

// Var is an opaque handle to a boolean decision variable of a Model.
// Handles are only meaningful to the Model that created them.
type Var int

// Lit is a possibly negated variable, as used in disjunctions.
type Lit struct {
	Var Var
	Neg bool
}

// Lit returns the positive literal of v.
func (v Var) Lit() Lit {
	return Lit{Var: v}
}

// Not returns the negated literal of v.
func (v Var) Not() Lit {
	return Lit{Var: v, Neg: true}
}

// Status is the terminal outcome of a Solve call.
type Status int

const (
	// StatusUnknown covers every solver outcome that is neither a proof of
	// satisfiability nor of infeasibility; callers treat it as a fault.
	StatusUnknown Status = iota
	// StatusOptimal indicates a provably optimal assignment was found.
	StatusOptimal
	// StatusFeasible indicates a satisfying assignment was found.
	StatusFeasible
	// StatusInfeasible indicates a proof that no assignment exists.
	StatusInfeasible
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Model is the consumed solving-engine capability. All constraint methods
// accumulate into the model; Solve is invoked once per model, blocking
// until the engine terminates. BoolValue is meaningful only after Solve
// returned StatusOptimal or StatusFeasible.
type Model interface {
	// NewBoolVar allocates a fresh boolean variable. The name is
	// diagnostic only and need not be unique.
	NewBoolVar(name string) Var
	// AddExactlyOne constrains exactly one of vars to be true.
	AddExactlyOne(vars []Var)
	// AddSumEqual constrains the number of true variables among vars to
	// equal total exactly.
	AddSumEqual(vars []Var, total int)
	// AddDisjunction constrains at least one literal to hold.
	AddDisjunction(lits []Lit)
	// AddImplication constrains consequent to be true whenever antecedent is.
	AddImplication(antecedent, consequent Var)
	// Solve runs the engine once and reports the terminal status.
	Solve() Status
	// BoolValue returns the value of v in the found assignment.
	BoolValue(v Var) bool
}
