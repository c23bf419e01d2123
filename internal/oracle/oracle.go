// Package oracle abstracts the constraint-solving engine behind a narrow
// finite-domain interface: declare variables over integer domains, post hard
// constraints and weighted soft terms, solve, read values back. The schedule
// builder depends only on this interface, never on a concrete backend.
package oracle

import (
	"errors"
	"sync/atomic"
)

// Var is a handle to a declared variable.
type Var int

// Status classifies the outcome of a Solve call.
type Status int

const (
	// Unknown means the backend gave up without an answer.
	Unknown Status = iota
	// Sat means a feasible assignment was found, with no optimality claim.
	Sat
	// Optimum means a feasible assignment was found and proven optimal for
	// the posted soft terms.
	Optimum
	// Unsat means the hard constraints admit no assignment.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Optimum:
		return "OPTIMUM"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of a solve. Cost is the total weight of violated
// soft terms (0 when everything held); Reason carries best-effort
// diagnostics on Unsat or Unknown.
type Result struct {
	Status Status
	Cost   int
	Reason string
}

// Solver is the modeling surface consumed by the schedule builder. Backends
// differ in capability: a decision-only backend ignores the soft methods and
// reports Sat instead of Optimum.
type Solver interface {
	// NewVar declares a variable ranging over the given non-empty domain.
	NewVar(name string, domain []int) Var

	// Distinct requires all vars to take pairwise different values.
	Distinct(vars []Var)
	// AtMostAt requires that at most k of vars take the given value.
	AtMostAt(vars []Var, value, k int)
	// Before requires v to be strictly less than every var in others.
	Before(v Var, others []Var)
	// MinSeparation requires |a - b| >= gap.
	MinSeparation(a, b Var, gap int)
	// NotEqual requires a != b.
	NotEqual(a, b Var)
	// Covered requires v's value to be taken by at least one witness.
	Covered(v Var, witnesses []Var)

	// PenalizeEqual adds cost weight whenever a == b.
	PenalizeEqual(a, b Var, weight int)
	// PenalizeWithin adds cost weight whenever |a - b| < gap.
	PenalizeWithin(a, b Var, gap, weight int)
	// RewardValueUsed adds cost weight unless some var in group takes value.
	RewardValueUsed(group []Var, value, weight int)
	// PenalizeValueUsed adds cost weight whenever some var in group takes value.
	PenalizeValueUsed(group []Var, value, weight int)

	// Optimizes reports whether the backend honors soft terms.
	Optimizes() bool

	// Solve runs the search to completion. Blocking; no internal timeout.
	Solve() Result
	// Value returns v's assigned value. Defined only after Sat or Optimum.
	Value(v Var) (int, error)
}

// ErrSessionActive is returned when a second concurrent solve session is
// requested while one is live in the process.
var ErrSessionActive = errors.New("oracle: a solve session is already active in this process")

var sessionActive atomic.Bool

// Session is the process-wide exclusive right to build and solve one model.
// The underlying engines hold global state, so at most one live session may
// exist at a time; a second AcquireSession fails fast instead of corrupting
// the first.
type Session struct {
	released atomic.Bool
}

// AcquireSession claims the process-wide solve session.
func AcquireSession() (*Session, error) {
	if !sessionActive.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}
	return &Session{}, nil
}

// Release frees the session. Safe to call more than once.
func (s *Session) Release() {
	if s == nil {
		return
	}
	if s.released.CompareAndSwap(false, true) {
		sessionActive.Store(false)
	}
}
