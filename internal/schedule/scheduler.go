package schedule

import (
	"fmt"

	"github.com/nottschess/leaguegen/internal/league"
	"github.com/nottschess/leaguegen/internal/oracle"
)

// UnsatisfiableError reports that the league's rules admit no schedule. It
// carries the oracle's diagnostic but no partial result; infeasibility needs
// a human to loosen the data or the policy, not a retry.
type UnsatisfiableError struct {
	Status oracle.Status
	Reason string
}

func (e *UnsatisfiableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("schedule: constraints unsatisfiable (%s)", e.Status)
	}
	return fmt.Sprintf("schedule: constraints unsatisfiable (%s): %s", e.Status, e.Reason)
}

type state int

const (
	unbuilt state = iota
	built
	solved
	failed
)

// Scheduler drives one solve: Build lowers the league onto the oracle,
// Solve runs the search and writes the resolved dates back onto the
// fixtures. A Scheduler is single-use; after a terminal Solve, build a new
// one. The oracle session guard makes a second concurrent build in the same
// process fail fast with oracle.ErrSessionActive.
type Scheduler struct {
	league  *league.League
	solver  oracle.Solver
	policy  Policy
	enc     dateEncoding
	session *oracle.Session

	vars    []oracle.Var // by fixture ID
	domains [][]int      // by fixture ID
	state   state
}

// New prepares a scheduler for the league on the given backend.
func New(l *league.League, solver oracle.Solver, policy Policy) *Scheduler {
	return &Scheduler{
		league: l,
		solver: solver,
		policy: policy,
		enc:    newDateEncoding(l),
	}
}

// Build declares variables and posts every constraint and objective term.
// Idempotent: a second call on a built scheduler is a no-op.
func (s *Scheduler) Build() error {
	switch s.state {
	case built:
		return nil
	case solved, failed:
		return fmt.Errorf("schedule: scheduler already ran; construct a new one")
	}

	session, err := oracle.AcquireSession()
	if err != nil {
		return err
	}
	s.session = session

	if err := s.declareVariables(); err != nil {
		s.state = failed
		s.session.Release()
		return err
	}
	s.postConstraints()
	s.postObjective()
	s.state = built
	return nil
}

// Solve builds if needed, invokes the oracle, and on success decodes every
// fixture's offset back to a date, iterating fixtures in declaration order
// so repeated runs produce identical output ordering.
func (s *Scheduler) Solve() (oracle.Result, error) {
	if s.state == unbuilt {
		if err := s.Build(); err != nil {
			return oracle.Result{}, err
		}
	}
	if s.state != built {
		return oracle.Result{}, fmt.Errorf("schedule: scheduler already ran; construct a new one")
	}
	defer s.session.Release()

	res := s.solver.Solve()
	switch res.Status {
	case oracle.Sat, oracle.Optimum:
		if err := s.decode(); err != nil {
			s.state = failed
			return res, err
		}
		s.state = solved
		return res, nil
	default:
		s.state = failed
		return res, &UnsatisfiableError{Status: res.Status, Reason: res.Reason}
	}
}

func (s *Scheduler) declareVariables() error {
	fixtures := s.league.Fixtures()
	s.vars = make([]oracle.Var, len(fixtures))
	s.domains = make([][]int, len(fixtures))
	for _, f := range fixtures {
		domain := fixtureDomain(s.league, s.enc, f)
		if len(domain) == 0 {
			return &UnsatisfiableError{
				Status: oracle.Unsat,
				Reason: fmt.Sprintf("fixture %s has no admissible date", f.Name()),
			}
		}
		s.domains[f.ID] = domain
		s.vars[f.ID] = s.solver.NewVar(f.Name(), domain)
	}
	return nil
}

func (s *Scheduler) decode() error {
	for _, f := range s.league.Fixtures() {
		value, err := s.solver.Value(s.vars[f.ID])
		if err != nil {
			return fmt.Errorf("schedule: reading %s back: %w", f.Name(), err)
		}
		f.Date = s.enc.intToDate(value)
	}
	return nil
}
