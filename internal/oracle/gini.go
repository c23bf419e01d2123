package oracle

import (
	"fmt"
	"sort"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/samber/lo"
)

// Gini is the decision-only backend, built on the gini SAT solver. It uses
// the same direct encoding as the gophersat backend but can only express
// plain clauses, so cardinalities are expanded into (k+1)-subset clauses and
// every soft term is ignored: Solve reports Sat, never Optimum.
type Gini struct {
	g      *gini.Gini
	vars   []giniVar
	litSeq int
	solved bool
}

type giniVar struct {
	name   string
	domain []int
	lits   map[int]z.Lit
}

// NewGini returns an empty model.
func NewGini() *Gini {
	return &Gini{g: gini.New()}
}

func (s *Gini) NewVar(name string, domain []int) Var {
	if len(domain) == 0 {
		panic(fmt.Sprintf("oracle: variable %q declared with an empty domain", name))
	}
	dom := lo.Uniq(domain)
	sort.Ints(dom)
	lits := make(map[int]z.Lit, len(dom))
	atLeastOne := make([]z.Lit, len(dom))
	for i, d := range dom {
		s.litSeq++
		m := z.Var(s.litSeq).Pos()
		lits[d] = m
		atLeastOne[i] = m
	}
	v := Var(len(s.vars))
	s.vars = append(s.vars, giniVar{name: name, domain: dom, lits: lits})

	s.addClause(atLeastOne...)
	forEachCombination(len(dom), 2, func(idx []int) {
		s.addClause(atLeastOne[idx[0]].Not(), atLeastOne[idx[1]].Not())
	})
	return v
}

func (s *Gini) Distinct(vars []Var) {
	for _, value := range s.valueUnion(vars) {
		lits := s.litsAt(vars, value)
		forEachCombination(len(lits), 2, func(idx []int) {
			s.addClause(lits[idx[0]].Not(), lits[idx[1]].Not())
		})
	}
}

func (s *Gini) AtMostAt(vars []Var, value, k int) {
	lits := s.litsAt(vars, value)
	if len(lits) <= k {
		return
	}
	forEachCombination(len(lits), k+1, func(idx []int) {
		clause := make([]z.Lit, len(idx))
		for i, j := range idx {
			clause[i] = lits[j].Not()
		}
		s.addClause(clause...)
	})
}

func (s *Gini) Before(v Var, others []Var) {
	for _, w := range others {
		for _, dv := range s.vars[v].domain {
			clause := []z.Lit{s.vars[v].lits[dv].Not()}
			for _, dw := range s.vars[w].domain {
				if dw > dv {
					clause = append(clause, s.vars[w].lits[dw])
				}
			}
			s.addClause(clause...)
		}
	}
}

func (s *Gini) MinSeparation(a, b Var, gap int) {
	for _, da := range s.vars[a].domain {
		for _, db := range s.vars[b].domain {
			if abs(da-db) < gap {
				s.addClause(s.vars[a].lits[da].Not(), s.vars[b].lits[db].Not())
			}
		}
	}
}

func (s *Gini) NotEqual(a, b Var) {
	for _, d := range s.vars[a].domain {
		if mb, ok := s.vars[b].lits[d]; ok {
			s.addClause(s.vars[a].lits[d].Not(), mb.Not())
		}
	}
}

func (s *Gini) Covered(v Var, witnesses []Var) {
	for _, dv := range s.vars[v].domain {
		clause := []z.Lit{s.vars[v].lits[dv].Not()}
		for _, w := range witnesses {
			if m, ok := s.vars[w].lits[dv]; ok {
				clause = append(clause, m)
			}
		}
		s.addClause(clause...)
	}
}

// Soft terms are beyond this backend's capability and are dropped.

func (s *Gini) PenalizeEqual(a, b Var, weight int)               {}
func (s *Gini) PenalizeWithin(a, b Var, gap, weight int)         {}
func (s *Gini) RewardValueUsed(group []Var, value, weight int)   {}
func (s *Gini) PenalizeValueUsed(group []Var, value, weight int) {}

func (s *Gini) Optimizes() bool {
	return false
}

func (s *Gini) Solve() Result {
	switch s.g.Solve() {
	case 1:
		s.solved = true
		return Result{Status: Sat}
	case -1:
		return Result{Status: Unsat, Reason: "hard constraints unsatisfiable (this backend extracts no core)"}
	default:
		return Result{Status: Unknown, Reason: "search ended without an answer"}
	}
}

func (s *Gini) Value(v Var) (int, error) {
	if !s.solved {
		return 0, fmt.Errorf("oracle: no model available for %s", s.vars[v].name)
	}
	for _, d := range s.vars[v].domain {
		if s.g.Value(s.vars[v].lits[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("oracle: %s is unassigned in the model", s.vars[v].name)
}

func (s *Gini) addClause(lits ...z.Lit) {
	for _, m := range lits {
		s.g.Add(m)
	}
	s.g.Add(z.LitNull)
}

func (s *Gini) litsAt(vars []Var, value int) []z.Lit {
	var lits []z.Lit
	for _, v := range vars {
		if m, ok := s.vars[v].lits[value]; ok {
			lits = append(lits, m)
		}
	}
	return lits
}

func (s *Gini) valueUnion(vars []Var) []int {
	seen := make(map[int]bool)
	var values []int
	for _, v := range vars {
		for _, d := range s.vars[v].domain {
			if !seen[d] {
				seen[d] = true
				values = append(values, d)
			}
		}
	}
	sort.Ints(values)
	return values
}
