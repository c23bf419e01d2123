package oracle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crillab/gophersat/explain"
	"github.com/crillab/gophersat/maxsat"
	"github.com/samber/lo"
)

// mirrorClauseBudget caps how many clauses the diagnostic CNF mirror may
// grow to when cardinality constraints are expanded into plain clauses.
// Past the cap, unsat core extraction is skipped rather than blowing up.
const mirrorClauseBudget = 200000

// Gophersat is the full-capability backend, built on the gophersat MaxSAT
// engine. Finite-domain variables are lowered with a direct encoding: one
// boolean per (variable, value), an exactly-one constraint per variable,
// hard constraints as clauses and cardinalities, soft terms as weighted
// clauses. Unsat diagnostics come from a MUS extracted over a labelled
// clause mirror of the hard constraints.
type Gophersat struct {
	vars    []gsVar
	constrs []maxsat.Constr
	hasSoft bool
	auxSeq  int

	// diagnostic mirror of clause-expressible hard constraints
	cnf          [][]int
	litIDs       map[string]int
	litCount     int
	clauseLabels map[string]string
	mirrorBudget int
	diagnosable  bool

	model maxsat.Model
}

type gsVar struct {
	name   string
	domain []int
	has    map[int]bool
}

// NewGophersat returns an empty model.
func NewGophersat() *Gophersat {
	return &Gophersat{
		litIDs:       make(map[string]int),
		clauseLabels: make(map[string]string),
		mirrorBudget: mirrorClauseBudget,
		diagnosable:  true,
	}
}

func (g *Gophersat) NewVar(name string, domain []int) Var {
	if len(domain) == 0 {
		panic(fmt.Sprintf("oracle: variable %q declared with an empty domain", name))
	}
	dom := lo.Uniq(domain)
	sort.Ints(dom)
	has := make(map[int]bool, len(dom))
	for _, d := range dom {
		has[d] = true
	}
	v := Var(len(g.vars))
	g.vars = append(g.vars, gsVar{name: name, domain: dom, has: has})

	lits := make([]maxsat.Lit, len(dom))
	for i, d := range dom {
		lits[i] = g.lit(v, d)
	}
	g.hardClause(fmt.Sprintf("%s is scheduled", name), lits...)
	g.atMost(lits, 1, fmt.Sprintf("%s is scheduled once", name))
	return v
}

func (g *Gophersat) Distinct(vars []Var) {
	for _, value := range g.valueUnion(vars) {
		lits, names := g.litsAt(vars, value)
		if len(lits) < 2 {
			continue
		}
		g.atMost(lits, 1, fmt.Sprintf("day %d shared by %s", value, strings.Join(names, ", ")))
	}
}

func (g *Gophersat) AtMostAt(vars []Var, value, k int) {
	lits, names := g.litsAt(vars, value)
	if len(lits) <= k {
		return
	}
	g.atMost(lits, k, fmt.Sprintf("more than %d matches on day %d among %s", k, value, strings.Join(names, ", ")))
}

func (g *Gophersat) Before(v Var, others []Var) {
	for _, w := range others {
		label := fmt.Sprintf("%s before %s", g.vars[v].name, g.vars[w].name)
		for _, dv := range g.vars[v].domain {
			clause := []maxsat.Lit{g.lit(v, dv).Negation()}
			for _, dw := range g.vars[w].domain {
				if dw > dv {
					clause = append(clause, g.lit(w, dw))
				}
			}
			g.hardClause(label, clause...)
		}
	}
}

func (g *Gophersat) MinSeparation(a, b Var, gap int) {
	label := fmt.Sprintf("%s and %s at least %d days apart", g.vars[a].name, g.vars[b].name, gap)
	for _, da := range g.vars[a].domain {
		for _, db := range g.vars[b].domain {
			if abs(da-db) < gap {
				g.hardClause(label, g.lit(a, da).Negation(), g.lit(b, db).Negation())
			}
		}
	}
}

func (g *Gophersat) NotEqual(a, b Var) {
	label := fmt.Sprintf("%s and %s on the same day", g.vars[a].name, g.vars[b].name)
	for _, d := range g.vars[a].domain {
		if g.vars[b].has[d] {
			g.hardClause(label, g.lit(a, d).Negation(), g.lit(b, d).Negation())
		}
	}
}

func (g *Gophersat) Covered(v Var, witnesses []Var) {
	label := fmt.Sprintf("%s shares its day with a witness fixture", g.vars[v].name)
	for _, dv := range g.vars[v].domain {
		clause := []maxsat.Lit{g.lit(v, dv).Negation()}
		for _, w := range witnesses {
			if g.vars[w].has[dv] {
				clause = append(clause, g.lit(w, dv))
			}
		}
		g.hardClause(label, clause...)
	}
}

func (g *Gophersat) PenalizeEqual(a, b Var, weight int) {
	for _, d := range g.vars[a].domain {
		if g.vars[b].has[d] {
			g.softClause(weight, g.lit(a, d).Negation(), g.lit(b, d).Negation())
		}
	}
}

func (g *Gophersat) PenalizeWithin(a, b Var, gap, weight int) {
	for _, da := range g.vars[a].domain {
		for _, db := range g.vars[b].domain {
			if abs(da-db) < gap {
				g.softClause(weight, g.lit(a, da).Negation(), g.lit(b, db).Negation())
			}
		}
	}
}

func (g *Gophersat) RewardValueUsed(group []Var, value, weight int) {
	lits, _ := g.litsAt(group, value)
	if len(lits) == 0 {
		return
	}
	g.softClause(weight, lits...)
}

func (g *Gophersat) PenalizeValueUsed(group []Var, value, weight int) {
	lits, _ := g.litsAt(group, value)
	if len(lits) == 0 {
		return
	}
	g.auxSeq++
	used := maxsat.Var(fmt.Sprintf("used#%d", g.auxSeq))
	for _, l := range lits {
		// x -> used; not mirrored, it can never cause unsatisfiability
		g.constrs = append(g.constrs, maxsat.HardClause(l.Negation(), used))
	}
	g.softClause(weight, used.Negation())
}

func (g *Gophersat) Optimizes() bool {
	return true
}

func (g *Gophersat) Solve() Result {
	problem := maxsat.New(g.constrs...)
	model, cost := problem.Solve()
	if model == nil {
		return Result{Status: Unsat, Reason: g.diagnose()}
	}
	g.model = model
	if g.hasSoft {
		return Result{Status: Optimum, Cost: cost}
	}
	return Result{Status: Sat}
}

func (g *Gophersat) Value(v Var) (int, error) {
	if g.model == nil {
		return 0, fmt.Errorf("oracle: no model available for %s", g.vars[v].name)
	}
	for _, d := range g.vars[v].domain {
		if g.model[g.litName(v, d)] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("oracle: %s is unassigned in the model", g.vars[v].name)
}

func (g *Gophersat) litName(v Var, value int) string {
	return fmt.Sprintf("v%d=%d", v, value)
}

func (g *Gophersat) lit(v Var, value int) maxsat.Lit {
	return maxsat.Var(g.litName(v, value))
}

func (g *Gophersat) litsAt(vars []Var, value int) ([]maxsat.Lit, []string) {
	var lits []maxsat.Lit
	var names []string
	for _, v := range vars {
		if g.vars[v].has[value] {
			lits = append(lits, g.lit(v, value))
			names = append(names, g.vars[v].name)
		}
	}
	return lits, names
}

func (g *Gophersat) valueUnion(vars []Var) []int {
	seen := make(map[int]bool)
	var values []int
	for _, v := range vars {
		for _, d := range g.vars[v].domain {
			if !seen[d] {
				seen[d] = true
				values = append(values, d)
			}
		}
	}
	sort.Ints(values)
	return values
}

func (g *Gophersat) hardClause(label string, lits ...maxsat.Lit) {
	g.constrs = append(g.constrs, maxsat.HardClause(lits...))
	clause := make([]int, len(lits))
	for i, l := range lits {
		clause[i] = g.intLit(l)
	}
	g.mirror(clause, label)
}

func (g *Gophersat) softClause(weight int, lits ...maxsat.Lit) {
	g.hasSoft = true
	g.constrs = append(g.constrs, maxsat.WeightedClause(lits, weight))
}

// atMost posts "at most k of lits are true" as a pseudo-boolean constraint
// and mirrors it as (k+1)-subset clauses for diagnostics.
func (g *Gophersat) atMost(lits []maxsat.Lit, k int, label string) {
	if len(lits) <= k {
		return
	}
	neg := make([]maxsat.Lit, len(lits))
	coeffs := make([]int, len(lits))
	for i, l := range lits {
		neg[i] = l.Negation()
		coeffs[i] = 1
	}
	g.constrs = append(g.constrs, maxsat.HardPBConstr(neg, coeffs, len(lits)-k))

	if !g.diagnosable {
		return
	}
	count := binomial(len(lits), k+1, g.mirrorBudget)
	if count > g.mirrorBudget {
		g.diagnosable = false
		return
	}
	g.mirrorBudget -= count
	forEachCombination(len(lits), k+1, func(idx []int) {
		clause := make([]int, len(idx))
		for i, j := range idx {
			clause[i] = -g.intLit(lits[j])
		}
		g.mirror(clause, label)
	})
}

func (g *Gophersat) intLit(l maxsat.Lit) int {
	id, ok := g.litIDs[l.Var]
	if !ok {
		g.litCount++
		id = g.litCount
		g.litIDs[l.Var] = id
	}
	if l.Negated {
		return -id
	}
	return id
}

func (g *Gophersat) mirror(clause []int, label string) {
	if !g.diagnosable {
		return
	}
	if len(g.cnf) >= g.mirrorBudget {
		g.diagnosable = false
		return
	}
	g.cnf = append(g.cnf, clause)
	key := clauseKey(clause)
	if _, ok := g.clauseLabels[key]; !ok {
		g.clauseLabels[key] = label
	}
}

// diagnose extracts a minimal unsatisfiable subset from the clause mirror
// and reports the labels of the conflicting constraints. Best effort: when
// the mirror was abandoned, or the conflict needs a cardinality constraint
// that is not clause-expressible, only a generic message is returned.
func (g *Gophersat) diagnose() string {
	const fallback = "hard constraints unsatisfiable"
	if !g.diagnosable {
		return fallback + " (core extraction skipped: model too large)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", g.litCount, len(g.cnf))
	for _, clause := range g.cnf {
		for _, l := range clause {
			fmt.Fprintf(&b, "%d ", l)
		}
		b.WriteString("0\n")
	}
	problem, err := explain.ParseCNF(strings.NewReader(b.String()))
	if err != nil {
		return fallback
	}
	mus, err := problem.MUS()
	if err != nil {
		return fallback
	}
	var labels []string
	for _, clause := range mus.Clauses {
		if label, ok := g.clauseLabels[clauseKey(clause)]; ok {
			labels = append(labels, label)
		}
	}
	labels = lo.Uniq(labels)
	if len(labels) == 0 {
		return fallback
	}
	return "conflicting constraints: " + strings.Join(labels, "; ")
}

func clauseKey(clause []int) string {
	sorted := append([]int(nil), clause...)
	sort.Ints(sorted)
	return fmt.Sprint(sorted)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
