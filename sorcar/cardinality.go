package sorcar

import (
	"time"

	gini "github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	giniz "github.com/go-air/gini/z"

	"github.com/anjanaskumar27/winnow-ice/errs"
)

// Lit is one literal of a clause over a CardinalitySolver's variables,
// numbered 0..numVars-1.
type Lit struct {
	Var int
	Neg bool
}

// Clause is a disjunction of Lits.
type Clause []Lit

// CardinalitySolver finds a satisfying assignment to a CNF formula over
// numVars Boolean variables with as few variables set true as possible.
// Implementations search increasing size bounds rather than solving a
// true optimization problem in one shot.
type CardinalitySolver interface {
	Solve(numVars int, clauses []Clause) ([]bool, error)
}

// GiniSolver is the default CardinalitySolver. It encodes the bound
// "at most k variables true" with go-air/gini/logic's sorting-network
// cardinality constraint and increments k until go-air/gini finds a
// satisfying assignment.
type GiniSolver struct {
	// Timeout bounds each individual cardinality-bound attempt, the same
	// way cmd/gini bounds a solve with GoSolve().Try(d). Zero means no
	// bound: call Solve() directly on the calling goroutine.
	Timeout time.Duration
}

// candVar adapts a *gini.Gini into the variable-allocator interface
// logic.NewCardSort needs to build its sorting network; Gini itself only
// exposes Add, not fresh-variable allocation.
type candVar struct {
	g    *gini.Gini
	next giniz.Var
}

func newCandVar(g *gini.Gini) *candVar {
	return &candVar{g: g, next: g.MaxVar() + 1}
}

func (c *candVar) Add(m giniz.Lit) { c.g.Add(m) }

func (c *candVar) Lit() giniz.Lit {
	v := c.next
	c.next++
	return v.Pos()
}

func (c GiniSolver) Solve(numVars int, clauses []Clause) ([]bool, error) {
	if numVars == 0 {
		return nil, nil
	}

	g := gini.New()
	lits := make([]giniz.Lit, numVars)
	for i := 0; i < numVars; i++ {
		v := g.MaxVar() + 1
		lit := v.Pos()
		// tautological clause: registers the variable without
		// constraining it, so unused variables still exist.
		g.Add(lit)
		g.Add(lit.Not())
		g.Add(giniz.LitNull)
		lits[i] = lit
	}

	for _, cl := range clauses {
		if len(cl) == 0 {
			return nil, errs.Inconsistentf("empty clause: formula is unsatisfiable")
		}
		for _, l := range cl {
			lit := lits[l.Var]
			if l.Neg {
				lit = lit.Not()
			}
			g.Add(lit)
		}
		g.Add(giniz.LitNull)
	}

	card := logic.NewCardSort(lits, newCandVar(g))

	for k := 1; k <= numVars; k++ {
		g.Assume(card.Leq(k))
		switch c.solveOnce(g) {
		case 1:
			out := make([]bool, numVars)
			for i, lit := range lits {
				out[i] = g.Value(lit)
			}
			return out, nil
		case -1:
			continue
		default:
			return nil, errs.SolverFailuref("gini returned an indeterminate result at bound %d", k)
		}
	}
	return nil, errs.Inconsistentf("no satisfying assignment within %d variables", numVars)
}

// solveOnce runs one Solve() call, bounded by c.Timeout via a background
// GoSolve() handle when set, matching cmd/gini's own x.GoSolve();
// conn.Try(*timeout) pattern.
func (c GiniSolver) solveOnce(g *gini.Gini) int {
	if c.Timeout <= 0 {
		return g.Solve()
	}
	return g.GoSolve().Try(c.Timeout)
}
