package sorcar

import (
	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// Minimal computes a cardinality-minimum consistent R by encoding §3's
// consistency definition as a CNF formula over one Boolean selection
// variable per candidate in X\R — one clause per violated negative
// example, and for each Horn constraint either a clause forcing a
// premise violator to be chosen or, when the conclusion is already
// satisfied, one clause per conclusion violator protecting it — and
// handing the formula to solver to find a minimum-cardinality model.
func Minimal(st *model.Store, x, rIn pset.Hypothesis, solver CardinalitySolver) (pset.Hypothesis, error) {
	r, xMinusR, err := checkedPrepare(x, rIn)
	if err != nil {
		return nil, err
	}

	varOf := map[predKey]int{}
	var order []predKey
	for loc, c := range xMinusR {
		for _, p := range c {
			key := predKey{z.Loc(loc), p}
			varOf[key] = len(order)
			order = append(order, key)
		}
	}
	if len(order) == 0 {
		return r, nil
	}

	var clauses []Clause
	for i := range st.Points {
		dp := &st.Points[i]
		if dp.Label != model.Negative {
			continue
		}
		if !pset.Satisfies(dp, r[dp.Loc]) {
			continue
		}
		var cl Clause
		for _, p := range violators(dp, xMinusR[dp.Loc]) {
			cl = append(cl, Lit{Var: varOf[predKey{dp.Loc, p}]})
		}
		if len(cl) == 0 {
			return nil, errs.Inconsistentf("negative example at %s admits no violating candidate", dp.Loc)
		}
		clauses = append(clauses, cl)
	}

	for _, hc := range st.Horns {
		if !pset.PremisesSatisfied(hc.Premises, r, st) {
			continue
		}
		var premiseViolators Clause
		for _, ref := range hc.Premises {
			dp := st.Point(ref)
			for _, p := range violators(dp, xMinusR[dp.Loc]) {
				premiseViolators = append(premiseViolators, Lit{Var: varOf[predKey{dp.Loc, p}]})
			}
		}
		if pset.ConclusionSatisfied(hc, r, st) {
			concl := st.Point(hc.Conclusion.Ref)
			conclViolators := violators(concl, xMinusR[concl.Loc])
			if len(conclViolators) == 0 {
				continue // conclusion can never be broken: no constraint needed
			}
			for _, q := range conclViolators {
				cl := append(Clause{}, premiseViolators...)
				cl = append(cl, Lit{Var: varOf[predKey{concl.Loc, q}], Neg: true})
				clauses = append(clauses, cl)
			}
			continue
		}
		if len(premiseViolators) == 0 {
			return nil, errs.Inconsistentf("Horn constraint has no violating candidate to resolve it")
		}
		clauses = append(clauses, premiseViolators)
	}

	assignment, err := solver.Solve(len(order), clauses)
	if err != nil {
		return nil, err
	}
	for i, selected := range assignment {
		if selected {
			moveInto(r, xMinusR, order[i].loc, order[i].pred)
		}
	}
	return r, nil
}
