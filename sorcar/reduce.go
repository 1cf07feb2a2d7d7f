// Package sorcar implements the four Sorcar reducers of §4.3: all,
// first, greedy, and minimal, each computing a consistent R ⊆ X that
// monotonically extends a caller-supplied starting hypothesis.
package sorcar

import (
	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

func checkedPrepare(x, r pset.Hypothesis) (pset.Hypothesis, pset.Hypothesis, error) {
	if len(x) == 0 {
		return nil, nil, errs.InvalidInputf("X must not be empty")
	}
	return pset.Prepare(x, r)
}

// violators returns, in ascending predicate order, every candidate in
// xMinusR that dp falsifies (dp.Bits[p] == false).
func violators(dp *model.DataPoint, xMinusR pset.Conjunction) []z.Pred {
	var out []z.Pred
	for _, p := range xMinusR {
		if !dp.Bits[p] {
			out = append(out, p)
		}
	}
	return out
}

// firstViolator returns the first (lowest-index) candidate dp
// falsifies, if any.
func firstViolator(dp *model.DataPoint, xMinusR pset.Conjunction) (z.Pred, bool) {
	for _, p := range xMinusR {
		if !dp.Bits[p] {
			return p, true
		}
	}
	return 0, false
}

// moveInto adds p to r[loc] and removes it from xMinusR[loc].
func moveInto(r, xMinusR pset.Hypothesis, loc z.Loc, p z.Pred) {
	r[loc].Add(p)
	xMinusR[loc].Remove(p)
}

// negativePass runs the §4.3 "common negative pass" once: for every
// negative example currently satisfying R, it adds the violating
// predicates pick selects to R. It runs exactly once per call, as
// specified ("Run the negative pass once, then fix-point the Horn
// pass.") — greedy handles its negative step separately, since it defers
// selection into the same scoring loop as the Horn pass.
func negativePass(st *model.Store, r, xMinusR pset.Hypothesis, pick func(dp *model.DataPoint, candidates pset.Conjunction) []z.Pred) {
	for i := range st.Points {
		dp := &st.Points[i]
		if dp.Label != model.Negative {
			continue
		}
		if !pset.Satisfies(dp, r[dp.Loc]) {
			continue
		}
		for _, p := range pick(dp, xMinusR[dp.Loc]) {
			moveInto(r, xMinusR, dp.Loc, p)
		}
	}
}

// hornPass fixed-points the §4.3 "common Horn pass": constraints whose
// premises fail R are dropped as vacuous; constraints whose conclusion
// already satisfies R are kept for re-examination (R only grows, and
// growing R can turn a satisfied conclusion unsatisfied later); every
// other (active) constraint is extended via extend and then dropped,
// since extension is guaranteed to falsify at least one premise.
func hornPass(st *model.Store, r, xMinusR pset.Hypothesis, extend func(hc model.Horn, st *model.Store, r, xMinusR pset.Hypothesis)) {
	active := make([]model.Horn, len(st.Horns))
	copy(active, st.Horns)

	for {
		progressed := false
		kept := active[:0]
		for _, hc := range active {
			if !pset.PremisesSatisfied(hc.Premises, r, st) {
				continue // vacuous: drop for good
			}
			if pset.ConclusionSatisfied(hc, r, st) {
				kept = append(kept, hc) // satisfied: re-check next round
				continue
			}
			extend(hc, st, r, xMinusR)
			progressed = true
		}
		active = kept
		if !progressed {
			break
		}
	}
}

// extendAllPremises adds, for every premise of hc, every candidate it
// falsifies — the "all" extension strategy, also used by Horn's shared
// pass for the "all" variant.
func extendAllPremises(hc model.Horn, st *model.Store, r, xMinusR pset.Hypothesis) {
	for _, ref := range hc.Premises {
		dp := st.Point(ref)
		for _, p := range violators(dp, xMinusR[dp.Loc]) {
			moveInto(r, xMinusR, dp.Loc, p)
		}
	}
}

// extendFirstPremise adds one candidate from the first premise (in
// premise order) that falsifies any candidate, then stops.
func extendFirstPremise(hc model.Horn, st *model.Store, r, xMinusR pset.Hypothesis) {
	for _, ref := range hc.Premises {
		dp := st.Point(ref)
		if p, ok := firstViolator(dp, xMinusR[dp.Loc]); ok {
			moveInto(r, xMinusR, dp.Loc, p)
			return
		}
	}
}
