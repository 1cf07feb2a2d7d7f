// Package horndini computes X, the largest consistent per-location
// conjunction, per §4.2.
package horndini

import (
	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
)

// activeHorn is the working copy of a Horn constraint: premises not yet
// discharged. Horndini mutates this copy, never st.Horns itself.
type activeHorn struct {
	premises   []model.PointRef
	conclusion model.Conclusion
}

// Run computes X by initializing each location's conjunction to its
// full interval and alternating a knock-out pass over positive examples
// with a firing pass over Horn constraints until a fixed point: the
// positive work queue is empty and a full firing pass discharges
// nothing new. It returns errs.ErrInconsistent if some Horn constraint's
// premises all become satisfied while its conclusion is ⊥.
func Run(st *model.Store) (pset.Hypothesis, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	x := make(pset.Hypothesis, len(st.Intervals))
	for k, iv := range st.Intervals {
		x[k] = pset.NewConjunctionFromInterval(iv)
	}

	horns := make([]activeHorn, len(st.Horns))
	for i, h := range st.Horns {
		premises := make([]model.PointRef, len(h.Premises))
		copy(premises, h.Premises)
		horns[i] = activeHorn{premises: premises, conclusion: h.Conclusion}
	}

	var queue []model.PointRef
	for i := range st.Points {
		if st.Points[i].Label == model.Positive {
			queue = append(queue, model.PointRef(i))
		}
	}

	for {
		knockOut(st, x, queue)
		queue = queue[:0]

		remaining := horns[:0]
		for _, h := range horns {
			h.premises = dischargeSatisfied(st, x, h.premises)
			if len(h.premises) > 0 {
				remaining = append(remaining, h)
				continue
			}
			if h.conclusion.IsFalse {
				return nil, errs.Inconsistentf("no consistent conjunction exists")
			}
			queue = append(queue, h.conclusion.Ref)
		}
		horns = remaining
		if len(queue) == 0 {
			break
		}
	}

	return x, nil
}

// knockOut removes, for every positive point in the queue, every
// predicate in its location's conjunction that the point falsifies.
func knockOut(st *model.Store, x pset.Hypothesis, queue []model.PointRef) {
	for _, ref := range queue {
		dp := st.Point(ref)
		kept := x[dp.Loc][:0]
		for _, p := range x[dp.Loc] {
			if dp.Bits[p] {
				kept = append(kept, p)
			}
		}
		x[dp.Loc] = kept
	}
}

// dischargeSatisfied drops every premise that already satisfies its
// location's current conjunction, returning the premises that remain.
func dischargeSatisfied(st *model.Store, x pset.Hypothesis, premises []model.PointRef) []model.PointRef {
	kept := premises[:0]
	for _, ref := range premises {
		dp := st.Point(ref)
		if !pset.Satisfies(dp, x[dp.Loc]) {
			kept = append(kept, ref)
		}
	}
	return kept
}
