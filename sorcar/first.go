package sorcar

import (
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

func pickFirst(dp *model.DataPoint, candidates pset.Conjunction) []z.Pred {
	if p, ok := firstViolator(dp, candidates); ok {
		return []z.Pred{p}
	}
	return nil
}

// First computes R by adding, at every step, only the single lowest-index
// predicate that resolves a violation: the first 0-entry candidate for a
// violated negative example, and one 0-entry candidate from the first
// premise of an active Horn constraint that has one.
func First(st *model.Store, x, rIn pset.Hypothesis) (pset.Hypothesis, error) {
	r, xMinusR, err := checkedPrepare(x, rIn)
	if err != nil {
		return nil, err
	}
	negativePass(st, r, xMinusR, pickFirst)
	hornPass(st, r, xMinusR, extendFirstPremise)
	return r, nil
}
