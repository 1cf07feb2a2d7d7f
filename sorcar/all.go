package sorcar

import "github.com/anjanaskumar27/winnow-ice/model"
import "github.com/anjanaskumar27/winnow-ice/pset"

// All computes R by adding, at every step, every predicate that
// resolves a violation: every 0-entry candidate for a violated
// negative example, and every 0-entry candidate across every premise of
// an active Horn constraint.
func All(st *model.Store, x, rIn pset.Hypothesis) (pset.Hypothesis, error) {
	r, xMinusR, err := checkedPrepare(x, rIn)
	if err != nil {
		return nil, err
	}
	negativePass(st, r, xMinusR, violators)
	hornPass(st, r, xMinusR, extendAllPremises)
	return r, nil
}
