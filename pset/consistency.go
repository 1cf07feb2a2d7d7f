package pset

import "github.com/anjanaskumar27/winnow-ice/model"

// IsConsistent implements the §3 definition verbatim: every positive
// example satisfies H[loc], every negative example does not, and every
// Horn constraint whose premises all satisfy their H[loc] has a
// conclusion that also does (conclusion = ⊥ is forbidden in that case).
// It is a pure predicate: it never mutates h or st.
func IsConsistent(h Hypothesis, st *model.Store) bool {
	for i := range st.Points {
		dp := &st.Points[i]
		if dp.Label == model.Unlabeled {
			continue
		}
		sat := Satisfies(dp, h[dp.Loc])
		if sat && dp.Label == model.Negative {
			return false
		}
		if !sat && dp.Label == model.Positive {
			return false
		}
	}

	for _, hc := range st.Horns {
		if !PremisesSatisfied(hc.Premises, h, st) {
			continue
		}
		if hc.Conclusion.IsFalse {
			return false
		}
		concl := st.Point(hc.Conclusion.Ref)
		if !Satisfies(concl, h[concl.Loc]) {
			return false
		}
	}

	return true
}

// PremisesSatisfied reports whether every premise of a Horn constraint
// currently satisfies its location's conjunction under h.
func PremisesSatisfied(premises []model.PointRef, h Hypothesis, st *model.Store) bool {
	for _, ref := range premises {
		dp := st.Point(ref)
		if !Satisfies(dp, h[dp.Loc]) {
			return false
		}
	}
	return true
}

// ConclusionSatisfied reports whether a Horn constraint's conclusion
// currently satisfies its location's conjunction under h. A ⊥
// conclusion is never satisfied.
func ConclusionSatisfied(hc model.Horn, h Hypothesis, st *model.Store) bool {
	if hc.Conclusion.IsFalse {
		return false
	}
	concl := st.Point(hc.Conclusion.Ref)
	return Satisfies(concl, h[concl.Loc])
}
