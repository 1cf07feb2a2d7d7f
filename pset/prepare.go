package pset

import "github.com/anjanaskumar27/winnow-ice/errs"

// Prepare computes, per location, R' := R ∩ X and XminusR := X \ R,
// mutating neither x nor the caller's r in place but returning fresh
// hypotheses — the §4.1 contract requires |X| = |R| and guarantees
// R' ⊆ X, XminusR ∪ R' = X, XminusR ∩ R' = ∅.
func Prepare(x, r Hypothesis) (rPrime, xMinusR Hypothesis, err error) {
	if len(x) != len(r) {
		return nil, nil, errs.InvalidInputf("prepare: |X|=%d != |R|=%d", len(x), len(r))
	}
	rPrime = make(Hypothesis, len(x))
	xMinusR = make(Hypothesis, len(x))
	for k := range x {
		rk, xmrk := prepareOne(x[k], r[k])
		rPrime[k] = rk
		xMinusR[k] = xmrk
	}
	return rPrime, xMinusR, nil
}

// prepareOne merges two sorted slices in a single linear pass, the Go
// analogue of the original's iterator-plus-erase walk over std::set.
func prepareOne(x, r Conjunction) (rPrime, xMinusR Conjunction) {
	rPrime = make(Conjunction, 0, len(r))
	xMinusR = make(Conjunction, 0, len(x))
	i, j := 0, 0
	for i < len(r) && j < len(x) {
		switch {
		case r[i] < x[j]:
			// in R but not in X: dropped.
			i++
		case x[j] < r[i]:
			xMinusR = append(xMinusR, x[j])
			j++
		default:
			rPrime = append(rPrime, r[i])
			i++
			j++
		}
	}
	xMinusR = append(xMinusR, x[j:]...)
	return rPrime, xMinusR
}
