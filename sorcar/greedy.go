package sorcar

import (
	"sort"

	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// predKey names one candidate predicate: a location and an index
// within that location's conjunction.
type predKey struct {
	loc  z.Loc
	pred z.Pred
}

type intSet map[int]struct{}

func (s intSet) add(i int) { s[i] = struct{}{} }

func removeFromKey(sets map[predKey]intSet, key predKey, i int) {
	if s, ok := sets[key]; ok {
		delete(s, i)
	}
}

// Greedy computes R by iteratively choosing, among all outstanding
// negative-example and Horn-constraint violations, the single predicate
// that resolves the most of them at once (ties broken by (location,
// index) lexicographic order), then repeating against the now-smaller
// violation set until every violation is resolved.
func Greedy(st *model.Store, x, rIn pset.Hypothesis) (pset.Hypothesis, error) {
	r, xMinusR, err := checkedPrepare(x, rIn)
	if err != nil {
		return nil, err
	}

	negSets := map[predKey]intSet{}
	for i := range st.Points {
		dp := &st.Points[i]
		if dp.Label != model.Negative {
			continue
		}
		if !pset.Satisfies(dp, r[dp.Loc]) {
			continue
		}
		for _, p := range xMinusR[dp.Loc] {
			if !dp.Bits[p] {
				key := predKey{dp.Loc, p}
				if negSets[key] == nil {
					negSets[key] = intSet{}
				}
				negSets[key].add(i)
			}
		}
	}

	activeHorns := make([]int, len(st.Horns))
	for i := range st.Horns {
		activeHorns[i] = i
	}

	for {
		done := true

		hornSets := map[predKey]intSet{}
		var stillActive []int
		for _, hi := range activeHorns {
			hc := st.Horns[hi]
			if !pset.PremisesSatisfied(hc.Premises, r, st) {
				continue // vacuous: drop for good
			}
			if pset.ConclusionSatisfied(hc, r, st) {
				stillActive = append(stillActive, hi) // satisfied: re-check next round
				continue
			}
			stillActive = append(stillActive, hi)
			done = false
			for _, ref := range hc.Premises {
				dp := st.Point(ref)
				for _, p := range xMinusR[dp.Loc] {
					if !dp.Bits[p] {
						key := predKey{dp.Loc, p}
						if hornSets[key] == nil {
							hornSets[key] = intSet{}
						}
						hornSets[key].add(hi)
					}
				}
			}
		}
		activeHorns = stillActive

		for {
			best, found := bestCandidate(xMinusR, negSets, hornSets)
			if !found {
				break
			}
			moveInto(r, xMinusR, best.loc, best.pred)
			done = false

			for negIdx := range negSets[best] {
				dp := &st.Points[negIdx]
				for p := range negSets {
					if p.loc == dp.Loc {
						removeFromKey(negSets, p, negIdx)
					}
				}
			}
			for hi := range hornSets[best] {
				hc := st.Horns[hi]
				for _, ref := range hc.Premises {
					dp := st.Point(ref)
					for p := range hornSets {
						if p.loc == dp.Loc {
							removeFromKey(hornSets, p, hi)
						}
					}
				}
			}
			delete(negSets, best)
			delete(hornSets, best)
		}

		if done {
			break
		}
	}

	return r, nil
}

// bestCandidate scans every predicate still in X\R that has at least
// one outstanding negative or Horn violator, returning the one with
// the largest combined violator count. Ties go to the lexicographically
// smallest (location, predicate), by scanning candidates in that order
// and only replacing the incumbent on a strictly larger score.
func bestCandidate(xMinusR pset.Hypothesis, negSets, hornSets map[predKey]intSet) (predKey, bool) {
	keys := candidateKeys(xMinusR)
	best := predKey{}
	bestScore := 0
	found := false
	for _, k := range keys {
		score := len(negSets[k]) + len(hornSets[k])
		if score > bestScore {
			bestScore = score
			best = k
			found = true
		}
	}
	return best, found
}

func candidateKeys(xMinusR pset.Hypothesis) []predKey {
	var keys []predKey
	for loc, c := range xMinusR {
		for _, p := range c {
			keys = append(keys, predKey{z.Loc(loc), p})
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].loc != keys[j].loc {
			return keys[i].loc < keys[j].loc
		}
		return keys[i].pred < keys[j].pred
	})
	return keys
}
