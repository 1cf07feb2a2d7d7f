// Package ltf implements the two online linear-threshold learners of
// §4.4-4.5 (Winnow and Perceptron) and the LTF-to-Boolean lowering of
// §4.6.
package ltf

import (
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// Example is one training example for a threshold learner: a bit vector
// over a single location's predicate alphabet and its target label.
type Example struct {
	Bits  []bool
	Label bool
}

// Invert flips every bit and the label, reducing conjunction-learning to
// Winnow's natural disjunction regime per §4.4's execution wrapper.
func Invert(ex Example) Example {
	bits := make([]bool, len(ex.Bits))
	for i, b := range ex.Bits {
		bits[i] = !b
	}
	return Example{Bits: bits, Label: !ex.Label}
}

// PrepareExamples collects every data point at loc into inverted training
// examples. Unlabeled (implication) points are labeled first by testing
// against impute[loc] — the caller picks Horndini's X or a Sorcar R as
// the imputation hypothesis.
//
// A data point's Bits is indexed over the global predicate alphabet
// (§3); Winnow and Perceptron operate on the local, 0-based alphabet of
// a single location (§4.4), so each example's bits are sliced down to
// that location's [lo,hi] interval before inversion.
func PrepareExamples(st *model.Store, loc z.Loc, impute pset.Hypothesis) []Example {
	iv := st.Intervals[loc]
	var out []Example
	for i := range st.Points {
		dp := &st.Points[i]
		if dp.Loc != loc {
			continue
		}
		var label bool
		if dp.Label == model.Unlabeled {
			label = pset.Satisfies(dp, impute[loc])
		} else {
			label = dp.Label == model.Positive
		}
		bits := make([]bool, iv.Len())
		copy(bits, dp.Bits[iv.Lo:iv.Hi+1])
		out = append(out, Invert(Example{Bits: bits, Label: label}))
	}
	return out
}
