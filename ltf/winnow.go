package ltf

import (
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// Winnow is a per-location multiplicative-update linear threshold
// learner, per §4.4.
type Winnow struct {
	Weights []float64
	Theta   float64
	Eta     float64
}

// NewWinnow allocates a Winnow over numPred predicates with the default
// initialization of §4.4.
func NewWinnow(numPred int) *Winnow {
	w := make([]float64, numPred)
	init := 2.0 * float64(numPred) / 5.0
	for i := range w {
		w[i] = init
	}
	return &Winnow{Weights: w, Theta: 0.441, Eta: 2.4}
}

// Predict implements sign(Σ w_i x_i ≥ θ).
func (w *Winnow) Predict(ex Example) bool {
	sum := 0.0
	for i, b := range ex.Bits {
		if b {
			sum += w.Weights[i]
		}
	}
	return sum >= w.Theta
}

func (w *Winnow) update(ex Example, predicted bool) {
	switch {
	case !ex.Label && predicted:
		for i, b := range ex.Bits {
			if b {
				w.Weights[i] /= w.Eta
			}
		}
	case ex.Label && !predicted:
		for i, b := range ex.Bits {
			if b {
				w.Weights[i] *= w.Eta
			}
		}
	}
}

// Train epochs over examples (already inverted and labeled via
// PrepareExamples) until predictions match every label or epochCap
// epochs elapse without convergence.
func (w *Winnow) Train(examples []Example, epochCap int) (converged bool, epochs int) {
	return train(w, examples, epochCap)
}

// MaskAlphabet forces the weight of every local index not in x to zero,
// per §4.4's alphabet masking. x holds global predicate indices (a
// conjunction for iv's location), so each local index j is translated to
// the global index iv.Lo+j before the membership test.
func (w *Winnow) MaskAlphabet(x pset.Conjunction, iv z.Interval) {
	for j := range w.Weights {
		if !x.Contains(iv.Lo + z.Pred(j)) {
			w.Weights[j] = 0
		}
	}
}
