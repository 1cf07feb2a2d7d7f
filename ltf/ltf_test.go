package ltf

import (
	"testing"

	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// TestS5WinnowConverges mirrors the §8 scenario: P=2, positive [1,1],
// negative [1,0]. After §4.4's inversion wrapper the positive becomes
// [0,0]/false and the negative becomes [0,1]/true; Winnow must converge
// and classify both correctly (invariant 6).
func TestS5WinnowConverges(t *testing.T) {
	examples := []Example{
		Invert(Example{Bits: []bool{true, true}, Label: true}),
		Invert(Example{Bits: []bool{true, false}, Label: false}),
	}
	w := NewWinnow(2)
	converged, _ := w.Train(examples, 10000)
	if !converged {
		t.Fatalf("expected Winnow to converge")
	}
	for _, ex := range examples {
		if w.Predict(ex) != ex.Label {
			t.Errorf("Predict(%v) = %v, want %v", ex.Bits, w.Predict(ex), ex.Label)
		}
	}
}

func TestWinnowMaskAlphabet(t *testing.T) {
	w := NewWinnow(4)
	w.MaskAlphabet(pset.Conjunction{0, 2}, z.Interval{Lo: 0, Hi: 3})
	if w.Weights[1] != 0 || w.Weights[3] != 0 {
		t.Errorf("expected indices 1,3 masked to zero, got %v", w.Weights)
	}
	if w.Weights[0] == 0 || w.Weights[2] == 0 {
		t.Errorf("expected indices 0,2 to keep their initial weight, got %v", w.Weights)
	}
}

func TestPerceptronConverges(t *testing.T) {
	examples := []Example{
		Invert(Example{Bits: []bool{true, true}, Label: true}),
		Invert(Example{Bits: []bool{true, false}, Label: false}),
	}
	p := NewPerceptron(2)
	converged, _ := p.Train(examples, 10000)
	if !converged {
		t.Fatalf("expected Perceptron to converge")
	}
	for _, ex := range examples {
		if p.Predict(ex) != ex.Label {
			t.Errorf("Predict(%v) = %v, want %v", ex.Bits, p.Predict(ex), ex.Label)
		}
	}
}

func TestTrainReportsNonConvergence(t *testing.T) {
	// Not linearly separable under Winnow's monotone-disjunction regime:
	// identical bits, opposite labels.
	examples := []Example{
		{Bits: []bool{true, true}, Label: true},
		{Bits: []bool{true, true}, Label: false},
	}
	w := NewWinnow(2)
	converged, epochs := w.Train(examples, 5)
	if converged {
		t.Fatalf("expected non-convergence")
	}
	if epochs != 5 {
		t.Errorf("expected epochs to hit the cap (5), got %d", epochs)
	}
}

// TestLowerAcceptsThreshold covers invariant 7 by brute-force enumeration
// over a small attribute set.
func TestLowerAcceptsThreshold(t *testing.T) {
	w := []float64{3, 2, 1}
	theta := 4.0
	names := []string{"a", "b", "c"}
	tree := Lower(w, theta, names)

	for mask := 0; mask < 8; mask++ {
		bits := []bool{mask&1 != 0, mask&2 != 0, mask&4 != 0}
		sum := 0.0
		for i, b := range bits {
			if b {
				sum += w[i]
			}
		}
		want := sum >= theta
		got := evalTree(tree, names, bits)
		if got != want {
			t.Errorf("bits=%v: tree says %v, threshold says %v", bits, got, want)
		}
	}
}

func TestLowerTrivialCases(t *testing.T) {
	if leaf := Lower([]float64{1, 1}, 0, []string{"a", "b"}); !leaf.Classification || leaf.Children != nil {
		t.Errorf("theta<=0 must always accept: got %+v", leaf)
	}
	if leaf := Lower([]float64{0.1, 0.1}, 5, []string{"a", "b"}); leaf.Classification || leaf.Children != nil {
		t.Errorf("unreachable threshold must always reject: got %+v", leaf)
	}
}

func evalTree(n *BoolNode, names []string, bits []bool) bool {
	if n.Children == nil {
		return n.Classification
	}
	idx := -1
	for i, name := range names {
		if name == n.Attribute {
			idx = i
			break
		}
	}
	if bits[idx] {
		return evalTree(n.Children[1], names, bits)
	}
	return evalTree(n.Children[0], names, bits)
}
