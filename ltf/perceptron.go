package ltf

// Perceptron is a per-location additive-update linear threshold learner
// with a bias term, per §4.5.
type Perceptron struct {
	// Weights[0] is the bias; Weights[i+1] aligns with predicate i.
	Weights []float64
	Theta   float64
	Eta     float64
}

// NewPerceptron allocates a Perceptron over numPred predicates with the
// default initialization of §4.5.
func NewPerceptron(numPred int) *Perceptron {
	w := make([]float64, numPred+1)
	for i := range w {
		w[i] = 1.0
	}
	return &Perceptron{Weights: w, Theta: 0, Eta: 0.01}
}

func (p *Perceptron) Predict(ex Example) bool {
	sum := p.Weights[0]
	for i, b := range ex.Bits {
		if b {
			sum += p.Weights[i+1]
		}
	}
	return sum >= p.Theta
}

func (p *Perceptron) update(ex Example, predicted bool) {
	diff := boolToFloat(ex.Label) - boolToFloat(predicted)
	if diff == 0 {
		return
	}
	p.Weights[0] += p.Eta * diff
	for i, b := range ex.Bits {
		if b {
			p.Weights[i+1] += p.Eta * diff
		}
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Train epochs over examples until predictions match every label or
// epochCap epochs elapse without convergence. No alphabet masking is
// applied, per §4.5.
func (p *Perceptron) Train(examples []Example, epochCap int) (converged bool, epochs int) {
	return train(p, examples, epochCap)
}
