package ltf

// threshold is the shared shape Winnow and Perceptron both present to the
// epoch loop below.
type threshold interface {
	Predict(ex Example) bool
	update(ex Example, predicted bool)
}

// train runs the classic "epoch until 100% accuracy" loop both learners
// use, bounded by epochCap since, unlike Winnow's guaranteed-monotone
// target functions, nothing stops a caller from handing either learner
// examples that are not linearly separable.
func train(t threshold, examples []Example, epochCap int) (converged bool, epochs int) {
	for !checkAcc(t, examples) {
		if epochs >= epochCap {
			return false, epochs
		}
		for _, ex := range examples {
			t.update(ex, t.Predict(ex))
		}
		epochs++
	}
	return true, epochs
}

func checkAcc(t threshold, examples []Example) bool {
	for _, ex := range examples {
		if t.Predict(ex) != ex.Label {
			return false
		}
	}
	return true
}
