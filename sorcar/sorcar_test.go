package sorcar

import (
	"testing"

	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

func interval4() []z.Interval {
	return []z.Interval{{Lo: 0, Hi: 3}}
}

func fullX() pset.Hypothesis {
	return pset.Hypothesis{pset.NewConjunctionFromInterval(z.Interval{Lo: 0, Hi: 3})}
}

func emptyR() pset.Hypothesis {
	return pset.Hypothesis{pset.Conjunction{}}
}

func conjEqual(t *testing.T, got pset.Conjunction, want ...z.Pred) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func s2Store() *model.Store {
	return &model.Store{
		Points: []model.DataPoint{
			{Bits: []bool{true, true, true, true}, Loc: 0, Label: model.Positive},
			{Bits: []bool{true, true, false, true}, Loc: 0, Label: model.Negative},
		},
		Intervals: interval4(),
	}
}

func TestS2SorcarAll(t *testing.T) {
	r, err := All(s2Store(), fullX(), emptyR())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conjEqual(t, r[0], 2)
}

func TestS2SorcarFirst(t *testing.T) {
	r, err := First(s2Store(), fullX(), emptyR())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conjEqual(t, r[0], 2)
}

func TestS2SorcarGreedy(t *testing.T) {
	r, err := Greedy(s2Store(), fullX(), emptyR())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conjEqual(t, r[0], 2)
}

func TestS2SorcarMinimal(t *testing.T) {
	r, err := Minimal(s2Store(), fullX(), emptyR(), GiniSolver{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conjEqual(t, r[0], 2)
}

func TestAllVariantsConsistent(t *testing.T) {
	st := s2Store()
	for name, fn := range map[string]func() (pset.Hypothesis, error){
		"all":     func() (pset.Hypothesis, error) { return All(st, fullX(), emptyR()) },
		"first":   func() (pset.Hypothesis, error) { return First(st, fullX(), emptyR()) },
		"greedy":  func() (pset.Hypothesis, error) { return Greedy(st, fullX(), emptyR()) },
		"minimal": func() (pset.Hypothesis, error) { return Minimal(st, fullX(), emptyR(), GiniSolver{}) },
	} {
		r, err := fn()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !pset.IsConsistent(r, st) {
			t.Errorf("%s: output %v is not consistent", name, r)
		}
	}
}

// TestS6RoundResumption covers invariant 3: resuming Sorcar-all with
// reset_R = false and an additional negative must keep the prior R and
// extend it to cover the new negative. The new negative has predicate 2
// true, so the prior R = {2} does not already falsify it.
func TestS6RoundResumption(t *testing.T) {
	st := s2Store()
	rPrev, err := All(st, fullX(), emptyR())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conjEqual(t, rPrev[0], 2)

	st2 := &model.Store{
		Points: append(append([]model.DataPoint{}, st.Points...),
			model.DataPoint{Bits: []bool{false, true, true, true}, Loc: 0, Label: model.Negative},
		),
		Intervals: interval4(),
	}
	rNew, err := All(st2, fullX(), pset.CloneHypothesis(rPrev))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rNew[0].Contains(2) {
		t.Errorf("expected prior R (%v) to survive resumption, got %v", rPrev[0], rNew[0])
	}
	if len(rNew[0]) <= len(rPrev[0]) {
		t.Errorf("expected at least one new index beyond the prior R, got %v", rNew[0])
	}
	if !pset.IsConsistent(rNew, st2) {
		t.Errorf("resumed R must be consistent with the extended store")
	}
}

// TestSorcarMinimalNoLargerThanAll covers invariant 4.
func TestSorcarMinimalNoLargerThanAll(t *testing.T) {
	st := &model.Store{
		Points: []model.DataPoint{
			{Bits: []bool{true, true, true, true}, Loc: 0, Label: model.Positive},
			{Bits: []bool{true, true, false, false}, Loc: 0, Label: model.Negative},
			{Bits: []bool{true, false, true, false}, Loc: 0, Label: model.Negative},
		},
		Intervals: interval4(),
	}
	rAll, err := All(st, fullX(), emptyR())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rMin, err := Minimal(st, fullX(), emptyR(), GiniSolver{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rMin[0]) > len(rAll[0]) {
		t.Errorf("minimal (%v) must not be larger than all (%v)", rMin[0], rAll[0])
	}
	if !pset.IsConsistent(rMin, st) {
		t.Errorf("minimal output must be consistent")
	}
}

func TestCheckedPrepareRejectsEmptyX(t *testing.T) {
	_, err := All(&model.Store{Intervals: interval4()}, pset.Hypothesis{}, pset.Hypothesis{})
	if err == nil {
		t.Fatalf("expected error for empty X")
	}
}
