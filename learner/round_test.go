package learner

import (
	"testing"

	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

func s2Store() *model.Store {
	return &model.Store{
		Points: []model.DataPoint{
			{Bits: []bool{true, true, true, true}, Loc: 0, Label: model.Positive},
			{Bits: []bool{true, true, false, true}, Loc: 0, Label: model.Negative},
		},
		Intervals: []z.Interval{{Lo: 0, Hi: 3}},
	}
}

func TestRoundHorndiniAlwaysRuns(t *testing.T) {
	res, err := Round(s2Store(), Config{Algorithm: Horndini, Round: 1}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pset.IsConsistent(res.R, s2Store()) {
		t.Errorf("Horndini output must be consistent")
	}
	if len(res.R[0]) != len(res.X[0]) {
		t.Errorf("Horndini round must report R == X, got R=%v X=%v", res.R[0], res.X[0])
	}
}

func TestRoundSorcarSkippedOnFirstRoundHorndini(t *testing.T) {
	res, err := Round(s2Store(), Config{Algorithm: Sorcar, Round: 1, HorndiniFirstRound: true}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.R[0]) != len(res.X[0]) {
		t.Errorf("-f round 1 must emit X verbatim, got R=%v X=%v", res.R[0], res.X[0])
	}
}

func TestRoundSorcarSkippedOnAlternateOddRound(t *testing.T) {
	res, err := Round(s2Store(), Config{Algorithm: Sorcar, Round: 3, Alternate: true}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.R[0]) != len(res.X[0]) {
		t.Errorf("-t on an odd round must emit X verbatim, got R=%v X=%v", res.R[0], res.X[0])
	}
}

func TestRoundSorcarRunsOnAlternateEvenRound(t *testing.T) {
	res, err := Round(s2Store(), Config{Algorithm: Sorcar, Round: 2, Alternate: true}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.R[0]) == 0 {
		t.Fatalf("expected Sorcar to add the separating predicate, got empty R")
	}
	if res.R[0][0] != 2 {
		t.Errorf("got %v, want [2]", res.R[0])
	}
}

func TestRoundSorcarResumesPriorR(t *testing.T) {
	first, err := Round(s2Store(), Config{Algorithm: Sorcar, Round: 1}, nil, nil, nil)
	if err != nil {
		t.Fatalf("round 1: %v", err)
	}

	st2 := &model.Store{
		Points: append(append([]model.DataPoint{}, s2Store().Points...),
			model.DataPoint{Bits: []bool{false, true, true, true}, Loc: 0, Label: model.Negative},
		),
		Intervals: s2Store().Intervals,
	}
	second, err := Round(st2, Config{Algorithm: Sorcar, Round: 2}, first.R, nil, nil)
	if err != nil {
		t.Fatalf("round 2: %v", err)
	}
	if !second.R[0].Contains(2) {
		t.Errorf("expected prior R to survive resumption, got %v", second.R[0])
	}
	if len(second.R[0]) <= len(first.R[0]) {
		t.Errorf("expected the new negative to grow R, got %v from %v", second.R[0], first.R[0])
	}
}

func TestRoundSorcarResetRIgnoresPriorR(t *testing.T) {
	first, err := Round(s2Store(), Config{Algorithm: Sorcar, Round: 1}, nil, nil, nil)
	if err != nil {
		t.Fatalf("round 1: %v", err)
	}
	second, err := Round(s2Store(), Config{Algorithm: Sorcar, Round: 2, ResetR: true}, first.R, nil, nil)
	if err != nil {
		t.Fatalf("round 2: %v", err)
	}
	if !pset.IsConsistent(second.R, s2Store()) {
		t.Errorf("reset round must still be consistent")
	}
}

func TestRoundWinnowTrainsPerLocation(t *testing.T) {
	res, err := Round(s2Store(), Config{Algorithm: Winnow, Round: 1}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.WinnowObjs) != 1 {
		t.Fatalf("expected one Winnow object per location, got %d", len(res.WinnowObjs))
	}
	if len(res.WinnowObjs[0].Weights) != 4 {
		t.Errorf("expected a 4-wide local weight vector, got %d", len(res.WinnowObjs[0].Weights))
	}
}

func TestRoundWinnowImputeWithSorcarUsesSorcarR(t *testing.T) {
	res, err := Round(s2Store(), Config{Algorithm: Winnow, Round: 1, ImputeWithSorcar: true}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.R == nil {
		t.Fatalf("expected -s to populate R from Sorcar-all, got nil")
	}
	if !pset.IsConsistent(res.R, s2Store()) {
		t.Errorf("imputed R must be consistent")
	}
}

func TestRoundPerceptronImputeWithSorcarAlsoApplies(t *testing.T) {
	res, err := Round(s2Store(), Config{Algorithm: Perceptron, Round: 1, ImputeWithSorcar: true}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.R == nil {
		t.Fatalf("expected -s to populate R for Perceptron too, got nil")
	}
	if len(res.PerceptronObjs[0].Weights) != 5 {
		t.Errorf("expected bias + 4 local weights, got %d", len(res.PerceptronObjs[0].Weights))
	}
}
