// Package learner wires Horndini, the Sorcar reducers, and the two LTF
// refiners into the per-round algorithm selection of §6, so the CLI
// layer stays a flag-to-Config translator.
package learner

import (
	"time"

	"github.com/anjanaskumar27/winnow-ice/horndini"
	"github.com/anjanaskumar27/winnow-ice/ltf"
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/sorcar"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// Algorithm names the -a selection of §6.
type Algorithm string

const (
	Horndini      Algorithm = "horndini"
	Sorcar        Algorithm = "sorcar"
	SorcarFirst   Algorithm = "sorcar-first"
	SorcarGreedy  Algorithm = "sorcar-greedy"
	SorcarMinimal Algorithm = "sorcar-minimal"
	Winnow        Algorithm = "winnow"
	Perceptron    Algorithm = "perceptron"
)

// DefaultEpochCap bounds Winnow/Perceptron training when Config.EpochCap
// is left at zero.
const DefaultEpochCap = 10000

// Config is the Go-side translation of §6's CLI flags.
type Config struct {
	Algorithm Algorithm
	Round     int

	ResetR             bool // -r
	HorndiniFirstRound bool // -f
	Alternate          bool // -t
	ReadWeights        bool // -w
	FirstRoundFalse    bool // -n
	ImputeWithSorcar   bool // -s

	EpochCap int

	// CardinalitySolver is used only by SorcarMinimal; defaults to
	// sorcar.GiniSolver{Timeout: SolverTimeout} when nil.
	CardinalitySolver sorcar.CardinalitySolver

	// SolverTimeout bounds each cardinality-bound attempt the default
	// solver makes; zero means no bound. Ignored when CardinalitySolver
	// is set explicitly.
	SolverTimeout time.Duration
}

// Result is everything a round can produce. Only the fields relevant to
// Config.Algorithm are populated; cmd/horn-learn decides which to write.
type Result struct {
	X pset.Hypothesis
	R pset.Hypothesis

	WinnowObjs     []*ltf.Winnow
	PerceptronObjs []*ltf.Perceptron

	// FirstRoundFalse reports that output should be the constant-true
	// leaf of §11 ("-n" on round 1) instead of any trained tree.
	FirstRoundFalse bool
}

// Round runs one CEGIS round: Horndini always runs first to recompute X,
// then the selected algorithm refines it, per §6's -r/-f/-t dispatch.
func Round(st *model.Store, cfg Config, prevR pset.Hypothesis, prevWinnow []*ltf.Winnow, prevPerceptron []*ltf.Perceptron) (*Result, error) {
	x, err := horndini.Run(st)
	if err != nil {
		return nil, err
	}

	switch cfg.Algorithm {
	case Horndini:
		return &Result{X: x, R: pset.CloneHypothesis(x)}, nil
	case Winnow:
		return roundWinnow(st, cfg, x, prevR, prevWinnow)
	case Perceptron:
		return roundPerceptron(st, cfg, x, prevR, prevPerceptron)
	default:
		return roundSorcar(st, cfg, x, prevR)
	}
}

func emptyLike(x pset.Hypothesis) pset.Hypothesis {
	r := make(pset.Hypothesis, len(x))
	for i := range r {
		r[i] = pset.Conjunction{}
	}
	return r
}

func startingR(resetR bool, round int, x, prevR pset.Hypothesis) pset.Hypothesis {
	if resetR || round == 1 || prevR == nil {
		return emptyLike(x)
	}
	return prevR
}

func solverOrDefault(s sorcar.CardinalitySolver, timeout time.Duration) sorcar.CardinalitySolver {
	if s == nil {
		return sorcar.GiniSolver{Timeout: timeout}
	}
	return s
}

// roundSorcar implements §6's -f/-t skip logic: on a round where Sorcar
// should be skipped, it emits X in place of running a reducer at all,
// exactly as the original falls back to writing Horndini's output.
func roundSorcar(st *model.Store, cfg Config, x, prevR pset.Hypothesis) (*Result, error) {
	r := startingR(cfg.ResetR, cfg.Round, x, prevR)

	skip := (cfg.HorndiniFirstRound && cfg.Round == 1) || (cfg.Alternate && cfg.Round%2 == 1)
	if skip {
		return &Result{X: x, R: pset.CloneHypothesis(x)}, nil
	}

	var out pset.Hypothesis
	var err error
	switch cfg.Algorithm {
	case SorcarFirst:
		out, err = sorcar.First(st, x, r)
	case SorcarGreedy:
		out, err = sorcar.Greedy(st, x, r)
	case SorcarMinimal:
		out, err = sorcar.Minimal(st, x, r, solverOrDefault(cfg.CardinalitySolver, cfg.SolverTimeout))
	default:
		out, err = sorcar.All(st, x, r)
	}
	if err != nil {
		return nil, err
	}
	return &Result{X: x, R: out}, nil
}

// impute computes the hypothesis unlabeled (implication) examples are
// tested against, and — when §11's -s behavior is active — the Sorcar-all
// R that doubles as this round's output R.
func impute(st *model.Store, cfg Config, x, prevR pset.Hypothesis) (pset.Hypothesis, pset.Hypothesis, error) {
	if !cfg.ImputeWithSorcar {
		return x, nil, nil
	}
	r := startingR(false, cfg.Round, x, prevR)
	out, err := sorcar.All(st, x, r)
	if err != nil {
		return nil, nil, err
	}
	return out, out, nil
}

func epochCap(cfg Config) int {
	if cfg.EpochCap > 0 {
		return cfg.EpochCap
	}
	return DefaultEpochCap
}

func roundWinnow(st *model.Store, cfg Config, x, prevR pset.Hypothesis, prevObjs []*ltf.Winnow) (*Result, error) {
	impHyp, outR, err := impute(st, cfg, x, prevR)
	if err != nil {
		return nil, err
	}

	objs := make([]*ltf.Winnow, st.NumLocs())
	for loc := range objs {
		objs[loc] = ltf.NewWinnow(st.Intervals[loc].Len())
	}
	if cfg.ReadWeights && cfg.Round != 1 && prevObjs != nil {
		objs = prevObjs
	}

	for loc := range objs {
		objs[loc].MaskAlphabet(impHyp[z.Loc(loc)], st.Intervals[loc])
		examples := ltf.PrepareExamples(st, z.Loc(loc), impHyp)
		objs[loc].Train(examples, epochCap(cfg))
	}

	return &Result{
		X:               x,
		R:               outR,
		WinnowObjs:      objs,
		FirstRoundFalse: cfg.FirstRoundFalse && cfg.Round == 1,
	}, nil
}

func roundPerceptron(st *model.Store, cfg Config, x, prevR pset.Hypothesis, prevObjs []*ltf.Perceptron) (*Result, error) {
	impHyp, outR, err := impute(st, cfg, x, prevR)
	if err != nil {
		return nil, err
	}

	objs := make([]*ltf.Perceptron, st.NumLocs())
	for loc := range objs {
		objs[loc] = ltf.NewPerceptron(st.Intervals[loc].Len())
	}
	if cfg.ReadWeights && cfg.Round != 1 && prevObjs != nil {
		objs = prevObjs
	}

	for loc := range objs {
		examples := ltf.PrepareExamples(st, z.Loc(loc), impHyp)
		objs[loc].Train(examples, epochCap(cfg))
	}

	return &Result{X: x, R: outR, PerceptronObjs: objs}, nil
}
