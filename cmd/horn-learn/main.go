// Command horn-learn runs one CEGIS round of the Horn-constraint learner
// of §1-2 over a file-stem's .attributes/.data/.horn/.intervals/.status
// inputs, per §6's CLI surface.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/ioformat"
	"github.com/anjanaskumar27/winnow-ice/learner"
	"github.com/anjanaskumar27/winnow-ice/ltf"
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/pset"
)

var log = logrus.New()

var algNames = map[string]learner.Algorithm{
	"horndini":       learner.Horndini,
	"sorcar":         learner.Sorcar,
	"sorcar-first":   learner.SorcarFirst,
	"sorcar-greedy":  learner.SorcarGreedy,
	"sorcar-minimal": learner.SorcarMinimal,
	"winnow":         learner.Winnow,
	"perceptron":     learner.Perceptron,
}

type flags struct {
	algorithm   string
	resetR      bool
	firstRound  bool
	alternate   bool
	readWeights bool
	firstFalse  bool
	imputeSorc  bool
	ltfMode     int
	ltfThresh   int
	timeout     time.Duration
}

func main() {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "horn-learn [flags] file-stem",
		Short: "Run one CEGIS round of the Horn-constraint learner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], f)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "horndini",
		"horndini | sorcar | sorcar-first | sorcar-greedy | sorcar-minimal | winnow | perceptron")
	cmd.Flags().BoolVarP(&f.resetR, "reset-r", "r", false, "reset R to empty at the start of this round")
	cmd.Flags().BoolVarP(&f.firstRound, "first-round-horndini", "f", false, "round 1 only: emit X instead of running Sorcar")
	cmd.Flags().BoolVarP(&f.alternate, "alternate", "t", false, "alternate Horndini (odd rounds) and Sorcar (even rounds)")
	cmd.Flags().BoolVarP(&f.readWeights, "read-weights", "w", false, "read prior weights instead of reinitializing")
	cmd.Flags().BoolVarP(&f.firstFalse, "first-round-false", "n", false, "Winnow round 1 emits the constant-true hypothesis")
	cmd.Flags().BoolVarP(&f.imputeSorc, "impute-sorcar", "s", false, "impute unlabeled examples with Sorcar's R instead of Horndini's X")
	cmd.Flags().IntVarP(&f.ltfMode, "ltf-mode", "l", 0, "1 = LTF only, 2 = Boolean only, 0 = adaptive by tree size")
	cmd.Flags().IntVarP(&f.ltfThresh, "ltf-threshold", "j", 0, "leaf-count threshold for adaptive LTF mode")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "bound on each sorcar-minimal cardinality-bound solve attempt (0 = no bound)")

	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return 2
	case errors.Is(err, errs.ErrInconsistent):
		return 3
	case errors.Is(err, errs.ErrSolverFailure):
		return 4
	default:
		return 1
	}
}

func run(stem string, f *flags) error {
	alg, ok := algNames[f.algorithm]
	if !ok {
		return errs.InvalidInputf("unknown algorithm %q", f.algorithm)
	}

	st, attrs, err := ioformat.LoadStore(stem)
	if err != nil {
		return err
	}
	round, err := ioformat.ReadStatus(stem + ".status")
	if err != nil {
		return err
	}

	cfg := learner.Config{
		Algorithm:          alg,
		Round:              round,
		ResetR:             f.resetR,
		HorndiniFirstRound: f.firstRound,
		Alternate:          f.alternate,
		ReadWeights:        f.readWeights,
		FirstRoundFalse:    f.firstFalse,
		ImputeWithSorcar:   f.imputeSorc,
		SolverTimeout:      f.timeout,
	}

	var prevR pset.Hypothesis
	if round != 1 && !f.resetR {
		prevR, err = ioformat.ReadR(stem + ".R")
		if err != nil {
			return err
		}
	}

	var prevWinnow []*ltf.Winnow
	var prevPerceptron []*ltf.Perceptron
	if f.readWeights && round != 1 {
		switch alg {
		case learner.Winnow:
			prevWinnow = make([]*ltf.Winnow, st.NumLocs())
			for loc := range prevWinnow {
				prevWinnow[loc] = ltf.NewWinnow(st.Intervals[loc].Len())
			}
			if err := ioformat.ReadWinnowWeights(stem+".W", prevWinnow); err != nil {
				return err
			}
		case learner.Perceptron:
			prevPerceptron = make([]*ltf.Perceptron, st.NumLocs())
			for loc := range prevPerceptron {
				prevPerceptron[loc] = ltf.NewPerceptron(st.Intervals[loc].Len())
			}
			if err := ioformat.ReadPerceptronWeights(stem+".W", prevPerceptron); err != nil {
				return err
			}
		}
	}

	log.WithFields(logrus.Fields{
		"algorithm": f.algorithm,
		"round":     round,
		"alternate": f.alternate,
		"reset-r":   f.resetR,
	}).Info("starting round")

	result, err := learner.Round(st, cfg, prevR, prevWinnow, prevPerceptron)
	if err != nil {
		log.WithError(err).Error("round failed")
		return err
	}

	if err := ioformat.WriteR(stem+".R", result.R); err != nil {
		return err
	}

	switch alg {
	case learner.Winnow:
		if err := writeWinnowOutputs(stem, attrs, st, f, result); err != nil {
			return err
		}
	case learner.Perceptron:
		if err := ioformat.WritePerceptronWeights(stem+".W", result.PerceptronObjs); err != nil {
			return err
		}
		if err := ioformat.WritePerceptronLTFJSON(stem+".json", attrs, result.PerceptronObjs, st.Intervals); err != nil {
			return err
		}
	default:
		// Horndini and every Sorcar variant emit R (which equals X on
		// Horndini's own branch and on a Sorcar round that was skipped
		// via -f/-t, since learner.Round clones X into R there too).
		if err := ioformat.WriteConjunctiveJSON(stem+".json", attrs, result.R); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"x-size": hypothesisSize(result.X),
		"r-size": hypothesisSize(result.R),
	}).Info("round complete")
	return nil
}

func writeWinnowOutputs(stem string, attrs *ioformat.Attributes, st *model.Store, f *flags, result *learner.Result) error {
	if err := ioformat.WriteWinnowWeights(stem+".W", result.WinnowObjs); err != nil {
		return err
	}

	switch f.ltfMode {
	case 1:
		return ioformat.WriteWinnowLTFJSON(stem+".json", attrs, result.WinnowObjs, st.Intervals)
	case 2:
		_, err := ioformat.WriteBoolTreeJSON(stem+".json", lowerAll(st, result.WinnowObjs, attrs), result.FirstRoundFalse)
		return err
	default:
		leaves, err := ioformat.WriteBoolTreeJSON(stem+".json", lowerAll(st, result.WinnowObjs, attrs), result.FirstRoundFalse)
		if err != nil {
			return err
		}
		if leaves > f.ltfThresh {
			return ioformat.WriteWinnowLTFJSON(stem+".json", attrs, result.WinnowObjs, st.Intervals)
		}
		return nil
	}
}

func lowerAll(st *model.Store, objs []*ltf.Winnow, attrs *ioformat.Attributes) []*ltf.BoolNode {
	trees := make([]*ltf.BoolNode, len(objs))
	for loc, w := range objs {
		iv := st.Intervals[loc]
		names := attrs.PredNames[iv.Lo : iv.Hi+1]
		trees[loc] = ltf.Lower(w.Weights, w.Theta, names)
	}
	return trees
}

func hypothesisSize(h pset.Hypothesis) int {
	n := 0
	for _, c := range h {
		n += len(c)
	}
	return n
}
