package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/ltf"
)

// WriteWinnowWeights writes a .W file: one line per location, the
// location's weight vector as space-separated floats.
func WriteWinnowWeights(path string, objs []*ltf.Winnow) error {
	return writeWeightLines(path, len(objs), func(i int) []float64 { return objs[i].Weights })
}

// ReadWinnowWeights reads a .W file written by WriteWinnowWeights into
// already-allocated objs, overwriting their weight vectors in place.
func ReadWinnowWeights(path string, objs []*ltf.Winnow) error {
	return readWeightLines(path, func(i int) []float64 { return objs[i].Weights })
}

// WritePerceptronWeights writes a .W file for Perceptron objects; each
// line is Weights (bias first, per §4.5's layout) as space-separated
// floats.
func WritePerceptronWeights(path string, objs []*ltf.Perceptron) error {
	return writeWeightLines(path, len(objs), func(i int) []float64 { return objs[i].Weights })
}

// ReadPerceptronWeights reads a .W file written by WritePerceptronWeights.
func ReadPerceptronWeights(path string, objs []*ltf.Perceptron) error {
	return readWeightLines(path, func(i int) []float64 { return objs[i].Weights })
}

func writeWeightLines(path string, n int, weightsOf func(i int) []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.InvalidInputf("creating %s: %v", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, v := range weightsOf(i) {
			fmt.Fprintf(w, "%v ", v)
		}
	}
	return w.Flush()
}

func readWeightLines(path string, weightsOf func(i int) []float64) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.InvalidInputf("opening %s: %v", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		dst := weightsOf(lineNum)
		for i, f := range strings.Fields(line) {
			if i >= len(dst) {
				break
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return errs.InvalidInputf("%s:%d: %v", path, lineNum+1, err)
			}
			dst[i] = v
		}
		lineNum++
	}
	if err := sc.Err(); err != nil {
		return errs.InvalidInputf("%s: %v", path, err)
	}
	return nil
}
