package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// WriteR writes a .R file: one line per location, space-separated
// predicate indices, the sentinel "e" for an empty conjunction.
func WriteR(path string, r pset.Hypothesis) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.InvalidInputf("creating %s: %v", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, c := range r {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if len(c) == 0 {
			fmt.Fprint(w, "e")
			continue
		}
		for _, p := range c {
			fmt.Fprintf(w, "%d ", p)
		}
	}
	return w.Flush()
}

// ReadR parses a .R file written by WriteR.
func ReadR(path string) (pset.Hypothesis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.InvalidInputf("opening %s: %v", path, err)
	}
	defer f.Close()

	var r pset.Hypothesis
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "e" {
			r = append(r, pset.Conjunction{})
			continue
		}
		var c pset.Conjunction
		for _, f := range strings.Fields(line) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, errs.InvalidInputf("%s: %v", path, err)
			}
			c.Add(z.Pred(n))
		}
		r = append(r, c)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.InvalidInputf("%s: %v", path, err)
	}
	return r, nil
}
