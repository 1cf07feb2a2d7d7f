package ioformat

import (
	"bufio"
	"os"
	"strconv"

	"github.com/anjanaskumar27/winnow-ice/errs"
)

// Attributes holds the ordered naming of §6's .attributes artifact: one
// name per predicate in the global alphabet and one per location.
type Attributes struct {
	PredNames []string
	LocNames  []string
}

// ReadAttributes parses a .attributes file: a predicate count, that many
// predicate names, a location count, then that many location names.
func ReadAttributes(path string) (*Attributes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.InvalidInputf("opening %s: %v", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	readInt := func() (int, error) {
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				continue
			}
			return strconv.Atoi(line)
		}
		return 0, errs.InvalidInputf("%s: unexpected EOF", path)
	}
	readLine := func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		return "", errs.InvalidInputf("%s: unexpected EOF", path)
	}

	numPreds, err := readInt()
	if err != nil {
		return nil, errs.InvalidInputf("%s: predicate count: %v", path, err)
	}
	predNames := make([]string, numPreds)
	for i := range predNames {
		name, err := readLine()
		if err != nil {
			return nil, errs.InvalidInputf("%s: predicate name %d: %v", path, i, err)
		}
		predNames[i] = name
	}

	numLocs, err := readInt()
	if err != nil {
		return nil, errs.InvalidInputf("%s: location count: %v", path, err)
	}
	locNames := make([]string, numLocs)
	for i := range locNames {
		name, err := readLine()
		if err != nil {
			return nil, errs.InvalidInputf("%s: location name %d: %v", path, i, err)
		}
		locNames[i] = name
	}

	if err := sc.Err(); err != nil {
		return nil, errs.InvalidInputf("%s: %v", path, err)
	}
	return &Attributes{PredNames: predNames, LocNames: locNames}, nil
}
