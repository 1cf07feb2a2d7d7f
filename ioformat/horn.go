package ioformat

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/model"
)

// ReadHorn parses a .horn file: one line per constraint, "<premise>...
// -> <conclusion>" where conclusion is either a 0-based index into the
// points read from .data, or the sentinel "F" for the ⊥ conclusion.
func ReadHorn(path string) ([]model.Horn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.InvalidInputf("opening %s: %v", path, err)
	}
	defer f.Close()

	var out []model.Horn
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		arrow := strings.Index(line, "->")
		if arrow < 0 {
			return nil, errs.InvalidInputf("%s:%d: missing \"->\" in %q", path, lineNum, line)
		}
		premiseFields := strings.Fields(line[:arrow])
		conclField := strings.TrimSpace(line[arrow+2:])

		premises := make([]model.PointRef, len(premiseFields))
		for i, f := range premiseFields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, errs.InvalidInputf("%s:%d: premise %d: %v", path, lineNum, i, err)
			}
			premises[i] = model.PointRef(n)
		}

		var conclusion model.Conclusion
		if conclField == "F" {
			conclusion = model.False()
		} else {
			n, err := strconv.Atoi(conclField)
			if err != nil {
				return nil, errs.InvalidInputf("%s:%d: conclusion: %v", path, lineNum, err)
			}
			conclusion = model.ConclusionOf(model.PointRef(n))
		}

		out = append(out, model.Horn{Premises: premises, Conclusion: conclusion})
	}
	if err := sc.Err(); err != nil {
		return nil, errs.InvalidInputf("%s: %v", path, err)
	}
	return out, nil
}
