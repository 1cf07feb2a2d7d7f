package ioformat

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// ReadData parses a .data file: one line per point, "<loc> <bits>
// [label]" where bits is a string of '0'/'1' of length numPreds and
// label is one of '+' (positive), '-' (negative), or '?'/absent
// (unlabeled).
func ReadData(path string, numPreds int) ([]model.DataPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.InvalidInputf("opening %s: %v", path, err)
	}
	defer f.Close()

	var out []model.DataPoint
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errs.InvalidInputf("%s:%d: want \"loc bits [label]\", got %q", path, lineNum, line)
		}
		loc, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errs.InvalidInputf("%s:%d: loc: %v", path, lineNum, err)
		}
		bitStr := fields[1]
		if len(bitStr) != numPreds {
			return nil, errs.InvalidInputf("%s:%d: %d bits, want %d", path, lineNum, len(bitStr), numPreds)
		}
		bits := make([]bool, numPreds)
		for i, c := range bitStr {
			switch c {
			case '1':
				bits[i] = true
			case '0':
				bits[i] = false
			default:
				return nil, errs.InvalidInputf("%s:%d: bit %d is %q, want 0 or 1", path, lineNum, i, c)
			}
		}
		label := model.Unlabeled
		if len(fields) >= 3 {
			switch fields[2] {
			case "+":
				label = model.Positive
			case "-":
				label = model.Negative
			case "?":
				label = model.Unlabeled
			default:
				return nil, errs.InvalidInputf("%s:%d: label %q, want +, -, or ?", path, lineNum, fields[2])
			}
		}
		out = append(out, model.DataPoint{Bits: bits, Loc: z.Loc(loc), Label: label})
	}
	if err := sc.Err(); err != nil {
		return nil, errs.InvalidInputf("%s: %v", path, err)
	}
	return out, nil
}
