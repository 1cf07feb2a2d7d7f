package ioformat

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// ReadIntervals parses a .intervals file: one "lo hi" pair per line, one
// line per location, in location order.
func ReadIntervals(path string) ([]z.Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.InvalidInputf("opening %s: %v", path, err)
	}
	defer f.Close()

	var out []z.Interval
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errs.InvalidInputf("%s:%d: want \"lo hi\", got %q", path, lineNum, line)
		}
		lo, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errs.InvalidInputf("%s:%d: lo: %v", path, lineNum, err)
		}
		hi, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errs.InvalidInputf("%s:%d: hi: %v", path, lineNum, err)
		}
		out = append(out, z.Interval{Lo: z.Pred(lo), Hi: z.Pred(hi)})
	}
	if err := sc.Err(); err != nil {
		return nil, errs.InvalidInputf("%s: %v", path, err)
	}
	return out, nil
}
