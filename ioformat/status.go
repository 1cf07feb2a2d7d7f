package ioformat

import (
	"os"
	"strconv"
	"strings"

	"github.com/anjanaskumar27/winnow-ice/errs"
)

// ReadStatus parses a .status file: a single non-negative integer round
// number. round == 1 means a fresh start, per §6.
func ReadStatus(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, errs.InvalidInputf("opening %s: %v", path, err)
	}
	round, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0, errs.InvalidInputf("%s: %v", path, err)
	}
	if round < 0 {
		return 0, errs.InvalidInputf("%s: round %d is negative", path, round)
	}
	return round, nil
}
