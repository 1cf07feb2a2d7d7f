package model

import (
	"fmt"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// Store bundles the immutable inputs to one round: the predicate count
// implied by Intervals, the data points, the Horn constraints, and the
// location intervals. Every algorithm in this module borrows a *Store
// and never mutates it.
type Store struct {
	Points    []DataPoint
	Horns     []Horn
	Intervals []z.Interval
}

// NumPreds returns the size of the global predicate alphabet, P.
func (s *Store) NumPreds() int {
	n := 0
	for _, iv := range s.Intervals {
		if int(iv.Hi)+1 > n {
			n = int(iv.Hi) + 1
		}
	}
	return n
}

// NumLocs returns L, the number of program locations.
func (s *Store) NumLocs() int {
	return len(s.Intervals)
}

// Point dereferences a PointRef.
func (s *Store) Point(ref PointRef) *DataPoint {
	return &s.Points[ref]
}

// Validate checks the §3 invariants: every Loc is in range and every
// Bits slice has length P. It also rejects an empty interval list, since
// every algorithm in §4 requires at least one location.
func (s *Store) Validate() error {
	if len(s.Intervals) == 0 {
		return errs.InvalidInputf("intervals are empty")
	}
	p := s.NumPreds()
	for i, dp := range s.Points {
		if int(dp.Loc) < 0 || int(dp.Loc) >= len(s.Intervals) {
			return errs.InvalidInputf("data point %d: location %d out of range [0,%d)", i, dp.Loc, len(s.Intervals))
		}
		if len(dp.Bits) != p {
			return errs.InvalidInputf("data point %d: %d bits, want %d", i, len(dp.Bits), p)
		}
	}
	for i, h := range s.Horns {
		for _, pr := range h.Premises {
			if int(pr) < 0 || int(pr) >= len(s.Points) {
				return errs.InvalidInputf("horn %d: premise ref %d out of range", i, pr)
			}
		}
		if !h.Conclusion.IsFalse {
			if int(h.Conclusion.Ref) < 0 || int(h.Conclusion.Ref) >= len(s.Points) {
				return errs.InvalidInputf("horn %d: conclusion ref %d out of range", i, h.Conclusion.Ref)
			}
		}
	}
	return nil
}

func (s *Store) String() string {
	return fmt.Sprintf("Store{points=%d horns=%d locs=%d}", len(s.Points), len(s.Horns), len(s.Intervals))
}
