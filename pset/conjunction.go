// Package pset implements the predicate-set algebra of §4.1: the
// conjunction and hypothesis types, Prepare, Satisfies, and the
// consistency checker of §4.7.
package pset

import (
	"sort"

	"github.com/anjanaskumar27/winnow-ice/model"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// Conjunction is a set of predicate indices, kept sorted so iteration
// order is deterministic (and so set operations can run by merge rather
// than hashing).
type Conjunction []z.Pred

// NewConjunctionFromInterval builds the full conjunction for a location,
// i.e. every predicate in [iv.Lo, iv.Hi].
func NewConjunctionFromInterval(iv z.Interval) Conjunction {
	n := iv.Len()
	c := make(Conjunction, n)
	for i := 0; i < n; i++ {
		c[i] = iv.Lo + z.Pred(i)
	}
	return c
}

// Contains reports whether p is a member.
func (c Conjunction) Contains(p z.Pred) bool {
	i := sort.Search(len(c), func(i int) bool { return c[i] >= p })
	return i < len(c) && c[i] == p
}

// Add inserts p, keeping the slice sorted, and reports whether it was
// actually new.
func (c *Conjunction) Add(p z.Pred) bool {
	i := sort.Search(len(*c), func(i int) bool { return (*c)[i] >= p })
	if i < len(*c) && (*c)[i] == p {
		return false
	}
	*c = append(*c, 0)
	copy((*c)[i+1:], (*c)[i:])
	(*c)[i] = p
	return true
}

// Remove deletes p if present, keeping the slice sorted, and reports
// whether it was present.
func (c *Conjunction) Remove(p z.Pred) bool {
	i := sort.Search(len(*c), func(i int) bool { return (*c)[i] >= p })
	if i >= len(*c) || (*c)[i] != p {
		return false
	}
	*c = append((*c)[:i], (*c)[i+1:]...)
	return true
}

// Clone returns a deep copy.
func (c Conjunction) Clone() Conjunction {
	out := make(Conjunction, len(c))
	copy(out, c)
	return out
}

// Hypothesis is a sequence of L conjunctions, one per location.
type Hypothesis []Conjunction

// CloneHypothesis deep-copies h.
func CloneHypothesis(h Hypothesis) Hypothesis {
	out := make(Hypothesis, len(h))
	for i, c := range h {
		out[i] = c.Clone()
	}
	return out
}

// Satisfies reports whether dp satisfies conjunction c: every predicate
// in c must be true on dp.
func Satisfies(dp *model.DataPoint, c Conjunction) bool {
	for _, p := range c {
		if !dp.Bits[p] {
			return false
		}
	}
	return true
}
