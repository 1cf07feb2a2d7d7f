// Package model implements the data model of §3: data points, Horn
// constraints, and the example store that owns them for the duration of
// one CEGIS round.
package model

import "github.com/anjanaskumar27/winnow-ice/z"

// Label is the classification state of a data point.
type Label int

const (
	Unlabeled Label = iota
	Positive
	Negative
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unlabeled"
	}
}

// DataPoint is one example: the truth value of every predicate in the
// global alphabet, the location it belongs to, and its classification.
type DataPoint struct {
	Bits  []bool
	Loc   z.Loc
	Label Label
}

// PointRef is an index into a Store's Points arena. Horn constraints
// hold PointRefs rather than *DataPoint to avoid any ownership cycle
// between constraints and the points they reference.
type PointRef int

// Conclusion is the tagged union `Point(id) | ⊥` of §3. IsFalse is set
// for the ⊥ sentinel; otherwise Ref names the concluding data point.
type Conclusion struct {
	IsFalse bool
	Ref     PointRef
}

// False constructs the ⊥ conclusion.
func False() Conclusion {
	return Conclusion{IsFalse: true}
}

// ConclusionOf constructs a conclusion naming a concrete data point.
func ConclusionOf(ref PointRef) Conclusion {
	return Conclusion{Ref: ref}
}

// Horn is a Horn constraint `premises ⇒ conclusion`.
type Horn struct {
	Premises   []PointRef
	Conclusion Conclusion
}
