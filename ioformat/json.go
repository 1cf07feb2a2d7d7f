package ioformat

import (
	"encoding/json"
	"os"

	"github.com/anjanaskumar27/winnow-ice/errs"
	"github.com/anjanaskumar27/winnow-ice/ltf"
	"github.com/anjanaskumar27/winnow-ice/pset"
	"github.com/anjanaskumar27/winnow-ice/z"
)

// jsonNode is the verifier-facing tree shape of §6, matching the field
// names of the original's write_ltf_json/ltf2bool output verbatim.
type jsonNode struct {
	Attribute      string      `json:"attribute"`
	Cut            int         `json:"cut"`
	Classification bool        `json:"classification"`
	Children       []*jsonNode `json:"children"`
}

func writeJSON(path string, root *jsonNode) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.InvalidInputf("creating %s: %v", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	if err := enc.Encode(root); err != nil {
		return errs.InvalidInputf("encoding %s: %v", path, err)
	}
	return nil
}

// LocName returns the location's name, falling back to its z.Loc
// stringification when .attributes carried fewer location names than
// locations (defensive only; Validate on load rejects a genuine
// mismatch).
func (a *Attributes) LocName(loc int) string {
	if loc >= 0 && loc < len(a.LocNames) {
		return a.LocNames[loc]
	}
	return z.Loc(loc).String()
}

// WriteConjunctiveJSON emits the decision tree for a conjunctive
// hypothesis: a root splitting on location, each child a chain of
// "attribute must be true" nodes ending in a positive leaf.
func WriteConjunctiveJSON(path string, attrs *Attributes, r pset.Hypothesis) error {
	root := &jsonNode{Attribute: "$loc", Classification: true}
	for loc, c := range r {
		root.Children = append(root.Children, &jsonNode{
			Attribute:      attrs.LocName(loc),
			Cut:            loc,
			Classification: true,
			Children:       []*jsonNode{conjunctionChain(c, attrs)},
		})
	}
	return writeJSON(path, root)
}

func conjunctionChain(c pset.Conjunction, attrs *Attributes) *jsonNode {
	if len(c) == 0 {
		return &jsonNode{Classification: true}
	}
	return &jsonNode{
		Attribute:      attrs.PredNames[int(c[0])],
		Classification: true,
		Children:       []*jsonNode{conjunctionChain(c[1:], attrs)},
	}
}

// WriteWinnowLTFJSON emits the two-level LTF tree for a trained Winnow
// fleet: the root's cut is θ·1000, children list (attribute, weight·1000)
// leaf pairs, per §6 and the original's write_ltf_json. intervals gives
// each location's global [Lo,Hi] range, for translating a Winnow's local
// weight index back to a global predicate name.
func WriteWinnowLTFJSON(path string, attrs *Attributes, objs []*ltf.Winnow, intervals []z.Interval) error {
	root := &jsonNode{Attribute: "$func", Classification: true}
	inner := &jsonNode{Attribute: "$func", Cut: int(objs[0].Theta * 1000), Classification: true}
	for loc, w := range objs {
		lo := int(intervals[loc].Lo)
		for j, wt := range w.Weights {
			inner.Children = append(inner.Children, &jsonNode{
				Attribute:      attrs.PredNames[lo+j],
				Cut:            int(wt * 1000),
				Classification: true,
			})
		}
	}
	root.Children = []*jsonNode{inner}
	return writeJSON(path, root)
}

// WritePerceptronLTFJSON mirrors WriteWinnowLTFJSON for Perceptron
// objects, whose Weights[0] is the bias (root cut is -bias·1000, per the
// original's sign convention).
func WritePerceptronLTFJSON(path string, attrs *Attributes, objs []*ltf.Perceptron, intervals []z.Interval) error {
	root := &jsonNode{Attribute: "$func", Classification: true}
	inner := &jsonNode{Attribute: "$func", Cut: -int(objs[0].Weights[0] * 1000), Classification: true}
	for loc, p := range objs {
		lo := int(intervals[loc].Lo)
		for j := 1; j < len(p.Weights); j++ {
			inner.Children = append(inner.Children, &jsonNode{
				Attribute:      attrs.PredNames[lo+j-1],
				Cut:            int(p.Weights[j] * 1000),
				Classification: true,
			})
		}
	}
	root.Children = []*jsonNode{inner}
	return writeJSON(path, root)
}

// WriteBoolTreeJSON emits the LTF-to-Boolean lowered trees (one per
// location) under a dummy "$func" root, matching write_ltf2bool_json.
// writeFalse forces the single constant-false leaf (the -n shortcut);
// it returns the number of leaves written so the caller can apply §6's
// -l/-j adaptive size threshold.
func WriteBoolTreeJSON(path string, trees []*ltf.BoolNode, writeFalse bool) (int, error) {
	root := &jsonNode{Attribute: "$func", Classification: true}
	if writeFalse {
		root.Children = []*jsonNode{{Classification: false}}
		return 1, writeJSON(path, root)
	}
	leaves := 0
	for _, t := range trees {
		node, n := toJSONNode(t)
		leaves += n
		root.Children = append(root.Children, node)
	}
	return leaves, writeJSON(path, root)
}

func toJSONNode(n *ltf.BoolNode) (*jsonNode, int) {
	if n.Children == nil {
		return &jsonNode{Classification: n.Classification}, 1
	}
	left, leftLeaves := toJSONNode(n.Children[0])
	right, rightLeaves := toJSONNode(n.Children[1])
	return &jsonNode{
		Attribute:      n.Attribute,
		Classification: true,
		Children:       []*jsonNode{left, right},
	}, leftLeaves + rightLeaves
}
