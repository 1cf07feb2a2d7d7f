package ioformat

import (
	"github.com/anjanaskumar27/winnow-ice/model"
)

// LoadStore reads the .attributes, .intervals, .data, and .horn
// artifacts for stem into a *model.Store, ready for model.Store.Validate
// and the core algorithm packages.
func LoadStore(stem string) (*model.Store, *Attributes, error) {
	attrs, err := ReadAttributes(stem + ".attributes")
	if err != nil {
		return nil, nil, err
	}
	intervals, err := ReadIntervals(stem + ".intervals")
	if err != nil {
		return nil, nil, err
	}
	numPreds := 0
	for _, iv := range intervals {
		if int(iv.Hi)+1 > numPreds {
			numPreds = int(iv.Hi) + 1
		}
	}
	points, err := ReadData(stem+".data", numPreds)
	if err != nil {
		return nil, nil, err
	}
	horns, err := ReadHorn(stem + ".horn")
	if err != nil {
		return nil, nil, err
	}
	st := &model.Store{Points: points, Horns: horns, Intervals: intervals}
	if err := st.Validate(); err != nil {
		return nil, nil, err
	}
	return st, attrs, nil
}
