package services

import (
	"github.com/lamargherita/go-storefront/app/models"
)

// DistributionSet tracks how the selections of one cart item cover a
// divisible product, per underlying option. A single option may be
// applied to the whole pizza, or to the left and right halves
// independently, but never both at once: "whole" and "left-only" are
// contradictory instructions about the same physical pizza, and the
// halves bill at half the listed price each.
type DistributionSet struct {
	states map[string]*distributionState
}

type distributionState struct {
	whole bool
	left  bool
	right bool
}

func NewDistributionSet() *DistributionSet {
	return &DistributionSet{states: make(map[string]*distributionState)}
}

func (ds *DistributionSet) state(optionID string) *distributionState {
	st, ok := ds.states[optionID]
	if !ok {
		st = &distributionState{}
		ds.states[optionID] = st
	}
	return st
}

// ApplyWhole registers a whole-product application of the option.
func (ds *DistributionSet) ApplyWhole(optionID string) error {
	st := ds.state(optionID)
	if st.whole || st.left || st.right {
		return models.ConflictingDistribution(optionID)
	}
	st.whole = true
	return nil
}

// ApplyHalf registers a left or right half application of the option.
// A left+right pair is legal; a duplicate side or a mix with a whole
// application is not.
func (ds *DistributionSet) ApplyHalf(optionID string, side models.Distribution) error {
	if !side.IsHalf() {
		return ds.ApplyWhole(optionID)
	}
	st := ds.state(optionID)
	if st.whole {
		return models.ConflictingDistribution(optionID)
	}
	switch side {
	case models.DistributionLeft:
		if st.left {
			return models.ConflictingDistribution(optionID)
		}
		st.left = true
	case models.DistributionRight:
		if st.right {
			return models.ConflictingDistribution(optionID)
		}
		st.right = true
	}
	return nil
}

// Apply routes a selection's distribution to ApplyWhole or ApplyHalf.
func (ds *DistributionSet) Apply(sel models.CartSelection) error {
	d := sel.Distribution.Normalize()
	if d.IsHalf() {
		return ds.ApplyHalf(sel.OptionID, d)
	}
	return ds.ApplyWhole(sel.OptionID)
}
