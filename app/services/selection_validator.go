package services

import (
	"github.com/lamargherita/go-storefront/app/models"
)

// SelectionValidator checks a candidate selection set against a
// product's option-group schema. It has no state and no side effects;
// every violation is collected so the caller can report all of them in
// one pass.
type SelectionValidator struct{}

func NewSelectionValidator() *SelectionValidator {
	return &SelectionValidator{}
}

// Validate returns nil when the selections satisfy every group
// constraint of the product, otherwise the full list of violations.
func (v *SelectionValidator) Validate(product *models.Product, selections []models.CartSelection) models.ValidationErrors {
	var errs models.ValidationErrors

	counts := make(map[string]int, len(product.OptionGroups))
	for _, sel := range selections {
		counts[sel.GroupID]++
	}

	for i := range product.OptionGroups {
		group := &product.OptionGroups[i]
		n := counts[group.ID]
		if group.Required && n == 0 {
			errs = append(errs, models.MissingRequiredSelection(group.ID))
		}
		if max := group.EffectiveMax(); max > 0 && n > max {
			errs = append(errs, models.TooManySelections(group.ID, max, n))
		}
	}

	for _, sel := range selections {
		group := product.FindGroup(sel.GroupID)
		if group == nil || group.FindOption(sel.OptionID) == nil {
			errs = append(errs, models.UnknownOptionReference(sel.OptionID, sel.GroupID))
		}
		if sel.Distribution.Normalize().IsHalf() && !product.Divisible {
			errs = append(errs, models.InvalidDistribution(sel.OptionID))
		}
	}

	errs = append(errs, v.checkDistributionConflicts(selections)...)
	return errs
}

// checkDistributionConflicts replays the selections through a
// DistributionSet and reports each option that mixes whole and half
// application, once per option.
func (v *SelectionValidator) checkDistributionConflicts(selections []models.CartSelection) models.ValidationErrors {
	var errs models.ValidationErrors
	ds := NewDistributionSet()
	flagged := make(map[string]bool)
	for _, sel := range selections {
		if err := ds.Apply(sel); err != nil && !flagged[sel.OptionID] {
			flagged[sel.OptionID] = true
			errs = append(errs, models.ConflictingDistribution(sel.OptionID))
		}
	}
	return errs
}
