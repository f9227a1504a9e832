package services

import (
	"fmt"

	"github.com/lamargherita/go-storefront/app/models"
	"github.com/lamargherita/go-storefront/app/utils/calc"
	"github.com/shopspring/decimal"
)

// PriceCalculator derives a monetary total for one line item. It
// assumes its input already passed the SelectionValidator and does not
// re-run group-rule validation; selections it cannot resolve against
// the product mean the caller skipped that step, which is reported as
// models.ErrPreconditionViolation rather than a user-facing error.
type PriceCalculator struct{}

func NewPriceCalculator() *PriceCalculator {
	return &PriceCalculator{}
}

// UnitBasePrice resolves the per-unit starting price: the matching
// price tier when the product has tiers and a size selection is
// present, otherwise the product's base price.
func (c *PriceCalculator) UnitBasePrice(product *models.Product, selections []models.CartSelection) (decimal.Decimal, error) {
	if len(product.PriceTiers) == 0 {
		return product.BasePrice, nil
	}
	for _, sel := range selections {
		if sel.Type != models.SelectionSize {
			continue
		}
		tier := product.FindTier(sel.OptionID)
		if tier == nil {
			return decimal.Zero, fmt.Errorf("%w: size selection %s has no price tier on product %s",
				models.ErrPreconditionViolation, sel.OptionID, product.ID)
		}
		return tier.Price, nil
	}
	return product.BasePrice, nil
}

// UnitPrice is the per-unit total: base plus every selection's
// contribution, rounded half-up to the cent.
func (c *PriceCalculator) UnitPrice(product *models.Product, selections []models.CartSelection) (decimal.Decimal, error) {
	unit, err := c.UnitBasePrice(product, selections)
	if err != nil {
		return decimal.Zero, err
	}

	ds := NewDistributionSet()
	for _, sel := range selections {
		group := product.FindGroup(sel.GroupID)
		if group == nil {
			return decimal.Zero, fmt.Errorf("%w: selection %s references unknown group %s",
				models.ErrPreconditionViolation, sel.OptionID, sel.GroupID)
		}
		opt := group.FindOption(sel.OptionID)
		if opt == nil {
			return decimal.Zero, fmt.Errorf("%w: selection %s not found in group %s",
				models.ErrPreconditionViolation, sel.OptionID, sel.GroupID)
		}
		if err := ds.Apply(sel); err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v", models.ErrPreconditionViolation, err)
		}
		unit = unit.Add(calc.SelectionContribution(opt.Price, sel.Distribution))
	}

	return calc.RoundToCents(unit), nil
}

// ComputeLineTotal is the per-unit price times the quantity.
func (c *PriceCalculator) ComputeLineTotal(product *models.Product, quantity int, selections []models.CartSelection) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, models.ErrInvalidQuantity
	}
	unit, err := c.UnitPrice(product, selections)
	if err != nil {
		return decimal.Zero, err
	}
	return calc.LineTotal(unit, quantity), nil
}
