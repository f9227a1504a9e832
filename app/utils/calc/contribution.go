package calc

import (
	"github.com/lamargherita/go-storefront/app/models"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// SelectionContribution is what one selection adds to the per-unit
// price. Option prices are listed as whole-product prices, so a
// left or right half application bills half the listed price.
func SelectionContribution(listedPrice decimal.Decimal, dist models.Distribution) decimal.Decimal {
	if dist.Normalize().IsHalf() {
		return listedPrice.Div(two)
	}
	return listedPrice
}

// RoundToCents rounds half-up to two decimal places.
func RoundToCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// LineTotal multiplies a per-unit price by a quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
