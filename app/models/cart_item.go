package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line item in a shopper's cart. The ID is minted once
// per add/duplicate and never reused; two items with identical
// configuration are still distinct lines.
type CartItem struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	Selections    []CartSelection `json:"selections"`
	UnitBasePrice decimal.Decimal `json:"unit_base_price"`
	ComputedTotal decimal.Decimal `json:"computed_total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Clone returns a deep copy so stored items never share selection
// slices with callers.
func (ci CartItem) Clone() CartItem {
	out := ci
	if ci.Selections != nil {
		out.Selections = make([]CartSelection, len(ci.Selections))
		copy(out.Selections, ci.Selections)
	}
	return out
}
