package models

import "fmt"

// SelectionType tags what kind of choice a CartSelection represents.
type SelectionType string

const (
	SelectionTopping            SelectionType = "topping"
	SelectionRequiredOption     SelectionType = "required_option"
	SelectionSpecialInstruction SelectionType = "special_instruction"
	SelectionSide               SelectionType = "side"
	SelectionBeverage           SelectionType = "beverage"
	SelectionDessert            SelectionType = "dessert"
	SelectionSize               SelectionType = "size"
	SelectionCheese             SelectionType = "cheese"
	SelectionSauce              SelectionType = "sauce"
	SelectionPastaType          SelectionType = "pasta_type"
	SelectionOther              SelectionType = "other"
)

// AllowsDistribution reports whether selections of this type may be
// confined to one half of a divisible product. Only topping-like
// physical modifications can be halved; sizes, sides, beverages and the
// like always apply to the whole item.
func (t SelectionType) AllowsDistribution() bool {
	switch t {
	case SelectionTopping, SelectionCheese, SelectionSauce:
		return true
	}
	return false
}

// Distribution says which part of a divisible product a selection
// applies to. The zero value is treated as DistributionWhole.
type Distribution string

const (
	DistributionLeft  Distribution = "left"
	DistributionWhole Distribution = "whole"
	DistributionRight Distribution = "right"
)

// IsHalf reports whether the distribution covers only one half.
func (d Distribution) IsHalf() bool {
	return d == DistributionLeft || d == DistributionRight
}

// Normalize maps the zero value to DistributionWhole.
func (d Distribution) Normalize() Distribution {
	if d == "" {
		return DistributionWhole
	}
	return d
}

func ParseDistribution(s string) (Distribution, error) {
	switch Distribution(s) {
	case "", DistributionWhole:
		return DistributionWhole, nil
	case DistributionLeft:
		return DistributionLeft, nil
	case DistributionRight:
		return DistributionRight, nil
	}
	return "", fmt.Errorf("invalid distribution %q", s)
}

// CartSelection is one chosen option attached to a cart line item.
// Build selections through the typed constructors below so that only
// topping-like selections on divisible products ever carry a half
// distribution.
type CartSelection struct {
	OptionID     string        `json:"option_id"`
	Label        string        `json:"label"`
	Type         SelectionType `json:"type"`
	GroupID      string        `json:"group_id"`
	Distribution Distribution  `json:"distribution,omitempty"`
}

// NewSelection builds a whole-product selection of the given type.
func NewSelection(t SelectionType, optionID, label, groupID string) CartSelection {
	return CartSelection{
		OptionID:     optionID,
		Label:        label,
		Type:         t,
		GroupID:      groupID,
		Distribution: DistributionWhole,
	}
}

// NewHalfSelection builds a half-distribution selection. It refuses
// types that cannot be halved; product divisibility is checked by the
// selection validator, which knows the product.
func NewHalfSelection(t SelectionType, optionID, label, groupID string, side Distribution) (CartSelection, error) {
	if !t.AllowsDistribution() {
		return CartSelection{}, fmt.Errorf("selection type %q cannot carry a half distribution", t)
	}
	if !side.IsHalf() {
		return CartSelection{}, fmt.Errorf("half selection requires left or right, got %q", side)
	}
	sel := NewSelection(t, optionID, label, groupID)
	sel.Distribution = side
	return sel, nil
}
