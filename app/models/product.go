package models

import "github.com/shopspring/decimal"

// Product is a read-only catalog record. The catalog is loaded once per
// process from the menu seed and never mutated afterwards.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	BasePrice    decimal.Decimal `json:"base_price"`
	PriceTiers   []PriceTier     `json:"price_tiers,omitempty"`
	Divisible    bool            `json:"divisible"`
	OptionGroups []OptionGroup   `json:"option_groups,omitempty"`
}

// PriceTier is one size variant of a product. Tier IDs double as the
// option IDs of the product's size group, so a size selection resolves
// its tier directly.
type PriceTier struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

type OptionGroup struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Type          SelectionType `json:"type"`
	Required      bool          `json:"required"`
	Multiple      bool          `json:"multiple"`
	MaxSelections int           `json:"max_selections,omitempty"`
	Options       []Option      `json:"options"`
}

// Option prices are listed whole-product prices; a half-distribution
// selection bills half of this amount.
type Option struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// EffectiveMax is the selection cap for the group: a non-multiple group
// caps at one regardless of MaxSelections, 0 means unbounded.
func (g *OptionGroup) EffectiveMax() int {
	if !g.Multiple {
		return 1
	}
	return g.MaxSelections
}

func (p *Product) FindGroup(groupID string) *OptionGroup {
	for i := range p.OptionGroups {
		if p.OptionGroups[i].ID == groupID {
			return &p.OptionGroups[i]
		}
	}
	return nil
}

func (g *OptionGroup) FindOption(optionID string) *Option {
	for i := range g.Options {
		if g.Options[i].ID == optionID {
			return &g.Options[i]
		}
	}
	return nil
}

func (p *Product) FindTier(tierID string) *PriceTier {
	for i := range p.PriceTiers {
		if p.PriceTiers[i].ID == tierID {
			return &p.PriceTiers[i]
		}
	}
	return nil
}
