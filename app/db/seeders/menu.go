package seeders

import (
	"github.com/lamargherita/go-storefront/app/models"
	"github.com/shopspring/decimal"
)

func usd(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Products is the static menu the catalog repository serves. Size
// group options are free: choosing one swaps the price tier instead of
// adding to it. Topping prices are listed whole-product prices.
func Products() []models.Product {
	return []models.Product{
		{
			ID:        "pz-margherita",
			Name:      "Margherita Pizza",
			Category:  "pizzas",
			BasePrice: usd(21.99),
			Divisible: true,
			PriceTiers: []models.PriceTier{
				{ID: "pz-size-sm", Label: `Small 14"`, Price: usd(20.99)},
				{ID: "pz-size-md", Label: `Medium 16"`, Price: usd(21.99)},
				{ID: "pz-size-lg", Label: `Large 18"`, Price: usd(23.99)},
			},
			OptionGroups: []models.OptionGroup{
				{
					ID:       "pz-margherita-size",
					Title:    "Size",
					Type:     models.SelectionSize,
					Required: true,
					Options: []models.Option{
						{ID: "pz-size-sm", Name: `Small 14"`, Price: decimal.Zero},
						{ID: "pz-size-md", Name: `Medium 16"`, Price: decimal.Zero},
						{ID: "pz-size-lg", Name: `Large 18"`, Price: decimal.Zero},
					},
				},
				{
					ID:       "pz-margherita-cheese",
					Title:    "Cheese",
					Type:     models.SelectionCheese,
					Multiple: true,
					Options: []models.Option{
						{ID: "no-mozzarella", Name: "No Mozzarella", Price: decimal.Zero},
						{ID: "extra-mozzarella", Name: "Extra Mozzarella", Price: usd(2.49)},
						{ID: "fresh-ricotta", Name: "Fresh Ricotta", Price: usd(2.49)},
					},
				},
				{
					ID:            "pz-margherita-toppings",
					Title:         "Toppings",
					Type:          models.SelectionTopping,
					Multiple:      true,
					MaxSelections: 10,
					Options: []models.Option{
						{ID: "pepperoni", Name: "Pepperoni", Price: usd(2.00)},
						{ID: "sausage", Name: "Sausage", Price: usd(2.00)},
						{ID: "mushrooms", Name: "Mushrooms", Price: usd(1.49)},
						{ID: "red-onions", Name: "Red Onions", Price: usd(1.49)},
						{ID: "roasted-peppers", Name: "Roasted Peppers", Price: usd(1.49)},
						{ID: "fresh-basil", Name: "Fresh Basil", Price: usd(1.49)},
					},
				},
				{
					ID:       "pz-margherita-instructions",
					Title:    "Special Instructions",
					Type:     models.SelectionSpecialInstruction,
					Multiple: true,
					Options: []models.Option{
						{ID: "well-done", Name: "Well Done", Price: decimal.Zero},
						{ID: "light-sauce", Name: "Light Sauce", Price: decimal.Zero},
						{ID: "cut-in-squares", Name: "Cut In Squares", Price: decimal.Zero},
					},
				},
			},
		},
		{
			ID:        "pa-seafood-combo",
			Name:      "Seafood Combo",
			Category:  "pasta",
			BasePrice: usd(21.49),
			OptionGroups: []models.OptionGroup{
				{
					ID:       "pa-seafood-pasta-type",
					Title:    "Pasta Type",
					Type:     models.SelectionPastaType,
					Required: true,
					Options: []models.Option{
						{ID: "penne", Name: "Penne", Price: decimal.Zero},
						{ID: "spaghetti", Name: "Spaghetti", Price: decimal.Zero},
						{ID: "linguine", Name: "Linguine", Price: decimal.Zero},
						{ID: "gluten-free-penne", Name: "Gluten Free Penne", Price: usd(4.00)},
					},
				},
				{
					ID:            "pa-seafood-toppings",
					Title:         "Add Toppings",
					Type:          models.SelectionTopping,
					Multiple:      true,
					MaxSelections: 5,
					Options: []models.Option{
						{ID: "mushrooms", Name: "Mushrooms", Price: usd(1.49)},
						{ID: "spinach", Name: "Spinach", Price: usd(1.49)},
						{ID: "broccoli", Name: "Broccoli", Price: usd(1.49)},
						{ID: "sun-dried-tomatoes", Name: "Sun Dried Tomatoes", Price: usd(1.49)},
					},
				},
			},
		},
		{
			ID:        "wg-buffalo-wings",
			Name:      "Buffalo Wings (10 pcs)",
			Category:  "wings",
			BasePrice: usd(13.99),
			OptionGroups: []models.OptionGroup{
				{
					ID:       "wg-buffalo-sauce",
					Title:    "Wings Sauce",
					Type:     models.SelectionSauce,
					Required: true,
					Options: []models.Option{
						{ID: "buffalo", Name: "Buffalo", Price: decimal.Zero},
						{ID: "bbq", Name: "BBQ", Price: decimal.Zero},
						{ID: "hot", Name: "Hot", Price: decimal.Zero},
						{ID: "garlic-parmesan", Name: "Garlic Parmesan", Price: decimal.Zero},
					},
				},
				{
					ID:            "wg-buffalo-dipping",
					Title:         "Dipping Sauce",
					Type:          models.SelectionSide,
					Multiple:      true,
					MaxSelections: 3,
					Options: []models.Option{
						{ID: "ranch", Name: "Ranch", Price: usd(0.75)},
						{ID: "bleu-cheese", Name: "Bleu Cheese", Price: usd(0.75)},
					},
				},
			},
		},
		{
			ID:        "wg-boneless-wings",
			Name:      "Boneless Wings (12 pcs)",
			Category:  "wings",
			BasePrice: usd(12.99),
			OptionGroups: []models.OptionGroup{
				{
					ID:       "wg-boneless-sauce",
					Title:    "Wings Sauce",
					Type:     models.SelectionSauce,
					Required: true,
					Options: []models.Option{
						{ID: "buffalo", Name: "Buffalo", Price: decimal.Zero},
						{ID: "honey-mustard", Name: "Honey Mustard", Price: decimal.Zero},
						{ID: "mild", Name: "Mild", Price: decimal.Zero},
					},
				},
			},
		},
		{
			ID:        "ap-chicken-tenders",
			Name:      "Chicken Tenders",
			Category:  "appetizers",
			BasePrice: usd(9.49),
			OptionGroups: []models.OptionGroup{
				{
					ID:       "ap-tenders-cook",
					Title:    "Cook Level",
					Type:     models.SelectionRequiredOption,
					Required: true,
					Options: []models.Option{
						{ID: "regular", Name: "Regular", Price: decimal.Zero},
						{ID: "extra-crispy", Name: "Extra Crispy", Price: decimal.Zero},
					},
				},
				{
					ID:            "ap-tenders-sides",
					Title:         "Add Sides",
					Type:          models.SelectionSide,
					Multiple:      true,
					MaxSelections: 2,
					Options: []models.Option{
						{ID: "french-fries", Name: "French Fries", Price: usd(2.99)},
						{ID: "side-salad", Name: "Side Salad", Price: usd(3.49)},
					},
				},
			},
		},
		{
			ID:        "ap-mozz-sticks",
			Name:      "Mozzarella Sticks",
			Category:  "appetizers",
			BasePrice: usd(8.99),
			OptionGroups: []models.OptionGroup{
				{
					ID:       "ap-mozz-marinara",
					Title:    "Marinara",
					Type:     models.SelectionRequiredOption,
					Required: true,
					Options: []models.Option{
						{ID: "marinara-side", Name: "Marinara On The Side", Price: decimal.Zero},
						{ID: "no-marinara", Name: "No Marinara", Price: decimal.Zero},
					},
				},
			},
		},
		{
			ID:        "bv-soda-2l",
			Name:      "2 Liter Soda",
			Category:  "beverages",
			BasePrice: usd(3.99),
			OptionGroups: []models.OptionGroup{
				{
					ID:       "bv-soda-flavor",
					Title:    "Flavor",
					Type:     models.SelectionBeverage,
					Required: true,
					Options: []models.Option{
						{ID: "cola", Name: "Cola", Price: decimal.Zero},
						{ID: "lemon-lime", Name: "Lemon Lime", Price: decimal.Zero},
						{ID: "orange", Name: "Orange", Price: decimal.Zero},
					},
				},
			},
		},
		{
			ID:        "ds-cannoli",
			Name:      "Cannoli",
			Category:  "desserts",
			BasePrice: usd(4.99),
			OptionGroups: []models.OptionGroup{
				{
					ID:       "ds-cannoli-extras",
					Title:    "Extras",
					Type:     models.SelectionDessert,
					Multiple: true,
					Options: []models.Option{
						{ID: "chocolate-chips", Name: "Chocolate Chips", Price: usd(0.50)},
						{ID: "powdered-sugar", Name: "Powdered Sugar", Price: decimal.Zero},
					},
				},
			},
		},
	}
}
