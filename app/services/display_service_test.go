package services

import (
	"reflect"
	"testing"

	"github.com/lamargherita/go-storefront/app/db/seeders"
	"github.com/lamargherita/go-storefront/app/models"
)

func newTestDisplayService() *DisplayService {
	return NewDisplayService(seeders.Products(), nil)
}

func TestLineTitle_QuantityAndSize(t *testing.T) {
	d := newTestDisplayService()

	item := &models.CartItem{
		ProductID:   "pz-margherita",
		ProductName: "Margherita Pizza",
		Quantity:    2,
		Selections: []models.CartSelection{
			models.NewSelection(models.SelectionSize, "pz-size-lg", `Large 18"`, "pz-margherita-size"),
		},
	}
	if got := d.LineTitle(item); got != `2 Margherita Pizza (Large 18")` {
		t.Errorf("unexpected title: %q", got)
	}
}

func TestLineTitle_SingleQuantityHasNoPrefix(t *testing.T) {
	d := newTestDisplayService()

	item := &models.CartItem{
		ProductID:   "ds-cannoli",
		ProductName: "Cannoli",
		Quantity:    1,
	}
	if got := d.LineTitle(item); got != "Cannoli" {
		t.Errorf("unexpected title: %q", got)
	}
}

func TestLineTitle_WingsPieceCountRule(t *testing.T) {
	d := newTestDisplayService()

	item := &models.CartItem{
		ProductID:   "wg-buffalo-wings",
		ProductName: "Buffalo Wings (10 pcs)",
		Quantity:    1,
	}
	if got := d.LineTitle(item); got != "10 Wings" {
		t.Errorf("expected piece-count title, got %q", got)
	}
}

func TestGroupedSelections_HalfAnnotationsAndGroupTitles(t *testing.T) {
	d := newTestDisplayService()

	left, _ := models.NewHalfSelection(models.SelectionTopping, "pepperoni", "Pepperoni", "pz-margherita-toppings", models.DistributionLeft)
	right, _ := models.NewHalfSelection(models.SelectionTopping, "mushrooms", "Mushrooms", "pz-margherita-toppings", models.DistributionRight)
	item := &models.CartItem{
		ProductID:   "pz-margherita",
		ProductName: "Margherita Pizza",
		Quantity:    1,
		Selections: []models.CartSelection{
			models.NewSelection(models.SelectionSize, "pz-size-md", `Medium 16"`, "pz-margherita-size"),
			left,
			right,
			models.NewSelection(models.SelectionCheese, "extra-mozzarella", "Extra Mozzarella", "pz-margherita-cheese"),
		},
	}

	groups := d.GroupedSelections(item)
	want := []SelectionGroup{
		{Title: "Toppings", Items: []string{"Mushrooms (Right Half)", "Pepperoni (Left Half)"}},
		{Title: "Cheese", Items: []string{"Extra Mozzarella"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("unexpected grouping:\ngot  %+v\nwant %+v", groups, want)
	}
}

func TestGroupedSelections_SizeIsExcluded(t *testing.T) {
	d := newTestDisplayService()

	item := &models.CartItem{
		ProductID:   "pz-margherita",
		ProductName: "Margherita Pizza",
		Quantity:    1,
		Selections: []models.CartSelection{
			models.NewSelection(models.SelectionSize, "pz-size-md", `Medium 16"`, "pz-margherita-size"),
		},
	}
	if groups := d.GroupedSelections(item); len(groups) != 0 {
		t.Errorf("size selections must not appear in grouped output, got %+v", groups)
	}
}

func TestGroupedSelections_FreeGroupsHiddenByRule(t *testing.T) {
	d := newTestDisplayService()

	item := &models.CartItem{
		ProductID:   "ap-chicken-tenders",
		ProductName: "Chicken Tenders",
		Quantity:    1,
		Selections: []models.CartSelection{
			models.NewSelection(models.SelectionRequiredOption, "extra-crispy", "Extra Crispy", "ap-tenders-cook"),
			models.NewSelection(models.SelectionSide, "french-fries", "French Fries", "ap-tenders-sides"),
		},
	}

	groups := d.GroupedSelections(item)
	want := []SelectionGroup{
		{Title: "Add Sides", Items: []string{"French Fries"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("expected the free cook-level group hidden:\ngot  %+v\nwant %+v", groups, want)
	}
}
