package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/lamargherita/go-storefront/app/db/seeders"
	"github.com/lamargherita/go-storefront/app/models"
	"github.com/lamargherita/go-storefront/app/repositories"
)

const testCartID = "cart-1"

func newTestCartService() *CartService {
	catalogRepo := repositories.NewProductRepository(seeders.Products())
	cartItemRepo := repositories.NewCartItemRepository()
	return NewCartService(catalogRepo, cartItemRepo, NewSelectionValidator(), NewPriceCalculator())
}

func margheritaSelections(t *testing.T) []models.CartSelection {
	t.Helper()
	left, err := models.NewHalfSelection(models.SelectionCheese, "no-mozzarella", "No Mozzarella", "pz-margherita-cheese", models.DistributionLeft)
	if err != nil {
		t.Fatal(err)
	}
	return []models.CartSelection{
		models.NewSelection(models.SelectionSize, "pz-size-md", `Medium 16"`, "pz-margherita-size"),
		left,
	}
}

func TestAddItem_ComputesSeafoodComboTotal(t *testing.T) {
	svc := newTestCartService()

	item, err := svc.AddItem(context.Background(), testCartID, "pa-seafood-combo", 1, seafoodSelections())
	if err != nil {
		t.Fatal(err)
	}
	if got := item.ComputedTotal.StringFixed(2); got != "28.47" {
		t.Errorf("expected 28.47, got %s", got)
	}
	if got := item.UnitBasePrice.StringFixed(2); got != "21.49" {
		t.Errorf("expected unit base 21.49, got %s", got)
	}
}

func TestAddItem_IdenticalCallsNeverMerge(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	first, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 1, seafoodSelections())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 1, seafoodSelections())
	if err != nil {
		t.Fatal(err)
	}

	if first.ID == second.ID {
		t.Fatalf("identical adds must mint distinct ids, both got %s", first.ID)
	}
	items, err := svc.GetItems(ctx, testCartID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 independent items, got %d", len(items))
	}

	// Each is independently removable.
	if err := svc.RemoveItem(ctx, testCartID, first.ID); err != nil {
		t.Fatal(err)
	}
	items, _ = svc.GetItems(ctx, testCartID)
	if len(items) != 1 || items[0].ID != second.ID {
		t.Fatalf("expected only the second item to remain, got %+v", items)
	}
}

func TestAddItem_ValidationFailureLeavesCartUntouched(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 1, nil)
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	items, _ := svc.GetItems(ctx, testCartID)
	if len(items) != 0 {
		t.Fatalf("failed add must not create items, got %d", len(items))
	}
}

func TestAddItem_WholeAndHalfOfSameOptionRejected(t *testing.T) {
	svc := newTestCartService()

	sels := append(margheritaSelections(t),
		models.NewSelection(models.SelectionCheese, "no-mozzarella", "No Mozzarella", "pz-margherita-cheese"))
	_, err := svc.AddItem(context.Background(), testCartID, "pz-margherita", 1, sels)
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) || !verrs.HasCode(models.CodeConflictingDistribution) {
		t.Fatalf("expected conflicting_distribution, got %v", err)
	}
}

func TestAddItem_MargheritaLeftHalfNoMozzarella(t *testing.T) {
	svc := newTestCartService()

	item, err := svc.AddItem(context.Background(), testCartID, "pz-margherita", 1, margheritaSelections(t))
	if err != nil {
		t.Fatal(err)
	}
	if got := item.ComputedTotal.StringFixed(2); got != "21.99" {
		t.Errorf("expected 21.99, got %s", got)
	}
	// The half selection is retained as such.
	found := false
	for _, sel := range item.Selections {
		if sel.OptionID == "no-mozzarella" && sel.Distribution == models.DistributionLeft {
			found = true
		}
	}
	if !found {
		t.Error("left-half selection not retained on the item")
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.AddItem(context.Background(), testCartID, "no-such-product", 1, nil)
	if !errors.Is(err, models.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestEditItem_ChangesOnlyTheTargetedItem(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	target, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 1, seafoodSelections())
	if err != nil {
		t.Fatal(err)
	}
	other, err := svc.AddItem(ctx, testCartID, "pz-margherita", 2, margheritaSelections(t))
	if err != nil {
		t.Fatal(err)
	}
	otherBefore, err := svc.GetItem(ctx, testCartID, other.ID)
	if err != nil {
		t.Fatal(err)
	}

	newSels := []models.CartSelection{
		models.NewSelection(models.SelectionPastaType, "penne", "Penne", "pa-seafood-pasta-type"),
	}
	edited, err := svc.EditItem(ctx, testCartID, target.ID, 3, newSels)
	if err != nil {
		t.Fatal(err)
	}

	if edited.ID != target.ID {
		t.Errorf("edit must keep the item id, got %s", edited.ID)
	}
	if got := edited.ComputedTotal.StringFixed(2); got != "64.47" {
		t.Errorf("expected 3 x 21.49 = 64.47, got %s", got)
	}
	if edited.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", edited.Quantity)
	}

	otherAfter, err := svc.GetItem(ctx, testCartID, other.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(otherBefore, otherAfter) {
		t.Errorf("untargeted item changed:\nbefore %+v\nafter  %+v", otherBefore, otherAfter)
	}
}

func TestEditItem_ValidationFailureKeepsOldState(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 1, seafoodSelections())
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.EditItem(ctx, testCartID, item.ID, 2, nil)
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}

	stored, err := svc.GetItem(ctx, testCartID, item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Quantity != 1 || stored.ComputedTotal.StringFixed(2) != "28.47" {
		t.Errorf("failed edit mutated the item: %+v", stored)
	}
}

func TestEditItem_AbsentIDFails(t *testing.T) {
	svc := newTestCartService()

	_, err := svc.EditItem(context.Background(), testCartID, "missing", 1, seafoodSelections())
	if !errors.Is(err, models.ErrNoSuchItem) {
		t.Fatalf("expected ErrNoSuchItem, got %v", err)
	}
}

func TestRemoveThenEditFailsWithNoSuchItem(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 1, seafoodSelections())
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.RemoveItem(ctx, testCartID, item.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.EditItem(ctx, testCartID, item.ID, 2, seafoodSelections()); !errors.Is(err, models.ErrNoSuchItem) {
		t.Fatalf("expected ErrNoSuchItem, got %v", err)
	}
}

func TestRemoveItem_Idempotent(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	if err := svc.RemoveItem(ctx, testCartID, "never-existed"); err != nil {
		t.Fatalf("removing an absent id must be a no-op, got %v", err)
	}
}

func TestDuplicateItem_ClonesUnderFreshID(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	original, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 2, seafoodSelections())
	if err != nil {
		t.Fatal(err)
	}
	clone, err := svc.DuplicateItem(ctx, testCartID, original.ID)
	if err != nil {
		t.Fatal(err)
	}

	if clone.ID == original.ID {
		t.Fatal("duplicate must mint a fresh id")
	}
	if clone.ProductID != original.ProductID || clone.Quantity != original.Quantity {
		t.Errorf("clone differs from original: %+v vs %+v", clone, original)
	}
	if !reflect.DeepEqual(clone.Selections, original.Selections) {
		t.Errorf("clone selections differ: %+v vs %+v", clone.Selections, original.Selections)
	}
	if !clone.ComputedTotal.Equal(original.ComputedTotal) {
		t.Errorf("clone total %s differs from original %s", clone.ComputedTotal, original.ComputedTotal)
	}
}

func TestDuplicateItem_AbsentIDFails(t *testing.T) {
	svc := newTestCartService()

	if _, err := svc.DuplicateItem(context.Background(), testCartID, "missing"); !errors.Is(err, models.ErrNoSuchItem) {
		t.Fatalf("expected ErrNoSuchItem, got %v", err)
	}
}

func TestTotalQuantity(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 2, seafoodSelections()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(ctx, testCartID, "pz-margherita", 3, margheritaSelections(t)); err != nil {
		t.Fatal(err)
	}

	count, err := svc.TotalQuantity(ctx, testCartID)
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("expected total quantity 5, got %d", count)
	}
}

func TestClearCart(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, testCartID, "pa-seafood-combo", 1, seafoodSelections()); err != nil {
		t.Fatal(err)
	}
	if err := svc.ClearCart(ctx, testCartID); err != nil {
		t.Fatal(err)
	}
	items, _ := svc.GetItems(ctx, testCartID)
	if len(items) != 0 {
		t.Errorf("expected empty cart after clear, got %d items", len(items))
	}
}

func TestCartsAreIsolatedByID(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "cart-a", "pa-seafood-combo", 1, seafoodSelections()); err != nil {
		t.Fatal(err)
	}
	items, _ := svc.GetItems(ctx, "cart-b")
	if len(items) != 0 {
		t.Errorf("cart-b must not see cart-a's items, got %d", len(items))
	}
}
