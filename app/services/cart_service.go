package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lamargherita/go-storefront/app/models"
	"github.com/lamargherita/go-storefront/app/repositories"
	log "github.com/sirupsen/logrus"
)

// CartService is the commit surface of the cart: every mutation runs
// the selection validator and price calculator first and only touches
// the repository once both succeed, so the cart is never observed in a
// partially updated state.
type CartService struct {
	catalogRepo  repositories.ProductRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	validator    *SelectionValidator
	calculator   *PriceCalculator
}

func NewCartService(
	catalogRepo repositories.ProductRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	validator *SelectionValidator,
	calculator *PriceCalculator,
) *CartService {
	return &CartService{
		catalogRepo:  catalogRepo,
		cartItemRepo: cartItemRepo,
		validator:    validator,
		calculator:   calculator,
	}
}

// priceItem validates and prices one candidate configuration. The
// returned errors are either models.ValidationErrors (user-correctable)
// or wrapped internal errors.
func (s *CartService) priceItem(product *models.Product, qty int, selections []models.CartSelection) (*models.CartItem, error) {
	if qty < 1 {
		return nil, models.ErrInvalidQuantity
	}
	if errs := s.validator.Validate(product, selections); len(errs) > 0 {
		return nil, errs
	}

	unitBase, err := s.calculator.UnitBasePrice(product, selections)
	if err != nil {
		return nil, err
	}
	total, err := s.calculator.ComputeLineTotal(product, qty, selections)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.CartItem{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      qty,
		Selections:    selections,
		UnitBasePrice: unitBase,
		ComputedTotal: total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return item, nil
}

// AddItem commits a new line item. Identical calls always create
// distinct items under fresh ids; equal configurations are never
// merged.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string, qty int, selections []models.CartSelection) (*models.CartItem, error) {
	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s: %w", productID, err)
	}

	item, err := s.priceItem(product, qty, selections)
	if err != nil {
		return nil, err
	}
	item.ID = uuid.New().String()

	if err := s.cartItemRepo.Add(ctx, cartID, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	log.Printf("CartService.AddItem: added %dx %s to cart %s as item %s", qty, product.Name, cartID, item.ID)
	return item, nil
}

// EditItem replaces the quantity and selections of an existing item in
// place, keeping its id and leaving every other item untouched.
func (s *CartService) EditItem(ctx context.Context, cartID, itemID string, qty int, selections []models.CartSelection) (*models.CartItem, error) {
	existing, err := s.cartItemRepo.GetByID(ctx, cartID, itemID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalogRepo.GetByID(ctx, existing.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s for cart item %s: %w", existing.ProductID, itemID, err)
	}

	item, err := s.priceItem(product, qty, selections)
	if err != nil {
		return nil, err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt

	if err := s.cartItemRepo.Update(ctx, cartID, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item %s: %w", itemID, err)
	}
	log.Printf("CartService.EditItem: updated item %s in cart %s", itemID, cartID)
	return item, nil
}

// DuplicateItem clones an existing item's configuration under a fresh
// id. The clone is priced from the stored configuration, not
// re-entered by the shopper.
func (s *CartService) DuplicateItem(ctx context.Context, cartID, itemID string) (*models.CartItem, error) {
	existing, err := s.cartItemRepo.GetByID(ctx, cartID, itemID)
	if err != nil {
		return nil, err
	}

	clone := existing.Clone()
	clone.ID = uuid.New().String()
	now := time.Now()
	clone.CreatedAt = now
	clone.UpdatedAt = now

	if err := s.cartItemRepo.Add(ctx, cartID, &clone); err != nil {
		return nil, fmt.Errorf("failed to duplicate cart item %s: %w", itemID, err)
	}
	log.Printf("CartService.DuplicateItem: cloned item %s as %s in cart %s", itemID, clone.ID, cartID)
	return &clone, nil
}

// RemoveItem deletes the item. Removing an absent id is a no-op,
// mirroring the storefront UI's tolerance for double taps.
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) error {
	if err := s.cartItemRepo.Delete(ctx, cartID, itemID); err != nil {
		return fmt.Errorf("failed to remove cart item %s: %w", itemID, err)
	}
	return nil
}

// GetItem returns one line item by id.
func (s *CartService) GetItem(ctx context.Context, cartID, itemID string) (*models.CartItem, error) {
	return s.cartItemRepo.GetByID(ctx, cartID, itemID)
}

// GetItems returns the cart's line items in insertion order.
func (s *CartService) GetItems(ctx context.Context, cartID string) ([]models.CartItem, error) {
	items, err := s.cartItemRepo.GetByCartID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}
	return items, nil
}

// TotalQuantity sums quantities across the cart, for badge counts.
func (s *CartService) TotalQuantity(ctx context.Context, cartID string) (int, error) {
	return s.cartItemRepo.TotalQuantity(ctx, cartID)
}

// ClearCart empties the cart, the external trigger after checkout.
func (s *CartService) ClearCart(ctx context.Context, cartID string) error {
	if err := s.cartItemRepo.ClearCartItems(ctx, cartID); err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	log.Printf("CartService.ClearCart: cleared cart %s", cartID)
	return nil
}
