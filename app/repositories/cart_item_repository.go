package repositories

import (
	"context"
	"sync"

	"github.com/lamargherita/go-storefront/app/models"
)

// CartItemRepositoryImpl is the cart line-item store. All state is
// in-process; persistence of carts is owned by an external
// collaborator, so the implementation keeps an explicit map per cart id
// rather than a database handle.
type CartItemRepositoryImpl interface {
	Add(ctx context.Context, cartID string, item *models.CartItem) error
	Update(ctx context.Context, cartID string, item *models.CartItem) error
	Delete(ctx context.Context, cartID, itemID string) error
	GetByID(ctx context.Context, cartID, itemID string) (*models.CartItem, error)
	GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error)
	TotalQuantity(ctx context.Context, cartID string) (int, error)
	ClearCartItems(ctx context.Context, cartID string) error
	Reset()
}

// CartItemRepository holds every shopper cart of the process, keyed by
// cart id. Items keep insertion order. The repository is constructed
// and injected explicitly; there is no package-level instance.
type CartItemRepository struct {
	mu    sync.RWMutex
	items map[string][]models.CartItem
}

func NewCartItemRepository() CartItemRepositoryImpl {
	return &CartItemRepository{items: make(map[string][]models.CartItem)}
}

func (r *CartItemRepository) Add(ctx context.Context, cartID string, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[cartID] = append(r.items[cartID], item.Clone())
	return nil
}

// Update replaces the stored item with the same id in place, keeping
// its position. Absent ids fail with ErrNoSuchItem.
func (r *CartItemRepository) Update(ctx context.Context, cartID string, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[cartID]
	for i := range list {
		if list[i].ID == item.ID {
			list[i] = item.Clone()
			return nil
		}
	}
	return models.NoSuchItem(item.ID)
}

// Delete is idempotent: removing an absent id is a no-op.
func (r *CartItemRepository) Delete(ctx context.Context, cartID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[cartID]
	for i := range list {
		if list[i].ID == itemID {
			r.items[cartID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *CartItemRepository) GetByID(ctx context.Context, cartID, itemID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items[cartID] {
		if item.ID == itemID {
			out := item.Clone()
			return &out, nil
		}
	}
	return nil, models.NoSuchItem(itemID)
}

func (r *CartItemRepository) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.items[cartID]
	out := make([]models.CartItem, len(list))
	for i, item := range list {
		out[i] = item.Clone()
	}
	return out, nil
}

func (r *CartItemRepository) TotalQuantity(ctx context.Context, cartID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, item := range r.items[cartID] {
		total += item.Quantity
	}
	return total, nil
}

func (r *CartItemRepository) ClearCartItems(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, cartID)
	return nil
}

// Reset drops every cart. Used by tests and the external
// checkout-complete trigger.
func (r *CartItemRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string][]models.CartItem)
}
