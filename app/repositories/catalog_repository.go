package repositories

import (
	"context"

	"github.com/lamargherita/go-storefront/app/models"
)

// ProductRepositoryImpl serves the read-only product catalog. Products
// are supplied once at construction and never change afterwards, so no
// locking is needed.
type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)
}

type productRepository struct {
	products []models.Product
	byID     map[string]*models.Product
}

func NewProductRepository(products []models.Product) ProductRepositoryImpl {
	byID := make(map[string]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &productRepository{products: products, byID: byID}
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	return p.products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, ok := p.byID[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return product, nil
}

func (p *productRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	for _, product := range p.products {
		if product.Category == category {
			out = append(out, product)
		}
	}
	return out, nil
}
