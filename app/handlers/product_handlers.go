package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lamargherita/go-storefront/app/models"
	"github.com/lamargherita/go-storefront/app/repositories"
	"github.com/lamargherita/go-storefront/app/utils/format"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	catalogRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewProductHandler(catalogRepo repositories.ProductRepositoryImpl, render *render.Render) *ProductHandler {
	return &ProductHandler{catalogRepo: catalogRepo, render: render}
}

type productSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	BasePrice string `json:"base_price"`
	Divisible bool   `json:"divisible"`
}

func summarize(p *models.Product) productSummary {
	return productSummary{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		BasePrice: format.USD(p.BasePrice),
		Divisible: p.Divisible,
	}
}

// ListProducts renders the catalog, optionally filtered by
// ?category=pizzas.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []models.Product
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		products, err = h.catalogRepo.GetByCategory(r.Context(), category)
	} else {
		products, err = h.catalogRepo.GetProducts(r.Context())
	}
	if err != nil {
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load catalog"})
		return
	}

	out := make([]productSummary, 0, len(products))
	for i := range products {
		out = append(out, summarize(&products[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, out)
}

// GetProduct renders one product with its full option-group schema, the
// data the customization UI is driven by.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}
