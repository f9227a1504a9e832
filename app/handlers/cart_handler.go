package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/lamargherita/go-storefront/app/helpers"
	"github.com/lamargherita/go-storefront/app/models"
	"github.com/lamargherita/go-storefront/app/repositories"
	"github.com/lamargherita/go-storefront/app/services"
	"github.com/lamargherita/go-storefront/app/utils/format"
	"github.com/lamargherita/go-storefront/app/utils/metrics"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type CartHandler struct {
	catalogRepo repositories.ProductRepositoryImpl
	cartSvc     *services.CartService
	displaySvc  *services.DisplayService
	render      *render.Render
	validate    *validator.Validate
}

func NewCartHandler(
	catalogRepo repositories.ProductRepositoryImpl,
	cartSvc *services.CartService,
	displaySvc *services.DisplayService,
	render *render.Render,
	validate *validator.Validate,
) *CartHandler {
	return &CartHandler{
		catalogRepo: catalogRepo,
		cartSvc:     cartSvc,
		displaySvc:  displaySvc,
		render:      render,
		validate:    validate,
	}
}

type selectionPayload struct {
	OptionID     string `json:"option_id" validate:"required"`
	GroupID      string `json:"group_id" validate:"required"`
	Distribution string `json:"distribution" validate:"omitempty,oneof=left whole right"`
}

type addItemRequest struct {
	ProductID  string             `json:"product_id" validate:"required"`
	Quantity   int                `json:"quantity" validate:"required,min=1"`
	Selections []selectionPayload `json:"selections" validate:"omitempty,dive"`
}

type editItemRequest struct {
	Quantity   int                `json:"quantity" validate:"required,min=1"`
	Selections []selectionPayload `json:"selections" validate:"omitempty,dive"`
}

type cartItemResponse struct {
	ID            string                    `json:"id"`
	ProductID     string                    `json:"product_id"`
	Title         string                    `json:"title"`
	Quantity      int                       `json:"quantity"`
	Selections    []services.SelectionGroup `json:"selections"`
	UnitBasePrice string                    `json:"unit_base_price"`
	ComputedTotal string                    `json:"computed_total"`
}

type cartResponse struct {
	Items         []cartItemResponse `json:"items"`
	TotalQuantity int                `json:"total_quantity"`
	CartTotal     string             `json:"cart_total"`
}

func (h *CartHandler) cartID(r *http.Request) string {
	cartID, _ := r.Context().Value(helpers.ContextKeyCartID).(string)
	return cartID
}

func (h *CartHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "invalid request",
				"fields": helpers.FormatValidationErrors(verrs),
			})
			return false
		}
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

// resolveSelections turns raw option references into labelled cart
// selections using the product's canonical option data.
func resolveSelections(product *models.Product, payloads []selectionPayload) ([]models.CartSelection, error) {
	lookup := services.NewSelectionLookup(product)
	selections := make([]models.CartSelection, 0, len(payloads))
	for _, p := range payloads {
		dist, err := models.ParseDistribution(p.Distribution)
		if err != nil {
			return nil, err
		}
		sel, err := lookup.Resolve(p.GroupID, p.OptionID, dist)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	return selections, nil
}

func (h *CartHandler) writeDomainError(w http.ResponseWriter, err error) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, ve := range verrs {
			metrics.ValidationFailuresTotal.WithLabelValues(string(ve.Code)).Inc()
		}
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "selections failed validation",
			"errors": verrs,
		})
	case errors.Is(err, models.ErrNoSuchItem), errors.Is(err, models.ErrProductNotFound):
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidQuantity):
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Printf("CartHandler: internal error: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *CartHandler) itemResponse(item *models.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:            item.ID,
		ProductID:     item.ProductID,
		Title:         h.displaySvc.LineTitle(item),
		Quantity:      item.Quantity,
		Selections:    h.displaySvc.GroupedSelections(item),
		UnitBasePrice: format.USD(item.UnitBasePrice),
		ComputedTotal: format.USD(item.ComputedTotal),
	}
}

// GetCart renders the full cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := h.cartID(r)
	items, err := h.cartSvc.GetItems(r.Context(), cartID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := cartResponse{Items: make([]cartItemResponse, 0, len(items))}
	total := decimal.Zero
	for i := range items {
		resp.Items = append(resp.Items, h.itemResponse(&items[i]))
		resp.TotalQuantity += items[i].Quantity
		total = total.Add(items[i].ComputedTotal)
	}
	resp.CartTotal = format.USD(total)
	_ = h.render.JSON(w, http.StatusOK, resp)
}

// GetCartCount renders the badge count.
func (h *CartHandler) GetCartCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.cartSvc.TotalQuantity(r.Context(), h.cartID(r))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]int{"count": count})
}

// AddItem commits a new validated line item.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.catalogRepo.GetByID(r.Context(), req.ProductID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	selections, err := resolveSelections(product, req.Selections)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	item, err := h.cartSvc.AddItem(r.Context(), h.cartID(r), req.ProductID, req.Quantity, selections)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	metrics.CartCommitsTotal.WithLabelValues("add").Inc()
	_ = h.render.JSON(w, http.StatusCreated, h.itemResponse(item))
}

// EditItem replaces an existing item's quantity and selections.
func (h *CartHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]
	cartID := h.cartID(r)

	var req editItemRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	existing, err := h.cartSvc.GetItem(r.Context(), cartID, itemID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	product, err := h.catalogRepo.GetByID(r.Context(), existing.ProductID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	selections, err := resolveSelections(product, req.Selections)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	item, err := h.cartSvc.EditItem(r.Context(), cartID, itemID, req.Quantity, selections)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	metrics.CartCommitsTotal.WithLabelValues("edit").Inc()
	_ = h.render.JSON(w, http.StatusOK, h.itemResponse(item))
}

// DuplicateItem clones a line item under a fresh id.
func (h *CartHandler) DuplicateItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]
	item, err := h.cartSvc.DuplicateItem(r.Context(), h.cartID(r), itemID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	metrics.CartCommitsTotal.WithLabelValues("duplicate").Inc()
	_ = h.render.JSON(w, http.StatusCreated, h.itemResponse(item))
}

// RemoveItem deletes a line item; absent ids succeed silently.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]
	if err := h.cartSvc.RemoveItem(r.Context(), h.cartID(r), itemID); err != nil {
		h.writeDomainError(w, err)
		return
	}
	metrics.CartCommitsTotal.WithLabelValues("remove").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// ClearCart empties the cart, e.g. after the external checkout flow
// completes.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartSvc.ClearCart(r.Context(), h.cartID(r)); err != nil {
		h.writeDomainError(w, err)
		return
	}
	metrics.CartCommitsTotal.WithLabelValues("clear").Inc()
	w.WriteHeader(http.StatusNoContent)
}
