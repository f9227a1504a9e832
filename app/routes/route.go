package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/lamargherita/go-storefront/app/handlers"
	"github.com/lamargherita/go-storefront/app/middlewares"
	"github.com/lamargherita/go-storefront/app/repositories"
	"github.com/lamargherita/go-storefront/app/services"
	"github.com/lamargherita/go-storefront/app/utils/renderer"
	"github.com/lamargherita/go-storefront/app/utils/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the catalog and cart API.
func NewRouter(
	catalogRepo repositories.ProductRepositoryImpl,
	cartSvc *services.CartService,
	displaySvc *services.DisplayService,
	sessionStore *sessions.Store,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware)
	router.Use(middlewares.MetricsMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	rnd := renderer.New()
	validate := validator.New()
	productHandler := handlers.NewProductHandler(catalogRepo, rnd)
	cartHandler := handlers.NewCartHandler(catalogRepo, cartSvc, displaySvc, rnd, validate)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.CartSessionMiddleware(sessionStore))

	api.HandleFunc("/products", productHandler.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods(http.MethodGet)

	api.HandleFunc("/cart", cartHandler.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", cartHandler.ClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/count", cartHandler.GetCartCount).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", cartHandler.EditItem).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{id}", cartHandler.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items/{id}/duplicate", cartHandler.DuplicateItem).Methods(http.MethodPost)

	return router
}
