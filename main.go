package main

import (
	"net/http"
	"os"

	"github.com/lamargherita/go-storefront/app/cmd"
	"github.com/lamargherita/go-storefront/app/configs"
	"github.com/lamargherita/go-storefront/app/db/seeders"
	"github.com/lamargherita/go-storefront/app/repositories"
	"github.com/lamargherita/go-storefront/app/routes"
	"github.com/lamargherita/go-storefront/app/services"
	"github.com/lamargherita/go-storefront/app/utils/sessions"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	sessionKey, err := configs.SessionKeyFromEnv(env)
	if err != nil {
		log.Fatalf("failed to load session key: %v", err)
	}
	sessionStore := sessions.NewStore(sessionKey)
	log.Println("✅ Session store initialized.")

	menu := seeders.Products()
	catalogRepo := repositories.NewProductRepository(menu)
	cartItemRepo := repositories.NewCartItemRepository()
	log.Printf("✅ Catalog loaded with %d products.", len(menu))

	cartSvc := services.NewCartService(
		catalogRepo,
		cartItemRepo,
		services.NewSelectionValidator(),
		services.NewPriceCalculator(),
	)
	displaySvc := services.NewDisplayService(menu, nil)

	router := routes.NewRouter(catalogRepo, cartSvc, displaySvc, sessionStore)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
