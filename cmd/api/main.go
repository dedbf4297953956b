package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/quickserve/pos-api/internal/application/service"
	"github.com/quickserve/pos-api/internal/config"
	"github.com/quickserve/pos-api/internal/infrastructure/database"
	"github.com/quickserve/pos-api/internal/infrastructure/repository"
	"github.com/quickserve/pos-api/internal/presentation/http/handler"
	"github.com/quickserve/pos-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo catalog if enabled
	if cfg.App.SeedDemo {
		if err := database.SeedDemoData(db); err != nil {
			log.Printf("Warning: Failed to seed demo catalog: %v", err)
		}
	}

	// Initialize repositories
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	chargeRepo := repository.NewChargeRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(storeRepo, productRepo, chargeRepo, inventoryRepo)
	orderService := service.NewOrderService(orderRepo, chargeRepo, storeRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService),
		Order:   handler.NewOrderHandler(orderService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
