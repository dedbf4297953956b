package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickserve/pos-api/internal/config"
	domainRepo "github.com/quickserve/pos-api/internal/domain/repository"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/response"
	"github.com/quickserve/pos-api/internal/presentation/http/handler"
	"github.com/quickserve/pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Order   *handler.OrderHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// A GET against /orders must answer 405, not 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(response.MethodNotAllowed)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerCatalogRoutes(v1, h)
		registerOrderRoutes(v1, h, deps)
	}

	return router
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	stores := v1.Group("/stores")
	{
		stores.GET("", h.Catalog.ListStores)
		stores.GET("/:id/inventory", h.Catalog.ListStoreInventory)
	}

	v1.GET("/products", h.Catalog.ListProducts)
	v1.GET("/charges", h.Catalog.ListCharges)
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
	}
}
