package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/application/service"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListStores handles listing all stores
func (h *CatalogHandler) ListStores(c *gin.Context) {
	stores, err := h.catalogService.ListStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stores retrieved successfully", stores)
}

// ListProducts handles listing active products with variants
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// ListCharges handles listing the charge catalog
func (h *CatalogHandler) ListCharges(c *gin.Context) {
	charges, err := h.catalogService.ListCharges(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Charges retrieved successfully", charges)
}

// ListStoreInventory handles listing stock levels for one store
func (h *CatalogHandler) ListStoreInventory(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	inventory, err := h.catalogService.ListStoreInventory(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory retrieved successfully", inventory)
}
