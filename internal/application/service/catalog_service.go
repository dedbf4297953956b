package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/quickserve/pos-api/internal/domain/repository"
	"github.com/quickserve/pos-api/pkg/apperror"
)

// CatalogService serves the read-only reference data the order entry screen
// needs: stores, active products with variants, and the charge catalog.
type CatalogService struct {
	storeRepo     repository.StoreRepository
	productRepo   repository.ProductRepository
	chargeRepo    repository.ChargeRepository
	inventoryRepo repository.InventoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	chargeRepo repository.ChargeRepository,
	inventoryRepo repository.InventoryRepository,
) *CatalogService {
	return &CatalogService{
		storeRepo:     storeRepo,
		productRepo:   productRepo,
		chargeRepo:    chargeRepo,
		inventoryRepo: inventoryRepo,
	}
}

// ListStores returns all stores ordered by name
func (s *CatalogService) ListStores(ctx context.Context) ([]entity.Store, error) {
	return s.storeRepo.List(ctx)
}

// ListProducts returns active products with variants, ordered by category
// name then product name
func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListActive(ctx)
}

// ListCharges returns the charge catalog ordered by name
func (s *CatalogService) ListCharges(ctx context.Context) ([]entity.Charge, error) {
	return s.chargeRepo.List(ctx)
}

// ListStoreInventory returns the stock rows for one store
func (s *CatalogService) ListStoreInventory(ctx context.Context, storeID uuid.UUID) ([]entity.Inventory, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return s.inventoryRepo.ListByStore(ctx, storeID)
}
