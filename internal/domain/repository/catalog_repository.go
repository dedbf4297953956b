package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/entity"
)

// StoreRepository defines the interface for store reference data
type StoreRepository interface {
	List(ctx context.Context) ([]entity.Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
}

// ProductRepository defines the interface for product reference data
type ProductRepository interface {
	// ListActive returns active products with variants and category,
	// ordered by category name then product name.
	ListActive(ctx context.Context) ([]entity.Product, error)
}

// ChargeRepository defines the interface for the charge catalog
type ChargeRepository interface {
	List(ctx context.Context) ([]entity.Charge, error)
	// GetByIDs returns the catalog rows for the given ids in a single query;
	// missing ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Charge, error)
}

// InventoryRepository defines read access to stock levels. Decrements happen
// only inside OrderRepository.CreateWithInventory.
type InventoryRepository interface {
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Inventory, error)
	GetQuantity(ctx context.Context, storeID, variantID uuid.UUID) (int, error)
}
