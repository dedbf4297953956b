package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/entity"
	domainRepo "github.com/quickserve/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) domainRepo.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) List(ctx context.Context) ([]entity.Store, error) {
	var stores []entity.Store
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

// ListActive returns active products sorted by category name then product
// name, so the order-entry screen renders a stable catalog.
func (r *productRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ?", true).
		Preload("Category").Preload("Variants").
		Order("categories.name ASC, products.name ASC").
		Find(&products).Error
	return products, err
}

type chargeRepository struct {
	db *gorm.DB
}

// NewChargeRepository creates a new charge repository
func NewChargeRepository(db *gorm.DB) domainRepo.ChargeRepository {
	return &chargeRepository{db: db}
}

func (r *chargeRepository) List(ctx context.Context) ([]entity.Charge, error) {
	var charges []entity.Charge
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&charges).Error
	return charges, err
}

// GetByIDs retrieves multiple charges by their IDs in a single query
func (r *chargeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Charge, error) {
	if len(ids) == 0 {
		return []entity.Charge{}, nil
	}
	var charges []entity.Charge
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&charges).Error
	return charges, err
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.Inventory, error) {
	var rows []entity.Inventory
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Preload("Variant").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *inventoryRepository) GetQuantity(ctx context.Context, storeID, variantID uuid.UUID) (int, error) {
	var row entity.Inventory
	err := r.db.WithContext(ctx).
		First(&row, "store_id = ? AND variant_id = ?", storeID, variantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return row.Quantity, err
}
