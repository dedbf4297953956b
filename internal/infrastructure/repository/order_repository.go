package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/entity"
	domainRepo "github.com/quickserve/pos-api/internal/domain/repository"
	"github.com/quickserve/pos-api/pkg/apperror"
	"github.com/quickserve/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithInventory decrements stock and inserts the order with its
// children inside one transaction. Each line runs a conditional decrement:
//
//	UPDATE inventories SET quantity = quantity - ?
//	WHERE store_id = ? AND variant_id = ? AND quantity >= ?
//
// Zero rows affected means insufficient stock for that variant; the
// transaction rolls back and every earlier decrement is undone. Lines are
// processed in the order submitted, so the first shortfall names the variant.
func (r *orderRepository) CreateWithInventory(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			result := tx.Model(&entity.Inventory{}).
				Where("store_id = ? AND variant_id = ? AND quantity >= ?",
					order.StoreID, item.VariantID, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))

			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperror.NewInsufficientStockError(item.VariantID.String())
			}
		}

		// Children are inserted through the association in the same transaction
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Variant").
		Preload("Charges").
		Preload("Charges.Charge").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}
	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

// ListWithCursor returns orders using cursor-based pagination
func (r *orderRepository) ListWithCursor(ctx context.Context, params *domainRepo.OrderCursorFilterParams) ([]entity.Order, error) {
	var orders []entity.Order

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}
	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	// Fetch limit+1 to detect hasMore
	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Items").
		Order("created_at ASC, id ASC").
		Find(&orders).Error

	return orders, err
}
