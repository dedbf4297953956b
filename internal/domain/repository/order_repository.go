package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/quickserve/pos-api/internal/domain/enum"
	"github.com/quickserve/pos-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithInventory persists the order with its item and charge children
	// and decrements stock for every line, all inside one transaction. Lines
	// are processed in slice order; the first line whose conditional decrement
	// affects no row aborts the whole transaction with an insufficient-stock
	// error naming that variant, and no decrement survives.
	CreateWithInventory(ctx context.Context, order *entity.Order) error
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListWithCursor(ctx context.Context, params *OrderCursorFilterParams) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	StoreID       *uuid.UUID
	PaymentStatus *enum.PaymentStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

// OrderCursorFilterParams contains cursor-based filtering for order queries
type OrderCursorFilterParams struct {
	Cursor        *pagination.CursorParams
	StoreID       *uuid.UUID
	PaymentStatus *enum.PaymentStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}
