package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/quickserve/pos-api/internal/domain/enum"
	"github.com/quickserve/pos-api/internal/domain/pricing"
	"github.com/quickserve/pos-api/internal/domain/repository"
	"github.com/quickserve/pos-api/pkg/apperror"
	"github.com/quickserve/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// OrderService owns the order commit pipeline: authoritative charge lookup,
// repricing, payment validation, and the transactional inventory decrement.
type OrderService struct {
	orderRepo  repository.OrderRepository
	chargeRepo repository.ChargeRepository
	storeRepo  repository.StoreRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	chargeRepo repository.ChargeRepository,
	storeRepo repository.StoreRepository,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		chargeRepo: chargeRepo,
		storeRepo:  storeRepo,
	}
}

// OrderItemInput represents an item in an order submission
type OrderItemInput struct {
	VariantID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// AppliedChargeInput represents a charge reference in an order submission
type AppliedChargeInput struct {
	ChargeID      uuid.UUID
	AmountCharged decimal.Decimal
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	StoreID        uuid.UUID
	Items          []OrderItemInput
	Charges        []AppliedChargeInput
	DiscountAmount decimal.Decimal
	PaymentMethod  string
	AmountReceived *decimal.Decimal
	CustomerName   string
	CustomerPhone  string
	AggregatorID   string
	Notes          string
}

// CreateOrder validates, prices and commits an order. The inventory decrement
// and the order insert happen in one transaction inside the repository; on any
// failure nothing is persisted and no stock changes.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if !item.UnitPrice.IsPositive() {
			return nil, apperror.NewBadRequestError("Item unit price must be positive")
		}
	}
	for _, ac := range input.Charges {
		if ac.AmountCharged.IsNegative() {
			return nil, apperror.NewBadRequestError("Charge amount must be non-negative")
		}
	}
	if input.DiscountAmount.IsNegative() {
		return nil, apperror.NewBadRequestError("Discount must be non-negative")
	}

	method := enum.PaymentMethod(input.PaymentMethod)
	if !method.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment method: " + input.PaymentMethod)
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	// Batch fetch referenced charges; taxability comes from the catalog only,
	// never from the client.
	chargeIDs := make([]uuid.UUID, len(input.Charges))
	for i, ac := range input.Charges {
		chargeIDs[i] = ac.ChargeID
	}
	catalogCharges, err := s.chargeRepo.GetByIDs(ctx, chargeIDs)
	if err != nil {
		return nil, err
	}
	chargeMap := make(map[uuid.UUID]*entity.Charge, len(catalogCharges))
	for i := range catalogCharges {
		chargeMap[catalogCharges[i].ID] = &catalogCharges[i]
	}

	priceLines := make([]pricing.LineItem, len(input.Items))
	orderItems := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		priceLines[i] = pricing.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity}
		orderItems[i] = entity.OrderItem{
			VariantID:  item.VariantID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
	}

	chargeLines := make([]pricing.ChargeLine, len(input.Charges))
	orderCharges := make([]entity.OrderCharge, len(input.Charges))
	for i, ac := range input.Charges {
		catalogCharge, exists := chargeMap[ac.ChargeID]
		if !exists {
			return nil, apperror.NewInvalidChargeError(ac.ChargeID.String())
		}
		chargeLines[i] = pricing.ChargeLine{Amount: ac.AmountCharged, IsTaxable: catalogCharge.IsTaxable}
		orderCharges[i] = entity.OrderCharge{
			ChargeID:      ac.ChargeID,
			AmountCharged: ac.AmountCharged,
		}
	}

	quote := pricing.Price(priceLines, chargeLines, input.DiscountAmount)

	paymentStatus := enum.PaymentStatusPaid
	var changeGiven *decimal.Decimal
	if method.IsCash() {
		if input.AmountReceived == nil {
			return nil, apperror.NewBadRequestError("Cash payments require amount_received")
		}
		if input.AmountReceived.LessThan(quote.Total) {
			return nil, apperror.NewInsufficientPaymentError()
		}
		change := input.AmountReceived.Sub(quote.Total).Round(2)
		changeGiven = &change
	}

	order := &entity.Order{
		StoreID:               input.StoreID,
		CustomerName:          input.CustomerName,
		CustomerPhone:         input.CustomerPhone,
		AggregatorID:          input.AggregatorID,
		Subtotal:              quote.Subtotal,
		TaxableChargesAmount:  quote.TaxableCharges,
		NonTaxableChargesAmnt: quote.NonTaxableCharges,
		DiscountAmount:        input.DiscountAmount,
		TaxableAmount:         quote.TaxableAmount,
		CGSTAmount:            quote.CGST,
		SGSTAmount:            quote.SGST,
		TotalAmount:           quote.Total,
		PaymentMethod:         method,
		AmountReceived:        input.AmountReceived,
		ChangeGiven:           changeGiven,
		PaymentStatus:         paymentStatus,
		Notes:                 input.Notes,
		Items:                 orderItems,
		Charges:               orderCharges,
	}

	if err := s.orderRepo.CreateWithInventory(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// GetOrder retrieves an order with its items and charges
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersWithCursor lists orders with cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}
