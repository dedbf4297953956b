package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one submitted order line
type OrderItemRequest struct {
	VariantID uuid.UUID       `json:"variantId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// AppliedChargeRequest is one submitted charge reference
type AppliedChargeRequest struct {
	ChargeID      uuid.UUID       `json:"chargeId" binding:"required"`
	AmountCharged decimal.Decimal `json:"amount_charged"`
}

// CreateOrderRequest is the order submission payload
type CreateOrderRequest struct {
	StoreID        uuid.UUID              `json:"storeId" binding:"required"`
	Items          []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	AppliedCharges []AppliedChargeRequest `json:"applied_charges" binding:"dive"`
	DiscountAmount decimal.Decimal        `json:"discount_amount"`
	PaymentMethod  string                 `json:"payment_method" binding:"required"`
	AmountReceived *decimal.Decimal       `json:"amount_received,omitempty"`
	CustomerName   string                 `json:"customer_name,omitempty"`
	CustomerPhone  string                 `json:"customer_phone,omitempty"`
	AggregatorID   string                 `json:"aggregator_id,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
}

// OrderFilterRequest represents order listing filter parameters
type OrderFilterRequest struct {
	StoreID       string `form:"store_id"`
	PaymentStatus string `form:"payment_status"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
	Cursor        string `form:"cursor"`
	Limit         int    `form:"limit"` // For cursor-based pagination
}
