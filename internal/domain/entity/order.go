package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a persisted point-of-sale order. It is created only inside the
// commit transaction and never mutated afterwards.
type Order struct {
	ID                    uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StoreID               uuid.UUID          `gorm:"type:uuid;not null;index" json:"store_id"`
	CustomerName          string             `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone         string             `gorm:"size:50" json:"customer_phone,omitempty"`
	AggregatorID          string             `gorm:"size:100" json:"aggregator_id,omitempty"`
	Subtotal              decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	TaxableChargesAmount  decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"applied_charges_amount_taxable"`
	NonTaxableChargesAmnt decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"applied_charges_amount_nontaxable"`
	DiscountAmount        decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"discount_amount"`
	TaxableAmount         decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"taxable_amount"`
	CGSTAmount            decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"cgst_amount"`
	SGSTAmount            decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"sgst_amount"`
	TotalAmount           decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentMethod         enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	AmountReceived        *decimal.Decimal   `gorm:"type:decimal(12,2)" json:"amount_received,omitempty"`
	ChangeGiven           *decimal.Decimal   `gorm:"type:decimal(12,2)" json:"change_given"`
	PaymentStatus         enum.PaymentStatus `gorm:"size:20;not null" json:"payment_status"`
	Notes                 string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
	DeletedAt             gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Store   Store         `gorm:"foreignKey:StoreID" json:"-"`
	Items   []OrderItem   `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Charges []OrderCharge `gorm:"foreignKey:OrderID" json:"applied_charges,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of a persisted order
type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	VariantID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"variant_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Variant Variant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderCharge records one charge applied to a persisted order
type OrderCharge struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ChargeID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"charge_id"`
	AmountCharged decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount_charged"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	Order  Order  `gorm:"foreignKey:OrderID" json:"-"`
	Charge Charge `gorm:"foreignKey:ChargeID" json:"charge,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order charge
func (oc *OrderCharge) BeforeCreate(tx *gorm.DB) error {
	if oc.ID == uuid.Nil {
		oc.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderCharge model
func (OrderCharge) TableName() string {
	return "order_charges"
}
