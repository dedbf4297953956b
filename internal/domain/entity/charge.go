package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Charge represents a named fee from the catalog (packing, delivery).
// IsTaxable is authoritative here; clients cannot override it.
type Charge struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	IsTaxable bool            `gorm:"default:false" json:"is_taxable"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new charge
func (c *Charge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Charge model
func (Charge) TableName() string {
	return "charges"
}
