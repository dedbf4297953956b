package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory tracks quantity on hand for one variant at one store.
// Only the order commit transaction may decrement it, guarded by a
// sufficiency check in the same statement.
type Inventory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_variant" json:"store_id"`
	VariantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_variant" json:"variant_id"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Store   Store   `gorm:"foreignKey:StoreID" json:"-"`
	Variant Variant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// BeforeCreate generates a UUID before creating a new inventory row
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventories"
}
