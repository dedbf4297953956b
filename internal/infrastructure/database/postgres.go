package database

import (
	"fmt"
	"log"

	"github.com/quickserve/pos-api/internal/config"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Store{},
		&entity.Category{},
		&entity.Product{},
		&entity.Variant{},
		&entity.Charge{},

		// Stock
		&entity.Inventory{},

		// Transaction entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderCharge{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDemoData seeds a small demo catalog (stores, products, charges,
// inventory) so the service is usable out of the box. Each record is
// created only if a row with the same name does not exist yet.
func SeedDemoData(db *gorm.DB) error {
	log.Println("Seeding demo catalog...")

	stores := []entity.Store{
		{Name: "Indiranagar", Address: "100 Feet Road, Indiranagar, Bengaluru"},
		{Name: "Koramangala", Address: "80 Feet Road, Koramangala, Bengaluru"},
	}
	for i := range stores {
		var existing entity.Store
		if err := db.Where("name = ?", stores[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&stores[i]).Error; err != nil {
				return fmt.Errorf("failed to seed store %s: %w", stores[i].Name, err)
			}
		} else {
			stores[i] = existing
		}
	}

	categories := []entity.Category{
		{Name: "Beverages"},
		{Name: "South Indian"},
	}
	for i := range categories {
		var existing entity.Category
		if err := db.Where("name = ?", categories[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&categories[i]).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", categories[i].Name, err)
			}
		} else {
			categories[i] = existing
		}
	}

	products := []entity.Product{
		{
			CategoryID: categories[0].ID,
			Name:       "Filter Coffee",
			IsActive:   true,
			Variants: []entity.Variant{
				{Name: "Regular", Price: decimal.NewFromInt(40)},
				{Name: "Large", Price: decimal.NewFromInt(60)},
			},
		},
		{
			CategoryID: categories[1].ID,
			Name:       "Masala Dosa",
			IsActive:   true,
			Variants: []entity.Variant{
				{Name: "Regular", Price: decimal.NewFromInt(120)},
				{Name: "Ghee Roast", Price: decimal.NewFromInt(150)},
			},
		},
	}
	for i := range products {
		var existing entity.Product
		if err := db.Where("name = ?", products[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&products[i]).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
			}
		} else {
			products[i] = existing
		}
	}

	charges := []entity.Charge{
		{Name: "Packing", Amount: decimal.NewFromInt(10), IsTaxable: true},
		{Name: "Delivery", Amount: decimal.NewFromInt(30), IsTaxable: false},
	}
	for i := range charges {
		var existing entity.Charge
		if err := db.Where("name = ?", charges[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&charges[i]).Error; err != nil {
				return fmt.Errorf("failed to seed charge %s: %w", charges[i].Name, err)
			}
		}
	}

	// Stock every seeded variant at every store
	var variants []entity.Variant
	if err := db.Find(&variants).Error; err != nil {
		return fmt.Errorf("failed to load variants for inventory seed: %w", err)
	}
	for _, store := range stores {
		for _, variant := range variants {
			var existing entity.Inventory
			err := db.Where("store_id = ? AND variant_id = ?", store.ID, variant.ID).
				First(&existing).Error
			if err != nil {
				row := entity.Inventory{StoreID: store.ID, VariantID: variant.ID, Quantity: 100}
				if err := db.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to seed inventory: %w", err)
				}
			}
		}
	}

	log.Println("Demo catalog seeding completed")
	return nil
}
