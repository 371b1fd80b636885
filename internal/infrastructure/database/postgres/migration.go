// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/kidsstorytime/storefront-backend/internal/domain/catalog"
	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
	"github.com/kidsstorytime/storefront-backend/internal/domain/product"
	"github.com/kidsstorytime/storefront-backend/internal/domain/promo"
	"github.com/kidsstorytime/storefront-backend/internal/domain/subscriber"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&product.Product{},
		&order.Order{},
		&order.OrderItem{},
		&promo.PromoCode{},
		&subscriber.Subscriber{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders(customer_email)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_admin_products_special ON admin_products(is_special)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
		}
	}
	return nil
}

// SeedInitialData inserts initial data for development. Safe to run
// repeatedly, each seeder skips rows that already exist.
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := m.seedPromoCodes(); err != nil {
		return fmt.Errorf("failed to seed promo codes: %w", err)
	}
	if err := m.seedOrders(); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedProducts mirrors the built-in catalog into the editable product
// table so the dashboard starts with something to manage.
func (m *Migration) seedProducts() error {
	var count int64
	if err := m.db.Model(&product.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, story := range catalog.All() {
		p := product.Product{
			Name:        story.Name,
			Price:       story.Price,
			OldPrice:    story.OldPrice,
			Image:       story.Image,
			Images:      story.Images,
			Category:    story.Category,
			AgeRange:    story.AgeRange,
			Description: story.Description,
			InStock:     true,
			IsSpecial:   false,
		}
		if err := m.db.Create(&p).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d products from the catalog", len(catalog.All()))
	return nil
}

func (m *Migration) seedPromoCodes() error {
	welcomeMax := 100
	summerMax := 50
	codes := []promo.PromoCode{
		{Code: "WELCOME10", Percentage: 10, IsActive: true, MaxUsage: &welcomeMax},
		{Code: "SUMMER20", Percentage: 20, IsActive: false, MaxUsage: &summerMax},
	}

	for _, code := range codes {
		var existing promo.PromoCode
		result := m.db.Where("LOWER(code) = ?", strings.ToLower(code.Code)).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&code).Error; err != nil {
				return err
			}
			log.Printf("✅ Created promo code: %s", code.Code)
		}
	}
	return nil
}

// seedOrders creates a couple of demo orders so the dashboard has
// something to show on a fresh database.
func (m *Migration) seedOrders() error {
	var count int64
	if err := m.db.Model(&order.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	orders := []order.Order{
		{
			CustomerName:  "Amina Benali",
			CustomerEmail: "amina@example.com",
			CustomerPhone: "+212 6 12 34 56 78",
			Address:       "Rue des Roses, Quartier Gueliz",
			City:          "Marrakech",
			Country:       "Maroc",
			ChildName:     "Yasmine",
			ChildGender:   "fille",
			SubtotalPrice: 12000,
			TotalPrice:    12000,
			Status:        order.OrderStatusPending,
			Items: []order.OrderItem{
				{StoryID: 1, Name: "La Princesse et le Dragon Magique", Price: 12000, Quantity: 1},
			},
		},
		{
			CustomerName:  "Karim El Fassi",
			CustomerEmail: "karim@example.com",
			CustomerPhone: "+212 6 98 76 54 32",
			Address:       "Avenue Hassan II",
			City:          "Casablanca",
			Country:       "Maroc",
			PromoCode:     "WELCOME10",
			ChildName:     "Adam",
			ChildGender:   "garçon",
			SubtotalPrice: 19000,
			DiscountPrice: 1900,
			TotalPrice:    17100,
			Status:        order.OrderStatusProcessing,
			Items: []order.OrderItem{
				{StoryID: 2, Name: "L'Aventure de la Fée des Étoiles", Price: 9500, Quantity: 2},
			},
		},
	}

	for i := range orders {
		if err := m.db.Create(&orders[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d demo orders", len(orders))
	return nil
}
