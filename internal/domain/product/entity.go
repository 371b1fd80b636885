// internal/domain/product/entity.go
package product

import (
	"time"
)

// MaxSpecialProducts caps how many stories may be flagged as
// special/featured at the same time.
const MaxSpecialProducts = 4

// Product represents an admin-editable story product. This catalog is
// independent from the public storefront fixture: the dashboard edits
// this table only.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Price       int64     `gorm:"not null" json:"price"` // Price in cents
	OldPrice    int64     `json:"old_price"`
	Image       string    `gorm:"size:500" json:"image"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Category    string    `gorm:"size:100;index" json:"category"`
	AgeRange    string    `gorm:"size:50" json:"age_range"`
	Description string    `gorm:"type:text" json:"description"`
	InStock     bool      `gorm:"default:true" json:"in_stock"`
	IsSpecial   bool      `gorm:"default:false;index" json:"is_special"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "admin_products"
}

// GetFormattedPrice returns the price as a float
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}
