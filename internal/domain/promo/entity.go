// internal/domain/promo/entity.go
package promo

import (
	"time"
)

// PromoCode represents a percentage discount code managed from the
// admin dashboard. Codes are unique case-insensitively.
type PromoCode struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"not null;size:50;index" json:"code"`
	Percentage float64   `gorm:"not null" json:"percentage"` // In (0, 100]
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	UsageCount int       `gorm:"default:0" json:"usage_count"`
	MaxUsage   *int      `json:"max_usage,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (PromoCode) TableName() string {
	return "promo_codes"
}

// IsExhausted reports whether the code reached its usage cap.
func (p *PromoCode) IsExhausted() bool {
	return p.MaxUsage != nil && p.UsageCount >= *p.MaxUsage
}
