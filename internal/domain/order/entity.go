// internal/domain/order/entity.go
package order

import (
	"time"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the label is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo enforces the order workflow:
// pending -> processing -> completed, with cancellation allowed from
// any non-terminal state. Terminal states are frozen.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	}
	return false
}

// Order represents a placed storefront order. Orders are created by
// checkout, mutated only through status transitions and never deleted.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CustomerName  string      `gorm:"not null;size:255" json:"customer_name"`
	CustomerEmail string      `gorm:"not null;size:255" json:"customer_email"`
	CustomerPhone string      `gorm:"not null;size:50" json:"customer_phone"`
	Address       string      `gorm:"size:500" json:"address,omitempty"`
	City          string      `gorm:"size:100" json:"city,omitempty"`
	Country       string      `gorm:"size:100" json:"country,omitempty"`
	Comment       string      `gorm:"type:text" json:"comment,omitempty"`
	PromoCode     string      `gorm:"size:50" json:"promo_code,omitempty"`
	ChildName     string      `gorm:"size:100" json:"child_name,omitempty"`
	ChildGender   string      `gorm:"size:20" json:"child_gender,omitempty"`
	Dedication    string      `gorm:"size:100" json:"dedication,omitempty"`
	SubtotalPrice int64       `gorm:"not null" json:"subtotal_price"` // In cents
	DiscountPrice int64       `gorm:"default:0" json:"discount_price"`
	TotalPrice    int64       `gorm:"not null" json:"total_price"`
	Status        OrderStatus `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem is a snapshot of a cart line at order time.
type OrderItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	StoryID       int       `gorm:"not null" json:"story_id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Price         int64     `gorm:"not null" json:"price"` // Price per unit in cents
	Quantity      int       `gorm:"not null" json:"quantity"`
	Category      string    `gorm:"size:100" json:"category,omitempty"`
	Size          string    `gorm:"size:50" json:"size,omitempty"`
	Color         string    `gorm:"size:50" json:"color,omitempty"`
	PhotoFileName string    `gorm:"size:255" json:"photo_file_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// GetFormattedTotal returns total amount as float
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.TotalPrice) / 100
}
