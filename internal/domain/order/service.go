// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no order matches the given id.
var ErrNotFound = errors.New("order not found")

// ErrInvalidStatus is returned for unknown status labels.
var ErrInvalidStatus = errors.New("invalid order status")

// Service handles order business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new order service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create persists a new order with its item snapshots
func (s *Service) Create(ctx context.Context, o *Order) error {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// List returns all orders, newest first, with their items
func (s *Service) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := s.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Get returns a single order with its items
func (s *Service) Get(ctx context.Context, id uint) (*Order, error) {
	var o Order
	err := s.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return &o, nil
}

// UpdateStatus moves the order to a new status. Only the status field
// is written; customer fields, items and totals are untouched. The
// transition must follow the order workflow.
func (s *Service) UpdateStatus(ctx context.Context, id uint, next OrderStatus) (*Order, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("order %d cannot move from %s to %s", id, o.Status, next)
	}

	err = s.db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).
		Update("status", next).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update order %d status: %w", id, err)
	}

	o.Status = next
	return o, nil
}
