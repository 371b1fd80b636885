// internal/domain/promo/service.go
package promo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no promo code matches.
var ErrNotFound = errors.New("promo code not found")

// ErrDuplicateCode is returned when another code already uses the same
// label, ignoring case.
var ErrDuplicateCode = errors.New("promo code already exists")

// ErrNotRedeemable is returned for inactive or exhausted codes.
var ErrNotRedeemable = errors.New("promo code cannot be redeemed")

// Service handles promo code business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new promo service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PromoRequest carries the editable fields of a promo code.
type PromoRequest struct {
	Code       string  `json:"code" binding:"required"`
	Percentage float64 `json:"percentage" binding:"required"`
	IsActive   *bool   `json:"is_active"`
	MaxUsage   *int    `json:"max_usage"`
}

func (r *PromoRequest) validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return fmt.Errorf("code is required")
	}
	if r.Percentage <= 0 || r.Percentage > 100 {
		return fmt.Errorf("percentage must be between 1 and 100")
	}
	if r.MaxUsage != nil && *r.MaxUsage <= 0 {
		return fmt.Errorf("max usage must be a positive number")
	}
	return nil
}

// List returns all promo codes, newest first
func (s *Service) List(ctx context.Context) ([]PromoCode, error) {
	var codes []PromoCode
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to list promo codes: %w", err)
	}
	return codes, nil
}

// Create adds a new promo code
func (s *Service) Create(ctx context.Context, req *PromoRequest) (*PromoCode, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(ctx, req.Code, 0); err != nil {
		return nil, err
	}

	code := &PromoCode{
		Code:       strings.TrimSpace(req.Code),
		Percentage: req.Percentage,
		IsActive:   true,
		MaxUsage:   req.MaxUsage,
	}
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}

	if err := s.db.WithContext(ctx).Create(code).Error; err != nil {
		return nil, fmt.Errorf("failed to create promo code: %w", err)
	}
	return code, nil
}

// Update replaces the editable fields of an existing code
func (s *Service) Update(ctx context.Context, id uint, req *PromoRequest) (*PromoCode, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var code PromoCode
	err := s.db.WithContext(ctx).First(&code, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load promo code %d: %w", id, err)
	}

	if err := s.checkDuplicate(ctx, req.Code, id); err != nil {
		return nil, err
	}

	code.Code = strings.TrimSpace(req.Code)
	code.Percentage = req.Percentage
	code.MaxUsage = req.MaxUsage
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}

	if err := s.db.WithContext(ctx).Save(&code).Error; err != nil {
		return nil, fmt.Errorf("failed to update promo code %d: %w", id, err)
	}
	return &code, nil
}

// Delete removes a promo code. Deleting an absent id is not an error.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&PromoCode{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete promo code %d: %w", id, err)
	}
	return nil
}

// Redeem looks up an active code by its label (case-insensitive),
// computes the discount it grants on the given subtotal and counts the
// usage. The discount is rounded to whole cents.
func (s *Service) Redeem(ctx context.Context, label string, subtotal int64) (int64, *PromoCode, error) {
	var code PromoCode
	err := s.db.WithContext(ctx).
		Where("LOWER(code) = ?", strings.ToLower(strings.TrimSpace(label))).
		First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil, ErrNotFound
	}
	if err != nil {
		return 0, nil, fmt.Errorf("failed to look up promo code: %w", err)
	}

	if !code.IsActive || code.IsExhausted() {
		return 0, nil, ErrNotRedeemable
	}

	discount := decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromFloat(code.Percentage)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	err = s.db.WithContext(ctx).Model(&code).
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count promo usage: %w", err)
	}
	code.UsageCount++

	return discount, &code, nil
}

// checkDuplicate enforces case-insensitive uniqueness of code labels,
// excluding the code being edited.
func (s *Service) checkDuplicate(ctx context.Context, label string, excludeID uint) error {
	var count int64
	query := s.db.WithContext(ctx).Model(&PromoCode{}).
		Where("LOWER(code) = ?", strings.ToLower(strings.TrimSpace(label)))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check promo code uniqueness: %w", err)
	}
	if count > 0 {
		return ErrDuplicateCode
	}
	return nil
}
