// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no product matches the given id.
var ErrNotFound = errors.New("product not found")

// ErrSpecialLimit is returned when flagging a product as special would
// exceed the featured cap.
var ErrSpecialLimit = fmt.Errorf("at most %d special stories are allowed", MaxSpecialProducts)

// Service handles admin catalog business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new product service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ProductRequest carries the editable fields of a story product.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       int64    `json:"price" binding:"required"`
	OldPrice    int64    `json:"old_price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	AgeRange    string   `json:"age_range"`
	Description string   `json:"description"`
	InStock     bool     `json:"in_stock"`
	IsSpecial   bool     `json:"is_special"`
}

func (r *ProductRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Price <= 0 {
		return fmt.Errorf("price must be a positive amount")
	}
	if r.OldPrice < 0 {
		return fmt.Errorf("old price cannot be negative")
	}
	return nil
}

// List returns the full admin catalog in insertion order
func (s *Service) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns a single product by id
func (s *Service) Get(ctx context.Context, id uint) (*Product, error) {
	var prod Product
	err := s.db.WithContext(ctx).First(&prod, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return &prod, nil
}

// Create adds a new product to the admin catalog. The id is assigned
// by the database.
func (s *Service) Create(ctx context.Context, req *ProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	if req.IsSpecial {
		if err := s.checkSpecialLimit(ctx, 0); err != nil {
			return nil, err
		}
	}

	prod := s.fromRequest(req)
	if err := s.db.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return prod, nil
}

// Update replaces the catalog entry whose id matches
func (s *Service) Update(ctx context.Context, id uint, req *ProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsSpecial && !existing.IsSpecial {
		if err := s.checkSpecialLimit(ctx, id); err != nil {
			return nil, err
		}
	}

	prod := s.fromRequest(req)
	prod.ID = existing.ID
	prod.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(prod).Error; err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return prod, nil
}

// Delete removes the matching catalog entry. Deleting an id that does
// not exist is not an error.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// checkSpecialLimit enforces the featured cap, excluding the product
// being edited from the count.
func (s *Service) checkSpecialLimit(ctx context.Context, excludeID uint) error {
	var count int64
	query := s.db.WithContext(ctx).Model(&Product{}).Where("is_special = ?", true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count special stories: %w", err)
	}
	if count >= MaxSpecialProducts {
		return ErrSpecialLimit
	}
	return nil
}

func (s *Service) fromRequest(req *ProductRequest) *Product {
	return &Product{
		Name:        req.Name,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		Image:       req.Image,
		Images:      req.Images,
		Category:    req.Category,
		AgeRange:    req.AgeRange,
		Description: req.Description,
		InStock:     req.InStock,
		IsSpecial:   req.IsSpecial,
	}
}
