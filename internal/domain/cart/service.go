// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/domain/catalog"
)

// Service handles cart business logic
type Service struct {
	store  Store
	ttl    time.Duration
	logger *logrus.Logger
}

// NewService creates a new cart service
func NewService(store Store, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		ttl:    cfg.Storefront.CartTTL,
		logger: logger,
	}
}

// CartResponse represents a cart with its derived totals
type CartResponse struct {
	SessionID string     `json:"session_id"`
	Items     []Line     `json:"items"`
	Totals    CartTotals `json:"totals"`
	IsOpen    bool       `json:"is_open"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	StoryID       int    `json:"story_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	Size          string `json:"size"`
	Color         string `json:"color"`
	PhotoFileName string `json:"photo_file_name"`
	Photo         []byte `json:"-"`
}

// UpdateQuantityRequest represents update cart line request
type UpdateQuantityRequest struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

// Get retrieves the cart for a session
func (s *Service) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(sessionCart), nil
}

// AddItem adds a story to the cart. If a line with the same
// (story id, size, color) already exists its quantity is incremented
// and a newly supplied photo replaces the old one; otherwise a new
// line is appended.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*CartResponse, error) {
	story := catalog.FindByID(req.StoryID)
	if story == nil {
		return nil, fmt.Errorf("story %d not found", req.StoryID)
	}

	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range sessionCart.Items {
		if sessionCart.Items[i].Matches(req.StoryID, req.Size, req.Color) {
			sessionCart.Items[i].Quantity += req.Quantity
			// A newly supplied photo wins over the old one; otherwise
			// the existing photo is preserved.
			if req.PhotoFileName != "" {
				sessionCart.Items[i].PhotoFileName = req.PhotoFileName
				sessionCart.Items[i].Photo = req.Photo
			}
			merged = true
			break
		}
	}

	if !merged {
		sessionCart.Items = append(sessionCart.Items, Line{
			StoryID:       story.ID,
			Name:          story.Name,
			Price:         story.Price,
			OldPrice:      story.OldPrice,
			Image:         story.Image,
			Category:      story.Category,
			AgeRange:      story.AgeRange,
			Quantity:      req.Quantity,
			Size:          req.Size,
			Color:         req.Color,
			PhotoFileName: req.PhotoFileName,
			Photo:         req.Photo,
			AddedAt:       time.Now().UTC(),
		})
	}

	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart), nil
}

// RemoveItem drops the matching line entirely. Removing a line that
// does not exist leaves the cart unchanged.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, storyID int, size, color string) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := sessionCart.Items[:0]
	for _, line := range sessionCart.Items {
		if !line.Matches(storyID, size, color) {
			kept = append(kept, line)
		}
	}
	sessionCart.Items = kept

	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart), nil
}

// UpdateQuantity sets the matching line's quantity. A quantity of zero
// or less removes the line: there is no such thing as a zero-quantity
// cart line.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, storyID int, req *UpdateQuantityRequest) (*CartResponse, error) {
	if req.Quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, storyID, req.Size, req.Color)
	}

	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range sessionCart.Items {
		if sessionCart.Items[i].Matches(storyID, req.Size, req.Color) {
			sessionCart.Items[i].Quantity = req.Quantity
			break
		}
	}

	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart), nil
}

// Clear removes all items from the cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, cartKey(sessionID))
}

// Open marks the cart drawer as open. Items are untouched.
func (s *Service) Open(ctx context.Context, sessionID string) (*CartResponse, error) {
	return s.setOpen(ctx, sessionID, true)
}

// Close marks the cart drawer as closed. Items are untouched.
func (s *Service) Close(ctx context.Context, sessionID string) (*CartResponse, error) {
	return s.setOpen(ctx, sessionID, false)
}

func (s *Service) setOpen(ctx context.Context, sessionID string, open bool) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sessionCart.IsOpen = open
	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart), nil
}

// load reads the session cart from the store. A missing key yields a
// fresh empty cart; a corrupt payload is logged and likewise degrades
// to an empty cart rather than failing the request.
func (s *Service) load(ctx context.Context, sessionID string) (*SessionCart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, err := s.store.Get(ctx, cartKey(sessionID))
	if err == ErrNotFound {
		return s.emptyCart(sessionID), nil
	}
	if err != nil {
		return nil, err
	}

	var sessionCart SessionCart
	if err := json.Unmarshal(data, &sessionCart); err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Discarding corrupt cart payload")
		return s.emptyCart(sessionID), nil
	}

	return &sessionCart, nil
}

// save persists the cart. Line photos carry no JSON tag value, so the
// raw bytes are stripped on marshal and only the file names survive.
func (s *Service) save(ctx context.Context, sessionCart *SessionCart) error {
	sessionCart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(sessionCart)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	return s.store.Set(ctx, cartKey(sessionCart.SessionID), data, s.ttl)
}

func (s *Service) emptyCart(sessionID string) *SessionCart {
	now := time.Now().UTC()
	return &SessionCart{
		SessionID: sessionID,
		Items:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Service) respond(sessionCart *SessionCart) *CartResponse {
	return &CartResponse{
		SessionID: sessionCart.SessionID,
		Items:     sessionCart.Items,
		Totals:    sessionCart.Totals(),
		IsOpen:    sessionCart.IsOpen,
		CreatedAt: sessionCart.CreatedAt,
		UpdatedAt: sessionCart.UpdatedAt,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
