// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/domain/cart"
	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
	"github.com/kidsstorytime/storefront-backend/internal/domain/promo"
	"github.com/kidsstorytime/storefront-backend/internal/pkg/whatsapp"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ConfirmationSender sends an order confirmation to the customer.
// Sending is best effort: a failure never blocks the order.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}

// Service turns a session cart into a placed order
type Service struct {
	config *config.Config
	carts  *cart.Service
	orders *order.Service
	promos *promo.Service
	mailer ConfirmationSender
	logger *logrus.Logger
}

// NewService creates a new checkout service. The mailer may be nil
// when confirmations are disabled.
func NewService(cfg *config.Config, carts *cart.Service, orders *order.Service, promos *promo.Service, mailer ConfirmationSender, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		carts:  carts,
		orders: orders,
		promos: promos,
		mailer: mailer,
		logger: logger,
	}
}

// PlaceOrderRequest is the checkout form.
type PlaceOrderRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	Comment     string `json:"comment"`
	PromoCode   string `json:"promo_code"`
	ChildName   string `json:"child_name"`
	ChildGender string `json:"child_gender"`
	Dedication  string `json:"dedication"`
}

// ValidationErrors maps form fields to user-facing messages.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	return fmt.Sprintf("invalid checkout form: %s", strings.Join(fields, ", "))
}

// Validate checks the required fields and the email shape, collecting
// one message per offending field.
func (r *PlaceOrderRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(r.FullName) == "" {
		errs["full_name"] = "Le nom est obligatoire"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "L'email est obligatoire"
	} else if !emailPattern.MatchString(r.Email) {
		errs["email"] = "Format d'email invalide"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "Le numéro de téléphone est obligatoire"
	}
	if strings.TrimSpace(r.Address) == "" {
		errs["address"] = "L'adresse est obligatoire"
	}
	if strings.TrimSpace(r.Country) == "" {
		errs["country"] = "Le pays est obligatoire"
	}
	if strings.TrimSpace(r.City) == "" {
		errs["city"] = "La ville est obligatoire"
	}

	return errs
}

// OrderConfirmation is the checkout result handed back to the
// storefront.
type OrderConfirmation struct {
	Order       *order.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// PlaceOrder validates the form, snapshots the session cart into an
// order, applies an optional promo code, clears the cart and returns
// the WhatsApp hand-off link.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, req *PlaceOrderRequest) (*OrderConfirmation, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	cartResponse, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartResponse.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := cartResponse.Totals.TotalPrice

	var discount int64
	if code := strings.TrimSpace(req.PromoCode); code != "" {
		discount, _, err = s.promos.Redeem(ctx, code, subtotal)
		if err != nil {
			return nil, ValidationErrors{"promo_code": "Ce code promo n'est pas valide"}
		}
	}

	o := &order.Order{
		CustomerName:  strings.TrimSpace(req.FullName),
		CustomerEmail: strings.TrimSpace(req.Email),
		CustomerPhone: strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		Country:       strings.TrimSpace(req.Country),
		Comment:       strings.TrimSpace(req.Comment),
		PromoCode:     strings.TrimSpace(req.PromoCode),
		ChildName:     strings.TrimSpace(req.ChildName),
		ChildGender:   strings.TrimSpace(req.ChildGender),
		Dedication:    strings.TrimSpace(req.Dedication),
		SubtotalPrice: subtotal,
		DiscountPrice: discount,
		TotalPrice:    subtotal - discount,
		Status:        order.OrderStatusPending,
		Items:         snapshotItems(cartResponse.Items),
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(ctx, o); err != nil {
			s.logger.WithFields(logrus.Fields{
				"order_id": o.ID,
				"error":    err.Error(),
			}).Warn("Order confirmation email failed")
		}
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to clear cart after checkout")
	}

	return &OrderConfirmation{
		Order:       o,
		WhatsAppURL: whatsapp.BuildOrderLink(s.config.Storefront.WhatsAppPhone, s.config.Storefront.Currency, o),
	}, nil
}

func snapshotItems(lines []cart.Line) []order.OrderItem {
	items := make([]order.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = order.OrderItem{
			StoryID:       line.StoryID,
			Name:          line.Name,
			Price:         line.Price,
			Quantity:      line.Quantity,
			Category:      line.Category,
			Size:          line.Size,
			Color:         line.Color,
			PhotoFileName: line.PhotoFileName,
		}
	}
	return items
}
