// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/domain/cart"
	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
	"github.com/kidsstorytime/storefront-backend/internal/domain/promo"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, cart.ErrNotFound
	}
	return data, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type stubMailer struct {
	sent []uint
	err  error
}

func (s *stubMailer) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	s.sent = append(s.sent, o.ID)
	return s.err
}

func newTestSetup(t *testing.T) (*Service, *cart.Service, *promo.Service, *stubMailer) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&order.Order{}, &order.OrderItem{}, &promo.PromoCode{}))

	cfg := &config.Config{}
	cfg.Storefront.CartTTL = time.Hour
	cfg.Storefront.WhatsAppPhone = "+212696570164"
	cfg.Storefront.Currency = "DH"

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	carts := cart.NewService(&memoryStore{data: map[string][]byte{}}, cfg, logger)
	orders := order.NewService(db)
	promos := promo.NewService(db)
	mailer := &stubMailer{}

	return NewService(cfg, carts, orders, promos, mailer, logger), carts, promos, mailer
}

func validForm() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		FullName:  "Amina Benali",
		Email:     "amina@example.com",
		Phone:     "+212 6 12 34 56 78",
		City:      "Marrakech",
		Country:   "Maroc",
		Address:   "Rue des Roses, Quartier Gueliz",
		ChildName: "Yasmine",
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	svc, carts, _, mailer := newTestSetup(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{StoryID: 1, Quantity: 2})
	require.NoError(t, err)

	confirmation, err := svc.PlaceOrder(ctx, "s1", validForm())
	require.NoError(t, err)

	o := confirmation.Order
	assert.NotZero(t, o.ID)
	assert.Equal(t, order.OrderStatusPending, o.Status)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, o.SubtotalPrice, o.TotalPrice)
	assert.Contains(t, confirmation.WhatsAppURL, "https://wa.me/+212696570164?text=")

	// Cart is cleared after checkout.
	cartResponse, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cartResponse.Items)

	// Confirmation was sent.
	assert.Equal(t, []uint{o.ID}, mailer.sent)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _, _, _ := newTestSetup(t)

	_, err := svc.PlaceOrder(context.Background(), "s1", validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, carts, _, _ := newTestSetup(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{StoryID: 1, Quantity: 1})
	require.NoError(t, err)

	req := validForm()
	req.FullName = ""
	req.Email = "not-an-email"

	_, err = svc.PlaceOrder(ctx, "s1", req)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Le nom est obligatoire", errs["full_name"])
	assert.Equal(t, "Format d'email invalide", errs["email"])

	// A rejected submission never reaches the order store and the cart
	// is untouched.
	cartResponse, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cartResponse.Items, 1)
}

func TestPlaceOrderAppliesPromoCode(t *testing.T) {
	svc, carts, promos, _ := newTestSetup(t)
	ctx := context.Background()

	_, err := promos.Create(ctx, &promo.PromoRequest{Code: "WELCOME10", Percentage: 10})
	require.NoError(t, err)

	_, err = carts.AddItem(ctx, "s1", &cart.AddItemRequest{StoryID: 1, Quantity: 1})
	require.NoError(t, err)

	req := validForm()
	req.PromoCode = "welcome10"

	confirmation, err := svc.PlaceOrder(ctx, "s1", req)
	require.NoError(t, err)

	o := confirmation.Order
	assert.Equal(t, o.SubtotalPrice/10, o.DiscountPrice)
	assert.Equal(t, o.SubtotalPrice-o.DiscountPrice, o.TotalPrice)
}

func TestPlaceOrderRejectsUnknownPromoCode(t *testing.T) {
	svc, carts, _, _ := newTestSetup(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{StoryID: 1, Quantity: 1})
	require.NoError(t, err)

	req := validForm()
	req.PromoCode = "NOPE"

	_, err = svc.PlaceOrder(ctx, "s1", req)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "promo_code")
}

func TestPlaceOrderSurvivesMailerFailure(t *testing.T) {
	svc, carts, _, mailer := newTestSetup(t)
	mailer.err = assert.AnError
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "s1", &cart.AddItemRequest{StoryID: 1, Quantity: 1})
	require.NoError(t, err)

	confirmation, err := svc.PlaceOrder(ctx, "s1", validForm())
	require.NoError(t, err)
	assert.NotZero(t, confirmation.Order.ID)
}
