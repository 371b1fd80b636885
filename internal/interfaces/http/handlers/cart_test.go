// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/domain/cart"
	"github.com/kidsstorytime/storefront-backend/internal/interfaces/http/middleware"
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

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Storefront.CartTTL = time.Hour

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cartService := cart.NewService(&memoryStore{data: map[string][]byte{}}, cfg, logger)
	handler := NewCartHandler(cartService)

	router := gin.New()
	group := router.Group("/cart")
	group.Use(middleware.SessionID())
	group.GET("", handler.GetCart)
	group.POST("/items", handler.AddItem)
	group.DELETE("/items/:storyId", handler.RemoveItem)
	return router
}

func decodeCart(t *testing.T, recorder *httptest.ResponseRecorder) *cart.CartResponse {
	t.Helper()
	var response struct {
		Data cart.CartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return &response.Data
}

func TestGetCartMintsSessionID(t *testing.T) {
	router := newCartRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(middleware.SessionHeader))
	assert.Empty(t, decodeCart(t, recorder).Items)
}

func TestAddItemKeepsSession(t *testing.T) {
	router := newCartRouter(t)

	payload, _ := json.Marshal(gin.H{"story_id": 1, "quantity": 2})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "s1")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "s1", recorder.Header().Get(middleware.SessionHeader))

	// The line survives a follow-up read on the same session.
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(middleware.SessionHeader, "s1")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	cartResponse := decodeCart(t, recorder)
	require.Len(t, cartResponse.Items, 1)
	assert.Equal(t, 2, cartResponse.Items[0].Quantity)
	assert.Equal(t, 2, cartResponse.Totals.TotalItems)
}

func TestAddItemRejectsUnknownStory(t *testing.T) {
	router := newCartRouter(t)

	payload, _ := json.Marshal(gin.H{"story_id": 9999, "quantity": 1})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "s1")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRemoveItem(t *testing.T) {
	router := newCartRouter(t)

	payload, _ := json.Marshal(gin.H{"story_id": 1, "quantity": 1})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "s1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil)
	req.Header.Set(middleware.SessionHeader, "s1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeCart(t, recorder).Items)
}
