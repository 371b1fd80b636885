// internal/interfaces/http/handlers/auth_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsstorytime/storefront-backend/internal/config"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "storefront"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "kidsstory2025"
	return cfg
}

func performLogin(t *testing.T, cfg *config.Config, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginIssuesToken(t *testing.T) {
	recorder := performLogin(t, authTestConfig(), gin.H{
		"username": "admin",
		"password": "kidsstory2025",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Data struct {
			Token    string `json:"token"`
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.Token)
	assert.Equal(t, "admin", response.Data.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	recorder := performLogin(t, authTestConfig(), gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginRejectsUnknownUsername(t *testing.T) {
	recorder := performLogin(t, authTestConfig(), gin.H{
		"username": "root",
		"password": "kidsstory2025",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginRequiresBothFields(t *testing.T) {
	recorder := performLogin(t, authTestConfig(), gin.H{
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
