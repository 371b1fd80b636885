// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/interfaces/http/middleware"
	"github.com/kidsstorytime/storefront-backend/internal/pkg/auth"
)

// AuthHandler handles dashboard authentication endpoints
type AuthHandler struct {
	config     *config.Config
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		config:     cfg,
		jwtManager: auth.NewJWTManager(cfg),
	}
}

// LoginRequest represents the dashboard login form
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.Username != h.config.Admin.Username {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	if err := auth.VerifyPassword(req.Password, h.config.Admin.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	token, err := h.jwtManager.GenerateAdminToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue session token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"token":    token,
			"username": req.Username,
		},
	})
}

// Logout handles POST /auth/logout. Sessions are stateless, the
// client discards its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// Me handles GET /auth/me on the protected group
func (h *AuthHandler) Me(c *gin.Context) {
	username, _ := middleware.GetAdminFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"username": username,
			"is_admin": true,
		},
	})
}
