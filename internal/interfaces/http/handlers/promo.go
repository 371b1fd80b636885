// internal/interfaces/http/handlers/promo.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kidsstorytime/storefront-backend/internal/domain/promo"
)

// PromoHandler handles admin promo code endpoints
type PromoHandler struct {
	promoService *promo.Service
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(promoService *promo.Service) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

// ListPromoCodes handles GET /admin/promo-codes
func (h *PromoHandler) ListPromoCodes(c *gin.Context) {
	codes, err := h.promoService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list promo codes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": codes,
	})
}

// CreatePromoCode handles POST /admin/promo-codes
func (h *PromoHandler) CreatePromoCode(c *gin.Context) {
	var req promo.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	code, err := h.promoService.Create(c.Request.Context(), &req)
	if errors.Is(err, promo.ErrDuplicateCode) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "A promo code with this label already exists",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Promo code created",
		"data":    code,
	})
}

// UpdatePromoCode handles PUT /admin/promo-codes/:id
func (h *PromoHandler) UpdatePromoCode(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req promo.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	code, err := h.promoService.Update(c.Request.Context(), id, &req)
	if errors.Is(err, promo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Promo code not found",
		})
		return
	}
	if errors.Is(err, promo.ErrDuplicateCode) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "A promo code with this label already exists",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promo code updated",
		"data":    code,
	})
}

// DeletePromoCode handles DELETE /admin/promo-codes/:id
func (h *PromoHandler) DeletePromoCode(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.promoService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete promo code",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promo code deleted",
	})
}
