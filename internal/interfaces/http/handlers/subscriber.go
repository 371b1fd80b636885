// internal/interfaces/http/handlers/subscriber.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kidsstorytime/storefront-backend/internal/domain/subscriber"
	"github.com/kidsstorytime/storefront-backend/internal/pkg/export"
)

// SubscriberHandler handles newsletter endpoints
type SubscriberHandler struct {
	subscriberService *subscriber.Service
}

// NewSubscriberHandler creates a new subscriber handler
func NewSubscriberHandler(subscriberService *subscriber.Service) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberService: subscriberService,
	}
}

// SubscribeRequest carries the newsletter signup form
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// Subscribe handles POST /newsletter/subscribe
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sub, err := h.subscriberService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format d'email invalide",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription successful",
		"data":    sub,
	})
}

// ListSubscribers handles GET /admin/subscribers
func (h *SubscriberHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.subscriberService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list subscribers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": subs,
	})
}

// ExportSubscribers handles GET /admin/subscribers/export
func (h *SubscriberHandler) ExportSubscribers(c *gin.Context) {
	subs, err := h.subscriberService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list subscribers",
		})
		return
	}

	filename := fmt.Sprintf("abonnes_kidstorytime_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")

	if err := export.WriteSubscribers(c.Writer, subs); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
