// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kidsstorytime/storefront-backend/internal/domain/cart"
	"github.com/kidsstorytime/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionIDFromContext(c)

	cartResponse, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cartResponse,
	})
}

// AddItem handles POST /cart/items. Accepts JSON, or multipart form
// data when a personalization photo is attached.
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := middleware.GetSessionIDFromContext(c)

	req, err := h.bindAddItem(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.AddItem(c.Request.Context(), sessionID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    cartResponse,
	})
}

func (h *CartHandler) bindAddItem(c *gin.Context) (*cart.AddItemRequest, error) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req cart.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	storyID, err := strconv.Atoi(c.PostForm("story_id"))
	if err != nil {
		return nil, err
	}
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil {
		return nil, err
	}

	req := &cart.AddItemRequest{
		StoryID:  storyID,
		Quantity: quantity,
		Size:     c.PostForm("size"),
		Color:    c.PostForm("color"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		opened, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer opened.Close()

		photo, err := io.ReadAll(opened)
		if err != nil {
			return nil, err
		}
		req.Photo = photo
		req.PhotoFileName = file.Filename
	}

	return req, nil
}

// UpdateItem handles PUT /cart/items/:storyId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := middleware.GetSessionIDFromContext(c)

	storyID, err := strconv.Atoi(c.Param("storyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid story ID",
		})
		return
	}

	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, storyID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cartResponse,
	})
}

// RemoveItem handles DELETE /cart/items/:storyId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := middleware.GetSessionIDFromContext(c)

	storyID, err := strconv.Atoi(c.Param("storyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid story ID",
		})
		return
	}

	cartResponse, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, storyID, c.Query("size"), c.Query("color"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetSessionIDFromContext(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// OpenCart handles POST /cart/open
func (h *CartHandler) OpenCart(c *gin.Context) {
	h.toggleCart(c, true)
}

// CloseCart handles POST /cart/close
func (h *CartHandler) CloseCart(c *gin.Context) {
	h.toggleCart(c, false)
}

func (h *CartHandler) toggleCart(c *gin.Context, open bool) {
	sessionID := middleware.GetSessionIDFromContext(c)

	var (
		cartResponse *cart.CartResponse
		err          error
	)
	if open {
		cartResponse, err = h.cartService.Open(c.Request.Context(), sessionID)
	} else {
		cartResponse, err = h.cartService.Close(c.Request.Context(), sessionID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cartResponse,
	})
}
