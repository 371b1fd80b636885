// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kidsstorytime/storefront-backend/internal/domain/catalog"
)

// CatalogHandler serves the public storefront catalog
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetStories handles GET /stories
func (h *CatalogHandler) GetStories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": catalog.Stories,
	})
}

// GetSpecialStories handles GET /stories/special
func (h *CatalogHandler) GetSpecialStories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": catalog.SpecialStories,
	})
}

// GetStory handles GET /stories/:id
func (h *CatalogHandler) GetStory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid story ID",
		})
		return
	}

	story := catalog.FindByID(id)
	if story == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Story not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": story,
	})
}
