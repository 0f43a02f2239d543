package handlers

import (
	"net/http"

	"vibe-eats/models"

	"github.com/gin-gonic/gin"
)

// Health check endpoint
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Vibe Eats",
		"version": "1.0.0",
	})
}

// GetMenu returns the fixed catalog (public)
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": len(models.Menu),
		"menu":  models.Menu,
	})
}
