package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"vibe-eats/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListUsers returns the raw user array, password field included. The admin
// panel's click-to-reveal depends on it, so no redaction here.
func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.List())
}

// UpdateUser shallow-merges the supplied fields over the record. Fields not
// present in the body are preserved.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	var patch store.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	h.Log.Info("user updated", zap.Int64("id", user.ID))
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes the record. A missing id still reports success — the
// demo never distinguished "not found" on delete.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	deleted := h.Store.Delete(id)

	h.Log.Info("user deleted", zap.Int64("id", deleted))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "id": deleted})
}
