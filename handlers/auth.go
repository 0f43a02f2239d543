package handlers

import (
	"errors"
	"net/http"

	"vibe-eats/models"
	"vibe-eats/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role"`
}

// Login matches email and password against the store. Credentials are
// compared in clear text — this demo never hashes.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.Store.FindByCredentials(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	h.Log.Info("login", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

// Signup creates an account. Role defaults to Customer when omitted; the
// response carries the record without its password, since the client caches
// it in local storage.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.Store.Create(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user"})
		return
	}

	h.Log.Info("signup", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}
