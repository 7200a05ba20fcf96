package handlers

import (
	"errors"
	"net/http"
	"strings"

	"coden/services/auth"
	"coden/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes staff session endpoints.
type AuthHandler struct {
	sessions auth.SessionService
	logger   *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessions auth.SessionService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validationError", err.Error())
		return
	}

	principal, token, err := h.sessions.Authenticate(c.Request.Context(), input.Identifier, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "authError", "invalid credentials")
		case errors.Is(err, auth.ErrAccountInactive):
			utils.JSONError(c, http.StatusForbidden, "authError", "account is inactive")
		default:
			h.logger.Error("login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "internal", "unexpected error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"principal": principal,
	})
}

// Verify handles GET /api/auth/verify.
func (h *AuthHandler) Verify(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		utils.JSONError(c, http.StatusUnauthorized, "authError", "missing bearer token")
		return
	}

	principal, err := h.sessions.Verify(c.Request.Context(), token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authError", "invalid or expired token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"principal": principal})
}
