package handlers

import (
	"errors"
	"net/http"

	"or-caseflow-backend/internal/auth"
	apperrors "or-caseflow-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token handles POST /auth/token
// @Summary Exchange the board secret for a token
// @Description Exchange the shared board secret for a short-lived station JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.TokenRequest true "Board secret and station name"
// @Success 200 {object} auth.TokenResponse "Token issued"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Wrong secret"
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.authService.ExchangeSecret(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidBoardSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid board secret"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Validate handles POST /auth/validate
// @Summary Validate a token
// @Description Validate a station JWT and return its claims
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Token is valid"
// @Failure 401 {object} ErrorResponse "Token is invalid"
// @Security BearerAuth
// @Router /auth/validate [post]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "station": claims.Station, "role": claims.Role})
}
