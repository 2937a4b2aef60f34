package auth

import (
	"net/http"

	apperrors "duty-roster-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// LoginResponse carries the issued token and the matched soldier
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	SoldierID   uuid.UUID `json:"soldier_id"`
	FullName    string    `json:"full_name"`
}

// Login authenticates by phone number
// @Summary Log in by phone number
// @Description Issue a short-lived access token for a registered soldier's phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Phone number"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Missing phone number"
// @Failure 404 {object} map[string]interface{} "Phone number not registered"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone number is required"})
		return
	}

	token, claims, err := h.service.Login(req.Phone)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "phone number is not registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		SoldierID:   claims.SoldierID,
		FullName:    claims.FullName,
	})
}

// Me returns the authenticated caller's identity
// @Summary Get current user
// @Description Return the identity encoded in the caller's access token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Caller identity"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	authClaims, ok := claims.(*Claims)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid auth context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"soldier_id": authClaims.SoldierID,
		"full_name":  authClaims.FullName,
		"phone":      authClaims.Phone,
	})
}
