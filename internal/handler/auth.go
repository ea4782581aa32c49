package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nitinmeharia/rule-engine/internal/auth"
)

// AuthHandler handles authentication-related endpoints (dev mode only).
type AuthHandler struct {
	jwtSecret string
	devMode   bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(jwtSecret string, devMode bool) *AuthHandler {
	return &AuthHandler{
		jwtSecret: jwtSecret,
		devMode:   devMode,
	}
}

// DevTokenRequest represents the request for generating a dev token.
type DevTokenRequest struct {
	ClientID  string `json:"client_id"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in"` // Duration in seconds (default: 3600)
}

// DevTokenResponse represents the response containing the generated token.
type DevTokenResponse struct {
	Token     string `json:"token"`
	ClientID  string `json:"client_id"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// GenerateDevToken handles POST /auth/dev/token (only available in DEV_MODE).
func (h *AuthHandler) GenerateDevToken(c *gin.Context) {
	if !h.devMode {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "NOT_FOUND",
			"message": "Endpoint not available",
		})
		return
	}

	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// If no body provided, use defaults
		req = DevTokenRequest{}
	}

	clientID := req.ClientID
	if clientID == "" {
		clientID = uuid.New().String()
	}

	role := req.Role
	if role == "" {
		role = auth.RoleViewer
	}
	if !auth.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_ROLE",
			"message": "Role must be one of: admin, viewer, executor",
		})
		return
	}

	expiresIn := req.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}
	ttl := time.Duration(expiresIn) * time.Second

	token, err := auth.Generate(clientID, role, h.jwtSecret, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, DevTokenResponse{
		Token:     token,
		ClientID:  clientID,
		Role:      role,
		ExpiresAt: time.Now().Add(ttl).UTC().Format(time.RFC3339),
	})
}
