package auth

import "github.com/gin-gonic/gin"

// Context keys set by the auth middleware.
const (
	ClientIDKey = "client_id"
	RoleKey     = "role"
	ClaimsKey   = "claims"
)

// GetClientID retrieves the authenticated client ID from the gin context.
func GetClientID(c *gin.Context) string {
	if clientID, exists := c.Get(ClientIDKey); exists {
		if id, ok := clientID.(string); ok {
			return id
		}
	}
	return ""
}

// GetRole retrieves the authenticated role from the gin context.
func GetRole(c *gin.Context) string {
	if role, exists := c.Get(RoleKey); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}

// GetClaims retrieves the full decoded claims from the gin context.
func GetClaims(c *gin.Context) *Claims {
	if claims, exists := c.Get(ClaimsKey); exists {
		if cl, ok := claims.(*Claims); ok {
			return cl
		}
	}
	return nil
}
