package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nitinmeharia/rule-engine/internal/auth"
)

// Auth validates the Bearer token on incoming requests and stashes the
// decoded claims in the gin context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "MISSING_AUTH_HEADER",
				"message": "Authorization header required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "INVALID_AUTH_FORMAT",
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		claims, err := auth.Verify(parts[1], jwtSecret)
		if err != nil {
			log.Warn().
				Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Msg("token verification failed")

			message := "Invalid token"
			code := "INVALID_TOKEN"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token has expired"
				code = "TOKEN_EXPIRED"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    code,
				"message": message,
			})
			return
		}

		if claims.ClientID == "" || claims.Role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "MISSING_REQUIRED_CLAIMS",
				"message": "Token missing clientId or role claim",
			})
			return
		}

		c.Set(auth.ClientIDKey, claims.ClientID)
		c.Set(auth.RoleKey, claims.Role)
		c.Set(auth.ClaimsKey, claims)

		c.Next()
	}
}

// RequireAnyRole allows the request through when the authenticated role
// matches one of the given roles. Admin passes every check.
func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := auth.GetRole(c)
		if role == auth.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		log.Warn().
			Str("path", c.Request.URL.Path).
			Str("client_id", auth.GetClientID(c)).
			Str("role", role).
			Strs("required_roles", roles).
			Msg("insufficient permissions")

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    "INSUFFICIENT_PERMISSIONS",
			"message": "Insufficient permissions",
		})
	}
}

// RequireRole allows the request through only for the given role (or admin).
func RequireRole(role string) gin.HandlerFunc {
	return RequireAnyRole(role)
}
