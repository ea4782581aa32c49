package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitinmeharia/rule-engine/internal/auth"
)

const testSecret = "test-secret-key"

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Auth(testSecret))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"client_id": auth.GetClientID(c),
			"role":      auth.GetRole(c),
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     func(t *testing.T) string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "missing_auth_header",
			authHeader:     func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "MISSING_AUTH_HEADER",
		},
		{
			name:           "invalid_auth_format",
			authHeader:     func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_AUTH_FORMAT",
		},
		{
			name:           "malformed_token",
			authHeader:     func(t *testing.T) string { return "Bearer not-a-token" },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name: "expired_token",
			authHeader: func(t *testing.T) string {
				token, err := auth.Generate("test-client", auth.RoleViewer, testSecret, -time.Hour)
				require.NoError(t, err)
				return "Bearer " + token
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "TOKEN_EXPIRED",
		},
		{
			name: "forged_token",
			authHeader: func(t *testing.T) string {
				token, err := auth.Generate("test-client", auth.RoleViewer, "wrong-secret", time.Hour)
				require.NoError(t, err)
				return "Bearer " + token
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name: "valid_token",
			authHeader: func(t *testing.T) string {
				token, err := auth.Generate("test-client", auth.RoleViewer, testSecret, time.Hour)
				require.NoError(t, err)
				return "Bearer " + token
			},
			expectedStatus: http.StatusOK,
		},
	}

	router := newAuthTestRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if header := tt.authHeader(t); header != "" {
				req.Header.Set("Authorization", header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
			} else {
				assert.Equal(t, "test-client", body["client_id"])
				assert.Equal(t, auth.RoleViewer, body["role"])
			}
		})
	}
}

func TestRequireAnyRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		role           string
		allowed        []string
		expectedStatus int
	}{
		{name: "viewer_allowed", role: auth.RoleViewer, allowed: []string{auth.RoleViewer, auth.RoleExecutor}, expectedStatus: http.StatusOK},
		{name: "executor_allowed", role: auth.RoleExecutor, allowed: []string{auth.RoleViewer, auth.RoleExecutor}, expectedStatus: http.StatusOK},
		{name: "admin_bypasses_check", role: auth.RoleAdmin, allowed: []string{auth.RoleExecutor}, expectedStatus: http.StatusOK},
		{name: "viewer_forbidden", role: auth.RoleViewer, allowed: []string{auth.RoleExecutor}, expectedStatus: http.StatusForbidden},
		{name: "no_role_forbidden", role: "", allowed: []string{auth.RoleViewer}, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test",
				func(c *gin.Context) {
					if tt.role != "" {
						c.Set(auth.RoleKey, tt.role)
						c.Set(auth.ClientIDKey, "test-client")
					}
				},
				RequireAnyRole(tt.allowed...),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
