package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medorahq/clinic-api/internal/model"
	authservice "github.com/medorahq/clinic-api/internal/service/auth"
	"github.com/medorahq/clinic-api/pkg/auth"
)

func setupAuthRouter(t *testing.T, jwtSvc auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(authservice.NewService(nil, jwtSvc, nil))

	r := gin.New()
	protected := r.Group("", m.Authenticate())
	protected.GET("/whoami", func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username, "role": claims.Role})
	})
	protected.POST("/doctor-only", m.RequireRoles(model.RoleAdmin, model.RoleDoctor), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	r := setupAuthRouter(t, auth.NewJWTService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"missing authorization header"}`, w.Body.String())
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	r := setupAuthRouter(t, auth.NewJWTService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	r := setupAuthRouter(t, auth.NewJWTService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsTokenSignedWithOtherSecret(t *testing.T) {
	r := setupAuthRouter(t, auth.NewJWTService("test-secret", time.Hour))

	other := auth.NewJWTService("other-secret", time.Hour)
	token, err := other.Generate(1, "drsmith", model.RoleDoctor)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateAttachesClaims(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	r := setupAuthRouter(t, jwtSvc)

	token, err := jwtSvc.Generate(7, "frontdesk", model.RoleReception)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"frontdesk","role":"reception"}`, w.Body.String())
}

func TestRequireRoles(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	r := setupAuthRouter(t, jwtSvc)

	tests := []struct {
		name string
		role string
		want int
	}{
		{"doctor allowed", model.RoleDoctor, http.StatusOK},
		{"admin allowed", model.RoleAdmin, http.StatusOK},
		{"reception forbidden", model.RoleReception, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtSvc.Generate(1, "someone", tt.role)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/doctor-only", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
