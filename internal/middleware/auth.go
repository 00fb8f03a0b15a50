package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	authservice "github.com/medorahq/clinic-api/internal/service/auth"
	"github.com/medorahq/clinic-api/pkg/auth"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
	"github.com/medorahq/clinic-api/pkg/httputil"
)

const contextClaimsKey = "authClaims"

type AuthMiddleware struct {
	authSvc *authservice.Service
}

func NewAuthMiddleware(authSvc *authservice.Service) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Authenticate verifies the bearer token and attaches the decoded claims to
// the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.RespondWithError(c, apperrors.Unauthorized("missing authorization header"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httputil.RespondWithError(c, apperrors.Unauthorized("invalid authorization header format"))
			return
		}

		claims, err := m.authSvc.Verify(parts[1])
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}

		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

// RequireRoles is the single authorization check: the authenticated role
// must appear in the route's allow-list. Routes declare their allow-lists
// in the router's policy table.
func (m *AuthMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			httputil.RespondWithError(c, apperrors.Unauthorized("missing authorization header"))
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			httputil.RespondWithError(c, apperrors.Forbidden())
			return
		}
		c.Next()
	}
}

// ClaimsFromContext returns the claims set by Authenticate.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(contextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
