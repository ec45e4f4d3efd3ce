package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/constants"
	apierrors "github.com/tracklite/task-tracker-api/internal/errors"
	"github.com/tracklite/task-tracker-api/internal/models"
)

// TokenVerifier verifies a bearer token and returns the caller claims.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// RequireAuth checks the Authorization header for a valid bearer token and
// stores the verified claims in the request context.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCaller, claims)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := GetCaller(c)
		if !exists || claims.Role != models.RoleAdmin {
			apierrors.Forbidden(c, "Admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCaller retrieves the verified caller claims from context
func GetCaller(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(constants.ContextKeyCaller)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func extractBearerToken(header string) string {
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
