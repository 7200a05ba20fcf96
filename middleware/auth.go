package middleware

import (
	"net/http"
	"strings"

	"coden/models"
	"coden/services/auth"
	"coden/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the authenticated principal.
const PrincipalKey = "principal"

// SessionAuth validates the Bearer token and stores the principal in the
// request context.
func SessionAuth(sessions auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "authError", "missing bearer token")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		principal, err := sessions.Verify(c.Request.Context(), tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "authError", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// SessionAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			utils.JSONError(c, http.StatusUnauthorized, "authError", "not authenticated")
			c.Abort()
			return
		}
		if !allowed[principal.Role] {
			utils.JSONError(c, http.StatusForbidden, "authError", "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil.
func GetPrincipal(c *gin.Context) *models.Principal {
	v, exists := c.Get(PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := v.(*models.Principal)
	if !ok {
		return nil
	}
	return principal
}
