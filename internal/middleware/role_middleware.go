package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/auth"
	"swiftparcel-backend-go/internal/core"
)

// RequireRole returns middleware that loads the principal's user record and
// rejects the request unless its role matches. It runs after one of the
// credential middlewares and is agnostic to which one produced the principal.
func RequireRole(users core.UserService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFrom(c)
		if !ok || principal.Email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), principal.Email)
		if err != nil {
			if errors.Is(err, core.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
