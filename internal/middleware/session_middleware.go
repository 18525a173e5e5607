package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/auth"
)

// SessionAuth returns middleware that resolves the local session cookie into
// a Principal. A missing cookie, bad signature, or expired token answers 401.
// Downstream authorization only ever sees the Principal, so routes gated by
// this middleware and routes gated by FirebaseAuth share the same checks.
func SessionAuth(sessions *auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session cookie is required"})
			return
		}

		claims, err := sessions.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		auth.SetPrincipal(c, auth.Principal{Email: claims.Email, UID: claims.ID})
		c.Next()
	}
}
