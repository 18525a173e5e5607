package auth

import "github.com/gin-gonic/gin"

// principalKey is the gin context key both credential schemes write to.
const principalKey = "principal"

// Principal is the verified identity attached to an authenticated request.
// Both the Firebase middleware and the session-cookie middleware produce this
// same shape, so role and ownership checks never see the credential variant.
type Principal struct {
	Email string
	UID   string
}

// SetPrincipal attaches the verified principal to the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal set by an auth middleware, if any.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
