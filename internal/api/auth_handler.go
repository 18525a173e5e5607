package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/auth"
	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/models"
)

// AuthHandler issues and clears local session cookies.
type AuthHandler struct {
	userService core.UserService
	sessions    *auth.SessionService
	// cookieSecure switches the cookie to Secure + SameSite=None for
	// cross-site deployments; local development uses Lax over plain HTTP.
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService, sessions *auth.SessionService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{userService: us, sessions: sessions, cookieSecure: cookieSecure}
}

// Login handles POST /login. The only credential check is that a user with
// the given email exists; an unknown email answers 401 and sets no cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unknown email"})
			return
		}
		respondError(c, err)
		return
	}

	token, err := h.sessions.Issue(user.Email, user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(auth.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, LoginResponse{Success: true, Token: token})
}

// Logout handles POST /logout. It always succeeds, clearing the cookie
// whether or not one was set.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.cookieSecure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
