package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/models"
)

// UserHandler serves the user account endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// List handles GET /users with an optional exact-match email query.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/profile/:email.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Role handles GET /users/role/:email. Unknown emails report the default
// role rather than 404; the dashboard polls this before the profile exists.
func (h *UserHandler) Role(c *gin.Context) {
	role, err := h.userService.RoleOf(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RoleResponse{Role: role})
}

// Upsert handles POST /users: create on first sight, refresh profile fields
// afterwards.
func (h *UserHandler) Upsert(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	user, created, err := h.userService.Upsert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, user)
		return
	}
	c.JSON(http.StatusOK, user)
}

// MakeAdmin handles PATCH /users/make-admin/:email (session auth + admin).
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	if err := h.userService.SetRole(c.Request.Context(), c.Param("email"), models.RoleAdmin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "User promoted to admin"})
}

// SetRole handles PATCH /users/role/:email (federated auth + admin).
func (h *UserHandler) SetRole(c *gin.Context) {
	var req models.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if err := h.userService.SetRole(c.Request.Context(), c.Param("email"), req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Role updated"})
}
