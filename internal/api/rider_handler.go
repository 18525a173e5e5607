package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/models"
)

// RiderHandler serves rider registration and admin management endpoints.
type RiderHandler struct {
	riderService core.RiderService
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(rs core.RiderService) *RiderHandler {
	return &RiderHandler{riderService: rs}
}

// Register handles POST /riders.
func (h *RiderHandler) Register(c *gin.Context) {
	var req models.RegisterRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	rider, err := h.riderService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rider)
}

// List handles GET /riders.
func (h *RiderHandler) List(c *gin.Context) {
	h.list(c, models.RiderFilter{})
}

// Pending handles GET /riders/pending (admin).
func (h *RiderHandler) Pending(c *gin.Context) {
	h.list(c, models.RiderFilter{Status: models.RiderPending})
}

// Active handles GET /riders/active (admin).
func (h *RiderHandler) Active(c *gin.Context) {
	h.list(c, models.RiderFilter{Status: models.RiderActive})
}

// Available handles GET /riders/available?district=: active riders in the
// given district.
func (h *RiderHandler) Available(c *gin.Context) {
	h.list(c, models.RiderFilter{Status: models.RiderActive, District: c.Query("district")})
}

func (h *RiderHandler) list(c *gin.Context, filter models.RiderFilter) {
	riders, err := h.riderService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, riders)
}

// SetStatus handles PATCH /riders/status/:id (admin). Activating a rider
// also promotes the linked user to the rider role.
func (h *RiderHandler) SetStatus(c *gin.Context) {
	var req models.SetRiderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	if err := h.riderService.SetStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Rider status updated"})
}
