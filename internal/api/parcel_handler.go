package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/auth"
	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/models"
)

// ParcelHandler serves the parcel lifecycle endpoints.
type ParcelHandler struct {
	parcelService core.ParcelService
}

// NewParcelHandler creates a new ParcelHandler.
func NewParcelHandler(ps core.ParcelService) *ParcelHandler {
	return &ParcelHandler{parcelService: ps}
}

// Create handles POST /parcels.
func (h *ParcelHandler) Create(c *gin.Context) {
	var req models.CreateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	parcel, err := h.parcelService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, parcel)
}

// List handles GET /parcels with optional email/payment_status/delivery_status
// filters.
func (h *ParcelHandler) List(c *gin.Context) {
	filter := models.ParcelFilter{
		Email:          c.Query("email"),
		PaymentStatus:  c.Query("payment_status"),
		DeliveryStatus: c.Query("delivery_status"),
	}
	parcels, err := h.parcelService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcels)
}

// Get handles GET /parcels/:id.
func (h *ParcelHandler) Get(c *gin.Context) {
	parcel, err := h.parcelService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}

// StatusCounts handles GET /delivery/status-count.
func (h *ParcelHandler) StatusCounts(c *gin.Context) {
	counts, err := h.parcelService.StatusCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Assign handles PATCH /parcels/:id/assign (admin).
func (h *ParcelHandler) Assign(c *gin.Context) {
	var req models.AssignRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	parcel, err := h.parcelService.AssignRider(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}

// UpdateStatus handles PATCH /parcels/:id/status.
func (h *ParcelHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateParcelStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	parcel, err := h.parcelService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}

// Cashout handles PATCH /parcels/:id/cashout (rider, ownership-checked
// against the principal's email inside the service).
func (h *ParcelHandler) Cashout(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok || principal.Email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	parcel, err := h.parcelService.Cashout(c.Request.Context(), c.Param("id"), principal.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}

// Delete handles DELETE /parcels/:id (admin).
func (h *ParcelHandler) Delete(c *gin.Context) {
	if err := h.parcelService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Parcel deleted"})
}
