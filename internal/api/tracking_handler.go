package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/models"
)

// TrackingHandler serves the append-only tracking log.
type TrackingHandler struct {
	trackingService core.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(ts core.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: ts}
}

// Record handles POST /trackings. Missing tracking_id or status is a 400.
func (h *TrackingHandler) Record(c *gin.Context) {
	var req models.RecordTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	event, err := h.trackingService.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// History handles GET /trackings/:trackingId: the full event history,
// ordered by timestamp ascending.
func (h *TrackingHandler) History(c *gin.Context) {
	events, err := h.trackingService.History(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
