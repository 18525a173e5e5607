package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/core"
)

// respondError maps a service error onto an HTTP status. Domain errors keep
// their message; anything unrecognized is a store failure and surfaces as a
// generic 500 so internals stay out of responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrParcelNotFound),
		errors.Is(err, core.ErrRiderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrInvalidRole),
		errors.Is(err, core.ErrInvalidDeliveryStatus),
		errors.Is(err, core.ErrInvalidRiderStatus),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrMissingField),
		errors.Is(err, core.ErrAlreadyCashedOut),
		errors.Is(err, core.ErrNotYetDelivered),
		errors.Is(err, core.ErrAlreadyPaid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
