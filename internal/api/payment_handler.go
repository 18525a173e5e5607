package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftparcel-backend-go/internal/auth"
	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/models"
)

// PaymentHandler serves payment recording, history, and intent creation.
type PaymentHandler struct {
	paymentService core.PaymentService
	gateway        core.PaymentGateway
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps core.PaymentService, gateway core.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{paymentService: ps, gateway: gateway}
}

// List handles GET /payments?email= (federated auth, self-only). The email
// query must match the principal; an empty query defaults to the principal.
func (h *PaymentHandler) List(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok || principal.Email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	email := c.Query("email")
	if email == "" {
		email = principal.Email
	}
	if email != principal.Email {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	payments, err := h.paymentService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Record handles POST /payments: mark the parcel paid and append the payment.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// CreatePaymentIntent handles POST /create-payment-intent: delegate to the
// payment gateway and return the client secret.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	clientSecret, err := h.gateway.CreatePaymentIntent(c.Request.Context(), req.AmountInCents)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}
