package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiftparcel-backend-go/internal/auth"
	"swiftparcel-backend-go/internal/config"
	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/middleware"
	"swiftparcel-backend-go/internal/models"
)

// SetupRoutes wires all endpoints. Global middleware (logging, recovery,
// CORS) is applied to the router before this is called.
//
// Single-record routes live under a static segment (/users/profile/:email,
// /riders/status/:id) rather than directly beside their static siblings,
// because gin's routing tree rejects a wildcard and a static segment at the
// same position.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	verifier middleware.TokenVerifier,
	sessions *auth.SessionService,
	userService core.UserService,
	parcelService core.ParcelService,
	riderService core.RiderService,
	paymentService core.PaymentService,
	trackingService core.TrackingService,
	gateway core.PaymentGateway,
) {
	firebaseAuth := middleware.FirebaseAuth(verifier)
	sessionAuth := middleware.SessionAuth(sessions)
	adminOnly := middleware.RequireRole(userService, models.RoleAdmin)
	riderOnly := middleware.RequireRole(userService, models.RoleRider)

	authHandler := NewAuthHandler(userService, sessions, appConfig.CookieSecure)
	userHandler := NewUserHandler(userService)
	parcelHandler := NewParcelHandler(parcelService)
	riderHandler := NewRiderHandler(riderService)
	paymentHandler := NewPaymentHandler(paymentService, gateway)
	trackingHandler := NewTrackingHandler(trackingService)

	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	users := router.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Upsert)
		users.GET("/profile/:email", userHandler.Get)
		users.GET("/role/:email", userHandler.Role)
		users.PATCH("/role/:email", firebaseAuth, adminOnly, userHandler.SetRole)
		users.PATCH("/make-admin/:email", sessionAuth, adminOnly, userHandler.MakeAdmin)
	}

	parcels := router.Group("/parcels")
	{
		parcels.GET("", parcelHandler.List)
		parcels.POST("", parcelHandler.Create)
		parcels.GET("/:id", parcelHandler.Get)
		parcels.PATCH("/:id/assign", firebaseAuth, adminOnly, parcelHandler.Assign)
		parcels.PATCH("/:id/status", firebaseAuth, parcelHandler.UpdateStatus)
		parcels.PATCH("/:id/cashout", firebaseAuth, riderOnly, parcelHandler.Cashout)
		parcels.DELETE("/:id", firebaseAuth, adminOnly, parcelHandler.Delete)
	}
	router.GET("/delivery/status-count", parcelHandler.StatusCounts)

	riders := router.Group("/riders")
	{
		riders.GET("", riderHandler.List)
		riders.POST("", riderHandler.Register)
		riders.GET("/pending", firebaseAuth, adminOnly, riderHandler.Pending)
		riders.GET("/active", firebaseAuth, adminOnly, riderHandler.Active)
		riders.GET("/available", riderHandler.Available)
		riders.PATCH("/status/:id", firebaseAuth, adminOnly, riderHandler.SetStatus)
	}

	router.GET("/payments", firebaseAuth, paymentHandler.List)
	router.POST("/payments", paymentHandler.Record)
	router.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)

	router.GET("/trackings/:trackingId", trackingHandler.History)
	router.POST("/trackings", trackingHandler.Record)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured")
}
