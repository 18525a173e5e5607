package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"swiftparcel-backend-go/internal/api"
	"swiftparcel-backend-go/internal/auth"
	"swiftparcel-backend-go/internal/cache"
	"swiftparcel-backend-go/internal/config"
	"swiftparcel-backend-go/internal/core"
	"swiftparcel-backend-go/internal/db"
	"swiftparcel-backend-go/internal/middleware"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// .env is optional; real deployments configure through the environment.
	if err := godotenv.Load(); err == nil {
		zapLogger.Info(".env file loaded")
	}

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	clients, err := db.InitFirebase(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	defer clients.Close()
	zapLogger.Info("Firebase Admin SDK initialized", zap.String("project", appConfig.FirebaseProjectID))

	// Status-count cache is optional; without Redis every read hits Firestore.
	var countCache cache.Cache
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(initCtx, appConfig.RedisAddr, appConfig.RedisPassword)
		if err != nil {
			zapLogger.Warn("Redis unavailable, status-count cache disabled", zap.Error(err))
		} else {
			countCache = redisCache
			zapLogger.Info("Redis cache connected", zap.String("addr", appConfig.RedisAddr))
		}
	}

	userRepo := db.NewFirestoreUserRepository(clients.Firestore)
	parcelRepo := db.NewFirestoreParcelRepository(clients.Firestore)
	riderRepo := db.NewFirestoreRiderRepository(clients.Firestore)
	paymentRepo := db.NewFirestorePaymentRepository(clients.Firestore)
	trackingRepo := db.NewFirestoreTrackingRepository(clients.Firestore)

	userService := core.NewUserService(userRepo)
	parcelService := core.NewParcelService(parcelRepo, countCache, zapLogger)
	riderService := core.NewRiderService(riderRepo, userRepo, zapLogger)
	paymentService := core.NewPaymentService(paymentRepo, parcelRepo)
	trackingService := core.NewTrackingService(trackingRepo)
	gateway := core.NewStripeGateway(appConfig.StripeSecretKey)
	sessions := auth.NewSessionService(appConfig.JWTSecret)

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.Recovery(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORS(appConfig))
	} else {
		zapLogger.Warn("CLIENT_URL not configured, CORS middleware skipped")
	}

	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		clients.Auth,
		sessions,
		userService,
		parcelService,
		riderService,
		paymentService,
		trackingService,
		gateway,
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", httpServer.Addr), zap.String("gin_mode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("forced shutdown", zap.Error(err))
	}
	zapLogger.Info("server exited gracefully")
}
