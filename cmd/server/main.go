package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/adapter"
	"github.com/callygym/service-gym/internal/application"
	"github.com/callygym/service-gym/internal/config"
	"github.com/callygym/service-gym/internal/database"
	"github.com/callygym/service-gym/internal/handler"
	"github.com/callygym/service-gym/internal/logger"
	"github.com/callygym/service-gym/internal/mailer"
	"github.com/callygym/service-gym/internal/middleware"
	"github.com/callygym/service-gym/internal/repository"
	"github.com/callygym/service-gym/internal/webhook"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, "service-gym")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting service-gym",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations. Production relies on the provisioning
	// endpoint instead of auto-migrate.
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.BookingModel{}, &repository.ContactModel{}, &repository.FreeTrialModel{}, &repository.MemberModel{}); err != nil {
			zapLogger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		zapLogger.Info("database migration completed (dev auto-migrate)")
	}

	// Initialize Paystack adapter (mock when no secret key is configured)
	var paystackAdapter adapter.PaystackAdapter
	if cfg.PaystackConfig.SecretKey != "" {
		paystackAdapter = adapter.NewHTTPPaystackAdapter(cfg.PaystackConfig.BaseURL, cfg.PaystackConfig.SecretKey, zapLogger)
	} else {
		zapLogger.Warn("PAYSTACK_SECRET_KEY not set, using mock payment adapter")
		paystackAdapter = adapter.NewMockPaystackAdapter(zapLogger)
	}

	// Initialize mailer
	smtpMailer, err := mailer.NewSMTPMailer(cfg.SMTPConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize mailer", zap.Error(err))
	}

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)
	freeTrialRepo := repository.NewFreeTrialRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// Initialize application services
	notifyEmail := cfg.SMTPConfig.NotifyEmail
	bookingService := application.NewBookingService(bookingRepo, smtpMailer, notifyEmail, zapLogger)
	contactService := application.NewContactService(contactRepo, smtpMailer, notifyEmail, zapLogger)
	freeTrialService := application.NewFreeTrialService(freeTrialRepo, smtpMailer, notifyEmail, zapLogger)
	paymentService := application.NewPaymentService(paystackAdapter, memberRepo, zapLogger)

	verifier := webhook.NewVerifier(cfg.PaystackConfig.SecretKey)
	webhookService := application.NewWebhookService(verifier, bookingService, zapLogger)

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	contactHandler := handler.NewContactHandler(contactService)
	freeTrialHandler := handler.NewFreeTrialHandler(freeTrialService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	webhookHandler := handler.NewWebhookHandler(webhookService, zapLogger)
	opsHandler := handler.NewOpsHandler(repository.NewSchemaProvisioner(db), db, zapLogger)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Register routes at the root, matching the paths the web client calls
	root := router.Group("")
	bookingHandler.RegisterRoutes(root)
	contactHandler.RegisterRoutes(root)
	freeTrialHandler.RegisterRoutes(root)
	paymentHandler.RegisterRoutes(root, middleware.AuthMiddleware(cfg.JWTSecret))
	webhookHandler.RegisterRoutes(root)
	opsHandler.RegisterRoutes(root)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down service-gym...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("service-gym stopped")
}
