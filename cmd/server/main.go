package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"eventbook/config"
	_ "eventbook/docs"
	"eventbook/internal/adapters/analytics"
	"eventbook/internal/adapters/auth"
	"eventbook/internal/adapters/email"
	"eventbook/internal/adapters/revalidate"
	"eventbook/internal/database"
	delivery "eventbook/internal/delivery/http"
	"eventbook/internal/delivery/http/controllers"
	"eventbook/internal/delivery/http/middleware"
	"eventbook/internal/repository/postgres"
	"eventbook/internal/services"
)

const (
	serviceTimeout = 10 * time.Second
	tokenExpiry    = 24 * time.Hour
)

// @title Eventbook API
// @version 1.0
// @description Event listing and RSVP backend.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	// The database handle is established lazily on first use; a cold start
	// serves the health endpoint before the store is reachable.
	db := database.NewManager(database.Open(cfg.DBUrl))

	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())

	revalidator := revalidate.NewHTTPTrigger(nil, cfg.RevalidateURL, cfg.RevalidateSecret)
	tracker := analytics.NewPostHogClient(nil, cfg.PostHogHost, cfg.PostHogAPIKey)
	tokens := auth.NewJWTCodec(cfg.JWTSecret)

	eventSvc := services.NewEventService(eventRepo, revalidator, tracker, logger, serviceTimeout)
	bookingSvc := services.NewBookingService(bookingRepo, eventRepo, emailSvc, tracker, logger, serviceTimeout)
	authSvc := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, tokens, tokenExpiry)

	mux := delivery.NewRouter(
		controllers.NewEventController(logger, eventSvc),
		controllers.NewBookingController(logger, bookingSvc),
		controllers.NewAuthController(logger, authSvc),
		tokens,
	)

	handler := middleware.RequestID(
		middleware.CORS(cfg.AllowedOrigins,
			middleware.LoggingMiddleware(logger, mux)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
