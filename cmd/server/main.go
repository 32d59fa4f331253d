package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"bandportal/config"
	_ "bandportal/docs"
	"bandportal/internal/adapters/auth"
	delivery "bandportal/internal/delivery/http"
	"bandportal/internal/delivery/http/controllers"
	"bandportal/internal/delivery/http/middleware"
	"bandportal/internal/repository/postgres"
	"bandportal/internal/services"
)

// @title Band Portal API
// @version 1.0
// @description Invitation-gated onboarding and event booking for bands.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	bandRepo := postgres.NewBandRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(0)
	issuer, verifier := auth.NewJWTCodec(cfg.JWTSecret)

	// Services
	identity := services.NewIdentityProvider(userRepo, hasher, issuer, verifier, cfg.JWTExpiry)
	onboarding := services.NewOnboardingService(identity, invitationRepo, bandRepo)
	events := services.NewEventService(eventRepo)
	bookings := services.NewBookingService(bookingRepo, eventRepo)
	portal := services.NewPortalService(bandRepo, events, bookings)
	invitations := services.NewInvitationService(invitationRepo)

	// Controllers
	authController := controllers.NewAuthController(logger, onboarding, identity)
	portalController := controllers.NewPortalController(logger, portal)
	eventController := controllers.NewEventController(logger, events, bandRepo)
	bookingController := controllers.NewBookingController(logger, bookings, bandRepo)
	invitationController := controllers.NewInvitationController(logger, invitations)

	mux := delivery.NewRouter(verifier, authController, portalController, eventController, bookingController, invitationController)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
