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

	"hallbooking/config"
	_ "hallbooking/docs"
	"hallbooking/internal/adapters/auth"
	"hallbooking/internal/adapters/email"
	"hallbooking/internal/adapters/sheets"
	"hallbooking/internal/adapters/telegram"
	httpdelivery "hallbooking/internal/delivery/http"
	"hallbooking/internal/delivery/http/controllers"
	"hallbooking/internal/delivery/http/middleware"
	"hallbooking/internal/repository/postgres"
	"hallbooking/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Hall Booking API
// @version 1.0
// @description Venue booking, CCA attendance, and announcements for hall residents.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	venueRepo := postgres.NewVenueRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	ccaRepo := postgres.NewCCARepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	announcementRepo := postgres.NewAnnouncementRepository(db)

	// Adapters
	jwtCodec := auth.NewJWTCodec(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(10)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	notifier, err := telegram.NewNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, logger)
	if err != nil {
		logger.Error("create telegram notifier", "err", err)
		os.Exit(1)
	}
	sheetFetcher := sheets.NewHTTPFetcher(&http.Client{Timeout: 15 * time.Second})

	// Services
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	venueSvc := services.NewVenueService(venueRepo, bookingRepo, serviceTimeout)
	bookingSvc := services.NewBookingService(bookingRepo, venueRepo, userRepo, emailSvc, notifier, cfg.BookingMinLeadDays, serviceTimeout)
	attendanceSvc := services.NewAttendanceService(ccaRepo, attendanceRepo, sheetFetcher, logger, serviceTimeout)
	announcementSvc := services.NewAnnouncementService(announcementRepo, notifier, serviceTimeout)
	authSvc := services.NewAuthService(userRepo, roleRepo, hasher, jwtCodec, cfg.JWTExpiry, serviceTimeout)

	// HTTP
	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authSvc),
		Venue:        controllers.NewVenueController(logger, venueSvc),
		Booking:      controllers.NewBookingController(logger, bookingSvc),
		Attendance:   controllers.NewAttendanceController(logger, attendanceSvc),
		Announcement: controllers.NewAnnouncementController(logger, announcementSvc),
	}, jwtCodec, logger)

	handler := middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
