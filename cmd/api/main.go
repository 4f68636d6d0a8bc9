package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/config"
	"github.com/capturemoments/capture-api/internal/domain/auth"
	"github.com/capturemoments/capture-api/internal/domain/booking"
	"github.com/capturemoments/capture-api/internal/domain/dashboard"
	"github.com/capturemoments/capture-api/internal/domain/feedback"
	"github.com/capturemoments/capture-api/internal/domain/gallery"
	"github.com/capturemoments/capture-api/internal/domain/notification"
	"github.com/capturemoments/capture-api/internal/domain/payment"
	"github.com/capturemoments/capture-api/internal/domain/photographer"
	"github.com/capturemoments/capture-api/internal/domain/pricing"
	"github.com/capturemoments/capture-api/internal/domain/review"
	"github.com/capturemoments/capture-api/internal/domain/user"
	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/alert"
	"github.com/capturemoments/capture-api/internal/pkg/database"
	"github.com/capturemoments/capture-api/internal/pkg/email"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
	pkgresponse "github.com/capturemoments/capture-api/internal/pkg/response"
	"github.com/capturemoments/capture-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Capture Moments API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redisClient)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	ctx := context.Background()

	photoStorage, err := storage.NewS3(ctx, storage.S3Config{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		PublicURL:       cfg.S3PublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create S3 storage")
	}

	alertPublisher, err := alert.NewSNS(ctx, alert.SNSConfig{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		TopicARN:        cfg.SNSTopicARN,
		Enabled:         cfg.SNSEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create SNS publisher")
	}

	emailSender := email.NewService(email.Config{
		APIKey:     cfg.SendGridAPIKey,
		SenderName: cfg.SenderName,
		SenderMail: cfg.SenderEmail,
		Enabled:    cfg.EmailEnabled,
	})

	stripeClient := payment.NewStripeClient(cfg.StripeSecretKey)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	photographerRepo := photographer.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	reviewRepo := review.NewRepository(db)
	feedbackRepo := feedback.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	galleryRepo := gallery.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	// ---------- WebSocket hub ----------
	hub := notification.NewHub(redisClient)
	go hub.Run()

	// ---------- Services ----------
	notificationService := notification.NewService(notificationRepo, hub, userRepo, emailSender)
	authService := auth.NewService(userRepo, jwtService)
	photographerService := photographer.NewService(photographerRepo)
	bookingService := booking.NewService(bookingRepo, notificationService)
	pricingService := pricing.NewService(redisClient, cfg.QuoteCacheTTL)
	reviewService := review.NewService(reviewRepo, bookingRepo, photographerRepo)
	feedbackService := feedback.NewService(feedbackRepo, alertPublisher)
	galleryService := gallery.NewService(galleryRepo, photoStorage)
	paymentService := payment.NewService(paymentRepo, bookingRepo, stripeClient)
	dashboardService := dashboard.NewService(bookingRepo, userRepo, reviewRepo, feedbackRepo)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	photographerHandler := photographer.NewHandler(photographerService)
	bookingHandler := booking.NewHandler(bookingService)
	pricingHandler := pricing.NewHandler(pricingService, photographerService)
	reviewHandler := review.NewHandler(reviewService)
	feedbackHandler := feedback.NewHandler(feedbackService)
	notificationHandler := notification.NewHandler(notificationService, hub)
	galleryHandler := gallery.NewHandler(galleryService)
	paymentHandler := payment.NewHandler(paymentService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", auth.Routes(authHandler, jwtService))
		r.Mount("/photographers", photographer.Routes(photographerHandler, jwtService, bookingHandler.GetSlots))
		r.Mount("/bookings", booking.Routes(bookingHandler, jwtService))
		r.Mount("/pricing", pricing.Routes(pricingHandler))
		r.Mount("/reviews", review.Routes(reviewHandler, jwtService))
		r.Mount("/feedback", feedback.Routes(feedbackHandler, jwtService))
		r.Mount("/notifications", notification.Routes(notificationHandler, jwtService))
		r.Mount("/gallery", gallery.Routes(galleryHandler, jwtService))
		r.Mount("/payments", payment.Routes(paymentHandler, jwtService))
		r.Mount("/admin", dashboard.Routes(dashboardHandler, jwtService))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	hub.Shutdown()

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
