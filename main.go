// File: courtside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"courtside/config"
	"courtside/cron"
	"courtside/database"
	adminRepoPkg "courtside/database/repository/admin"
	bookingRepoPkg "courtside/database/repository/booking"
	courtRepoPkg "courtside/database/repository/court"
	globalRuleRepoPkg "courtside/database/repository/globalrule"
	venueRepoPkg "courtside/database/repository/venue"
	"courtside/handlers"
	"courtside/middleware"
	"courtside/routes"
	"courtside/services/booking"
	"courtside/services/notification"
	"courtside/services/payments"
	"courtside/services/venue"
	"courtside/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	courtRepo := courtRepoPkg.NewMongoCourtRepo()
	globalRuleRepo := globalRuleRepoPkg.NewMongoGlobalRuleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	notificationService := &notification.DefaultNotificationService{
		Client: asynqClient,
		Logger: logger,
	}

	bookingService := &booking.DefaultBookingService{
		CourtRepo:    courtRepo,
		VenueRepo:    venueRepo,
		GlobalRepo:   globalRuleRepo,
		BookingRepo:  bookingRepo,
		Quotes:       booking.NewRedisQuoteStore(utils.GetQuoteCacheClient()),
		Payments:     payments.NewStripePaymentService(logger),
		Notification: notificationService,
	}

	adminService := &venue.DefaultAdminService{
		VenueRepo:  venueRepo,
		CourtRepo:  courtRepo,
		GlobalRepo: globalRuleRepo,
	}

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Venue:   handlers.NewVenueHandler(adminService),
		Auth:    handlers.NewAuthHandler(adminRepo),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(bookingRepo, venueRepo, notificationService)
	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
		"quote": utils.GetQuoteCacheClient(),
	}, database.MongoClient, time.Minute)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
