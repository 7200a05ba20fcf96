package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coden/config"
	"coden/cron"
	"coden/database"
	areaRepoPkg "coden/database/repository/area"
	bookingRepoPkg "coden/database/repository/booking"
	customerRepoPkg "coden/database/repository/customer"
	notificationRepoPkg "coden/database/repository/notification"
	staffRepoPkg "coden/database/repository/staff"
	"coden/handlers"
	"coden/middleware"
	"coden/routes"
	"coden/services/auth"
	"coden/services/booking"
	"coden/services/messaging"
	"coden/services/network"
	"coden/services/payment"
	"coden/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	areaRepo := areaRepoPkg.NewMongoAreaRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// collaborators.
	networkProvider := network.NewMikrotikProvider(logger)
	paymentProvider := payment.NewXenditProvider(logger)
	messagingProvider := messaging.NewFonnteProvider(logger)

	notifier := &messaging.DefaultNotificationService{
		Provider: messagingProvider,
		Repo:     notificationRepo,
		Logger:   logger,
	}

	bookingService := &booking.DefaultBookingService{
		BookingRepo:  bookingRepo,
		AreaRepo:     areaRepo,
		CustomerRepo: customerRepo,
		Network:      networkProvider,
		Payment:      paymentProvider,
		Notifier:     notifier,
		Logger:       logger,
	}

	sessionService := &auth.DefaultSessionService{
		Repo:      staffRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	cardHandler := payment.NewCardHandler(logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionService,
		Booking:  handlers.NewBookingHandler(bookingService, cardHandler, logger),
		Auth:     handlers.NewAuthHandler(sessionService, logger),
		Area:     handlers.NewAreaHandler(areaRepo, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background lifecycle sweeps.
	worker := &cron.Worker{
		Bookings:  bookingService,
		Repo:      bookingRepo,
		Customers: customerRepo,
		Notifier:  notifier,
		Logger:    logger,
	}
	worker.Start()

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
