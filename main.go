package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellnest/config"
	"wellnest/cron"
	"wellnest/database"
	bookingRepo "wellnest/database/repository/booking"
	serviceRepo "wellnest/database/repository/service"
	"wellnest/handlers"
	"wellnest/middleware"
	"wellnest/routes"
	"wellnest/services/booking"
	"wellnest/services/notification"
	"wellnest/services/tasks"
	"wellnest/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	services := serviceRepo.NewMongoServiceRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := services.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create service indexes: %v", err)
	}

	// notification dispatch (enqueue side) and delivery (worker side).
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueue,
	})
	defer asynqClient.Close()
	dispatcher := tasks.NewAsynqDispatcher(asynqClient)

	notificationService := &notification.DefaultNotificationService{
		Email:     notification.NewSMTPSender(config.AppConfig.SMTPHost, config.AppConfig.SMTPPort, config.AppConfig.MailFrom),
		SMS:       smsSender(),
		Templates: services,
	}
	cron.InitNotificationWorker(notificationService)

	// booking engine.
	settings, err := booking.SettingsFromConfig(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid booking settings: %v", err)
	}
	engine := &booking.DefaultBookingEngine{
		Repo:        bookings,
		ServiceRepo: services,
		Notifier:    dispatcher,
		Settings:    settings,
	}

	bookingHandler := handlers.NewBookingHandler(engine, services, logger)
	servicesHandler := handlers.NewServicesHandler(services, utils.GetCacheClient(), logger)

	routes.RegisterRoutes(router, bookingHandler, servicesHandler)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

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
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Errorf("main: error closing mongo connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// smsSender picks the webhook gateway when configured, a no-op otherwise.
func smsSender() notification.SMSSender {
	if config.AppConfig.SMSWebhook != "" {
		return notification.NewWebhookSMSSender(config.AppConfig.SMSWebhook, config.AppConfig.SMSToken)
	}
	return notification.NoopSMSSender{}
}
