// File: mediflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediflow/config"
	"mediflow/cron"
	"mediflow/database"
	bookingsRepo "mediflow/database/repository/bookings"
	eventsRepo "mediflow/database/repository/events"
	rosterRepo "mediflow/database/repository/roster"
	"mediflow/handlers"
	"mediflow/middleware"
	"mediflow/routes"
	"mediflow/services/scheduling"
	"mediflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSlotCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// repositories.
	eventRepo := eventsRepo.NewMongoEventRepo()
	bookingRepo := bookingsRepo.NewMongoBookingRepo()
	practitionerRepo := rosterRepo.NewMongoRosterRepo()

	// scheduling engine.
	slotCache := &scheduling.SlotCache{
		Client: utils.GetSlotCacheClient(),
		TTL:    time.Duration(config.AppConfig.SlotCacheTTLMinutes) * time.Minute,
	}
	engine := &scheduling.DefaultSchedulingEngine{
		Events:    eventRepo,
		Bookings:  bookingRepo,
		Roster:    practitionerRepo,
		Cache:     slotCache,
		Tracker:   scheduling.NewQueryTracker(),
		OpenHour:  config.AppConfig.BusinessOpenHour,
		CloseHour: config.AppConfig.BusinessCloseHour,
	}

	// background slot refresh.
	warmQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	})
	defer warmQueue.Close()
	cron.InitRefreshWorker(engine, slotCache)

	// handlers and routes.
	availabilityHandler := handlers.NewAvailabilityHandler(engine, slotCache, warmQueue)
	routes.RegisterAvailabilityRoutes(router, availabilityHandler)
	routes.RegisterSystemRoutes(router)

	utils.StartHealthMonitor(utils.GetSlotCacheClient(), database.MongoClient)

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
