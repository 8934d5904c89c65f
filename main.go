// File: coachbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachbook/config"
	"coachbook/cron"
	"coachbook/database"
	blockedRepo "coachbook/database/repository/blocked"
	bookingRepo "coachbook/database/repository/booking"
	eventTypeRepo "coachbook/database/repository/eventtype"
	externalRepo "coachbook/database/repository/external"
	trainerRepo "coachbook/database/repository/trainer"
	"coachbook/handlers"
	"coachbook/middleware"
	"coachbook/routes"
	"coachbook/services/availability"
	"coachbook/services/booking"
	"coachbook/services/scheduling"
	"coachbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	engine, err := scheduling.NewEngine(config.AppConfig.SystemTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize scheduling engine: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	trainers := trainerRepo.NewMongoTrainerRepo()
	eventTypes := eventTypeRepo.NewMongoEventTypeRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	blocked := blockedRepo.NewMongoBlockedRepo()
	external := externalRepo.NewMongoExternalBookingRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Trainers:   trainers,
		EventTypes: eventTypes,
		Bookings:   bookings,
		Blocked:    blocked,
		External:   external,
		Engine:     engine,
		Cache:      utils.GetCacheClient(),
		CacheTTL:   time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}
	bookingService := &booking.DefaultBookingService{
		Trainers:   trainers,
		EventTypes: eventTypes,
		Bookings:   bookings,
		Blocked:    blocked,
		External:   external,
		Engine:     engine,
	}

	// Assemble the handler set and register routes.
	handlerSet := &routes.HandlerSet{
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		EventTypes:   handlers.NewEventTypeHandler(eventTypes),
		Trainers:     handlers.NewTrainerHandler(trainers, external),
		Blocked:      handlers.NewBlockedSlotHandler(blocked),
		Bookings:     handlers.NewBookingHandler(bookingService),
	}
	routes.RegisterRoutes(router, handlerSet)

	// Background maintenance.
	cron.InitMaintenanceWorker(blocked, external, engine.Location())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (system timezone %s)...", srv.Addr, engine.SystemTimezone())
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
