package routes

import (
	"net/http"
	"time"

	"coachbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerSet bundles the HTTP handlers the router wires up.
type HandlerSet struct {
	Availability *handlers.AvailabilityHandler
	EventTypes   *handlers.EventTypeHandler
	Trainers     *handlers.TrainerHandler
	Blocked      *handlers.BlockedSlotHandler
	Bookings     *handlers.BookingHandler
}

// RegisterAvailabilityRoutes registers the slot-generation endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hs *HandlerSet) {
	r.GET("/api/availability", hs.Availability.GetAvailableSlotsHandler)
}

// RegisterEventTypeRoutes registers event type management endpoints.
func RegisterEventTypeRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/event-types")
	{
		api.POST("", hs.EventTypes.CreateEventTypeHandler)
		api.GET("", hs.EventTypes.ListEventTypesHandler)
		api.GET("/:id", hs.EventTypes.GetEventTypeByIDHandler)
		api.PUT("/:id", hs.EventTypes.UpdateEventTypeHandler)
		api.DELETE("/:id", hs.EventTypes.DeleteEventTypeHandler)
	}
}

// RegisterTrainerRoutes registers trainer management endpoints, including
// blocked days and synced calendar events.
func RegisterTrainerRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/trainers")
	{
		api.POST("", hs.Trainers.CreateTrainerHandler)
		api.GET("", hs.Trainers.ListTrainersHandler)
		api.GET("/:id", hs.Trainers.GetTrainerByIDHandler)
		api.PUT("/:id", hs.Trainers.UpdateTrainerHandler)
		api.DELETE("/:id", hs.Trainers.DeleteTrainerHandler)

		api.POST("/:id/external-events", hs.Trainers.SyncExternalEventsHandler)
		api.GET("/:id/external-events", hs.Trainers.ListExternalEventsHandler)

		api.GET("/:id/blocked-slots", hs.Blocked.ListTrainerBlockedSlotsHandler)
		api.GET("/:id/bookings", hs.Bookings.ListTrainerBookingsHandler)
	}
}

// RegisterBlockedSlotRoutes registers whole-day block endpoints.
func RegisterBlockedSlotRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/blocked-slots")
	{
		api.POST("", hs.Blocked.CreateBlockedSlotHandler)
		api.DELETE("/:id", hs.Blocked.DeleteBlockedSlotHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hs.Bookings.CreateBookingHandler)
		api.DELETE("/:id", hs.Bookings.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Coachbook"})
	})
}

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hs *HandlerSet) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hs)
	RegisterEventTypeRoutes(r, hs)
	RegisterTrainerRoutes(r, hs)
	RegisterBlockedSlotRoutes(r, hs)
	RegisterBookingRoutes(r, hs)
}
