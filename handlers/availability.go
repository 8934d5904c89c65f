package handlers

import (
	"net/http"
	"time"

	"coachbook/services/availability"
	"coachbook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the slot-generation engine over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailableSlotsHandler handles GET /api/availability.
// Query params: date (YYYY-MM-DD, required), eventTypeId (required),
// trainerId (optional), timezone (optional viewer timezone).
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	eventTypeID := c.Query("eventTypeId")
	if date == "" || eventTypeID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "date and eventTypeId are required")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "date must be formatted as YYYY-MM-DD")
		return
	}

	result, err := h.Service.GetAvailableSlots(availability.Query{
		Date:           date,
		EventTypeID:    eventTypeID,
		TrainerID:      c.Query("trainerId"),
		ViewerTimezone: c.Query("timezone"),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
