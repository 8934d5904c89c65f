package handlers

import (
	"errors"
	"net/http"

	"coachbook/services/booking"
	"coachbook/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation and cancellation.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(input)
	if err != nil {
		if errors.Is(err, booking.ErrSlotUnavailable) {
			utils.JSONError(c, http.StatusConflict, "slot unavailable", "the requested time is no longer bookable")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	if err := h.Service.CancelBooking(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *BookingHandler) ListTrainerBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetTrainerBookings(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
