package bookingRepo

import (
	"time"

	"coachbook/models"
)

// BookingRepository defines persistence methods for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	UpdateStatus(id, status string) error
	GetByTrainer(trainerID string) ([]models.Booking, error)
	// GetByTrainersInWindow returns bookings for the trainer set whose
	// [start, end) interval intersects [from, to).
	GetByTrainersInWindow(trainerIDs []string, from, to time.Time) ([]models.Booking, error)
}
