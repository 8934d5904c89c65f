package externalRepo

import (
	"time"

	"coachbook/models"
)

// ExternalBookingRepository defines persistence methods for busy intervals
// synced from trainers' external calendars.
type ExternalBookingRepository interface {
	// Upsert inserts or replaces a synced event by its id, so repeated sync
	// runs converge on the latest upstream state.
	Upsert(event *models.ExternalBooking) error
	DeleteByTrainer(trainerID string) (int64, error)
	GetByTrainer(trainerID string) ([]models.ExternalBooking, error)
	// GetByTrainersInWindow returns events for the trainer set whose busy
	// interval intersects [from, to). Events without an end time are
	// matched on their start alone.
	GetByTrainersInWindow(trainerIDs []string, from, to time.Time) ([]models.ExternalBooking, error)
	// PurgeEndedBefore removes events whose interval ended before the
	// cutoff and returns the number removed.
	PurgeEndedBefore(cutoff time.Time) (int64, error)
}
