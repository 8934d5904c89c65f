package blockedRepo

import "coachbook/models"

// BlockedRepository defines persistence methods for whole-day blocks.
type BlockedRepository interface {
	Create(block *models.BlockedSlot) error
	Delete(id string) error
	GetByTrainer(trainerID string) ([]models.BlockedSlot, error)
	GetByDate(date string) ([]models.BlockedSlot, error)
	// PurgeBefore removes blocks whose civil date sorts before the given
	// "YYYY-MM-DD" date and returns the number removed.
	PurgeBefore(date string) (int64, error)
}
