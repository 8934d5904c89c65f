package trainerRepo

import "coachbook/models"

// TrainerRepository defines persistence methods for trainer records.
type TrainerRepository interface {
	Create(trainer *models.Trainer) error
	Update(trainer *models.Trainer) error
	Delete(id string) error
	GetByID(id string) (*models.Trainer, error)
	GetAll() ([]models.Trainer, error)
	// GetQualified returns trainers allowed to teach the event type: those
	// whose eventTypes list contains the id, plus those with no list at all.
	GetQualified(eventTypeID string) ([]models.Trainer, error)
}
