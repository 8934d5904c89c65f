package eventTypeRepo

import "coachbook/models"

// EventTypeRepository defines persistence methods for event types.
type EventTypeRepository interface {
	Create(eventType *models.EventType) error
	Update(eventType *models.EventType) error
	Delete(id string) error
	GetByID(id string) (*models.EventType, error)
	GetAll(activeOnly bool) ([]models.EventType, error)
}
