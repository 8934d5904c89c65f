package handlers

import (
	"net/http"
	"time"

	eventTypeRepo "coachbook/database/repository/eventtype"
	"coachbook/models"
	"coachbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventTypeHandler manages event type CRUD.
type EventTypeHandler struct {
	Repo eventTypeRepo.EventTypeRepository
}

func NewEventTypeHandler(repo eventTypeRepo.EventTypeRepository) *EventTypeHandler {
	return &EventTypeHandler{Repo: repo}
}

func (h *EventTypeHandler) CreateEventTypeHandler(c *gin.Context) {
	var eventType models.EventType
	if err := c.ShouldBindJSON(&eventType); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if eventType.DurationMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "durationMinutes must be greater than zero")
		return
	}
	if eventType.ID == "" {
		eventType.ID = uuid.New().String()
	}
	eventType.CreatedAt = time.Now().UTC()

	if err := h.Repo.Create(&eventType); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create event type", err.Error())
		return
	}
	c.JSON(http.StatusCreated, eventType)
}

func (h *EventTypeHandler) UpdateEventTypeHandler(c *gin.Context) {
	var eventType models.EventType
	if err := c.ShouldBindJSON(&eventType); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	eventType.ID = c.Param("id")
	if eventType.DurationMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "durationMinutes must be greater than zero")
		return
	}
	if err := h.Repo.Update(&eventType); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update event type", err.Error())
		return
	}
	c.JSON(http.StatusOK, eventType)
}

func (h *EventTypeHandler) DeleteEventTypeHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete event type", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *EventTypeHandler) GetEventTypeByIDHandler(c *gin.Context) {
	eventType, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "event type not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, eventType)
}

func (h *EventTypeHandler) ListEventTypesHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	eventTypes, err := h.Repo.GetAll(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list event types", err.Error())
		return
	}
	c.JSON(http.StatusOK, eventTypes)
}
