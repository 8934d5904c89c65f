package handlers

import (
	"net/http"
	"time"

	externalRepo "coachbook/database/repository/external"
	trainerRepo "coachbook/database/repository/trainer"
	"coachbook/models"
	"coachbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrainerHandler manages trainer records and their synced calendar events.
type TrainerHandler struct {
	Repo     trainerRepo.TrainerRepository
	External externalRepo.ExternalBookingRepository
}

func NewTrainerHandler(repo trainerRepo.TrainerRepository, external externalRepo.ExternalBookingRepository) *TrainerHandler {
	return &TrainerHandler{Repo: repo, External: external}
}

func (h *TrainerHandler) CreateTrainerHandler(c *gin.Context) {
	var trainer models.Trainer
	if err := c.ShouldBindJSON(&trainer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if trainer.ID == "" {
		trainer.ID = uuid.New().String()
	}
	if err := h.Repo.Create(&trainer); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create trainer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

func (h *TrainerHandler) UpdateTrainerHandler(c *gin.Context) {
	var trainer models.Trainer
	if err := c.ShouldBindJSON(&trainer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	trainer.ID = c.Param("id")
	if err := h.Repo.Update(&trainer); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update trainer", err.Error())
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) DeleteTrainerHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete trainer", err.Error())
		return
	}
	if _, err := h.External.DeleteByTrainer(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove synced events", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *TrainerHandler) GetTrainerByIDHandler(c *gin.Context) {
	trainer, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) ListTrainersHandler(c *gin.Context) {
	trainers, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list trainers", err.Error())
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// SyncExternalEventsHandler handles POST /api/trainers/:id/external-events.
// The body carries busy intervals already fetched from the trainer's
// calendar provider; with ?replace=true the trainer's previously synced
// events are dropped first.
func (h *TrainerHandler) SyncExternalEventsHandler(c *gin.Context) {
	trainerID := c.Param("id")
	if _, err := h.Repo.GetByID(trainerID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", err.Error())
		return
	}

	var input struct {
		Events []models.ExternalBooking `json:"events" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if c.Query("replace") == "true" {
		if _, err := h.External.DeleteByTrainer(trainerID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to replace synced events", err.Error())
			return
		}
	}

	now := time.Now().UTC()
	for i := range input.Events {
		event := &input.Events[i]
		if event.Start.IsZero() {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "every event needs a start time")
			return
		}
		if event.ID == "" {
			event.ID = uuid.New().String()
		}
		event.TrainerID = trainerID
		event.SyncedAt = now
		if err := h.External.Upsert(event); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to store synced event", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"synced": len(input.Events)})
}

// ListExternalEventsHandler handles GET /api/trainers/:id/external-events.
func (h *TrainerHandler) ListExternalEventsHandler(c *gin.Context) {
	events, err := h.External.GetByTrainer(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list synced events", err.Error())
		return
	}
	c.JSON(http.StatusOK, events)
}
