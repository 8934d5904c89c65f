package handlers

import (
	"net/http"
	"time"

	blockedRepo "coachbook/database/repository/blocked"
	"coachbook/models"
	"coachbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlockedSlotHandler manages whole-day trainer blocks.
type BlockedSlotHandler struct {
	Repo blockedRepo.BlockedRepository
}

func NewBlockedSlotHandler(repo blockedRepo.BlockedRepository) *BlockedSlotHandler {
	return &BlockedSlotHandler{Repo: repo}
}

func (h *BlockedSlotHandler) CreateBlockedSlotHandler(c *gin.Context) {
	var block models.BlockedSlot
	if err := c.ShouldBindJSON(&block); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if block.TrainerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "trainerId is required")
		return
	}
	if _, err := time.Parse("2006-01-02", block.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date must be formatted as YYYY-MM-DD")
		return
	}
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	block.CreatedAt = time.Now().UTC()

	if err := h.Repo.Create(&block); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create blocked slot", err.Error())
		return
	}
	c.JSON(http.StatusCreated, block)
}

func (h *BlockedSlotHandler) DeleteBlockedSlotHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete blocked slot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *BlockedSlotHandler) ListTrainerBlockedSlotsHandler(c *gin.Context) {
	blocks, err := h.Repo.GetByTrainer(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list blocked slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, blocks)
}
