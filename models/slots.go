package models

import "time"

// GeneratedTimeSlot is a bookable window produced by the scheduling engine.
// It is a pure computation result, never persisted.
type GeneratedTimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TrainerID string    `json:"trainerId"`
}
