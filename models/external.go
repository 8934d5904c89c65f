package models

import "time"

// ExternalBooking is a busy interval synced from a trainer's external
// calendar. Opaque beyond its time bounds; a zero End means the source
// event carried no end time and defaults to Start plus one hour.
type ExternalBooking struct {
	ID        string    `bson:"id" json:"id"`
	TrainerID string    `bson:"trainer_id" json:"trainerId"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end,omitempty" json:"end,omitempty"`
	SyncedAt  time.Time `bson:"synced_at,omitempty" json:"syncedAt,omitempty"`
}
