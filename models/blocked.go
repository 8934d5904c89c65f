package models

import "time"

// BlockedSlot marks a whole calendar day as unbookable for one trainer.
// Date is a civil "YYYY-MM-DD" string in the system timezone; there is no
// partial-day blocking.
type BlockedSlot struct {
	ID        string    `bson:"id" json:"id"`
	TrainerID string    `bson:"trainer_id" json:"trainerId"`
	Date      string    `bson:"date" json:"date"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
