package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a confirmed or cancelled session between a student and a trainer.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	TrainerID    string    `bson:"trainer_id" json:"trainerId"`
	EventTypeID  string    `bson:"event_type_id,omitempty" json:"eventTypeId,omitempty"`
	StudentName  string    `bson:"student_name,omitempty" json:"studentName,omitempty"`
	StudentEmail string    `bson:"student_email,omitempty" json:"studentEmail,omitempty"`
	StartTime    time.Time `bson:"start_time" json:"startTime"`
	EndTime      time.Time `bson:"end_time" json:"endTime"`
	Status       string    `bson:"status" json:"status"` // "confirmed" or "cancelled"
	CreatedAt    time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
