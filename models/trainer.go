package models

// TimeRange is one continuous civil-time window within a weekday,
// expressed as "HH:MM" strings in the system timezone.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// AvailabilitySlot holds a trainer's recurring availability for one weekday.
// Day uses lowercase English weekday names ("monday" ... "sunday").
// An inactive day or an empty TimeSlots list means no availability.
type AvailabilitySlot struct {
	Day       string      `bson:"day" json:"day"`
	Active    bool        `bson:"active" json:"active"`
	TimeSlots []TimeRange `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
}

// Trainer is the subset of a platform user that the scheduling engine reads.
// An empty EventTypes list means the trainer is qualified for every event type.
type Trainer struct {
	ID           string             `bson:"id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	EventTypes   []string           `bson:"eventTypes,omitempty" json:"eventTypes,omitempty"`
	Availability []AvailabilitySlot `bson:"availability,omitempty" json:"availability,omitempty"`
}
