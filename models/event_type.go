package models

import "time"

// EventType describes a bookable session kind offered on the platform.
type EventType struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"` // session length, must be > 0
	BufferMinutes   int       `bson:"bufferMinutes,omitempty" json:"bufferMinutes,omitempty"` // cooldown added after each booking
	Color           string    `bson:"color,omitempty" json:"color,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
