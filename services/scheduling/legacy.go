package scheduling

import "coachbook/models"

// LegacyDayAvailability is the retired availability shape that stored a
// single flat start/end pair per weekday. The engine only accepts the
// nested timeSlots shape; stored records still carrying the flat pair are
// converted once at data-load time.
type LegacyDayAvailability struct {
	Day    string `bson:"day" json:"day"`
	Active bool   `bson:"active" json:"active"`
	Start  string `bson:"start,omitempty" json:"start,omitempty"`
	End    string `bson:"end,omitempty" json:"end,omitempty"`
}

// MigrateLegacyDay converts one legacy per-day record into the canonical
// nested shape. A legacy entry without both bounds yields an entry with no
// time ranges, which the engine treats as unavailable.
func MigrateLegacyDay(legacy LegacyDayAvailability) models.AvailabilitySlot {
	slot := models.AvailabilitySlot{
		Day:    legacy.Day,
		Active: legacy.Active,
	}
	if legacy.Start != "" && legacy.End != "" {
		slot.TimeSlots = []models.TimeRange{{Start: legacy.Start, End: legacy.End}}
	}
	return slot
}

// MigrateLegacyAvailability converts a full legacy weekly schedule.
func MigrateLegacyAvailability(legacy []LegacyDayAvailability) []models.AvailabilitySlot {
	if len(legacy) == 0 {
		return nil
	}
	out := make([]models.AvailabilitySlot, 0, len(legacy))
	for _, day := range legacy {
		out = append(out, MigrateLegacyDay(day))
	}
	return out
}
