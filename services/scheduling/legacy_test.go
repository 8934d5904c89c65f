package scheduling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coachbook/models"
)

func TestMigrateLegacyDayProducesSingleRange(t *testing.T) {
	migrated := MigrateLegacyDay(LegacyDayAvailability{
		Day:    "monday",
		Active: true,
		Start:  "09:00",
		End:    "17:00",
	})
	require.Equal(t, models.AvailabilitySlot{
		Day:       "monday",
		Active:    true,
		TimeSlots: []models.TimeRange{{Start: "09:00", End: "17:00"}},
	}, migrated)
}

func TestMigrateLegacyDayWithoutBoundsHasNoRanges(t *testing.T) {
	migrated := MigrateLegacyDay(LegacyDayAvailability{Day: "sunday", Active: true})
	require.Empty(t, migrated.TimeSlots)

	partial := MigrateLegacyDay(LegacyDayAvailability{Day: "sunday", Active: true, Start: "09:00"})
	require.Empty(t, partial.TimeSlots)
}

func TestMigrateLegacyAvailabilityKeepsDayOrder(t *testing.T) {
	legacy := []LegacyDayAvailability{
		{Day: "monday", Active: true, Start: "08:00", End: "12:00"},
		{Day: "tuesday", Active: false, Start: "08:00", End: "12:00"},
		{Day: "wednesday", Active: true},
	}
	migrated := MigrateLegacyAvailability(legacy)
	require.Len(t, migrated, 3)
	require.Equal(t, "monday", migrated[0].Day)
	require.Len(t, migrated[0].TimeSlots, 1)
	require.False(t, migrated[1].Active)
	require.Empty(t, migrated[2].TimeSlots)

	require.Nil(t, MigrateLegacyAvailability(nil))
}

func TestMigratedAvailabilityFeedsTheGenerator(t *testing.T) {
	engine := newTestEngine(t)
	trainer := models.Trainer{
		ID: "tr-legacy",
		Availability: MigrateLegacyAvailability([]LegacyDayAvailability{
			{Day: "monday", Active: true, Start: "09:00", End: "11:00"},
		}),
	}
	eventType := models.EventType{ID: "et-1", DurationMinutes: 60}

	slots, err := engine.GenerateAvailableSlots(testMonday, eventType, []models.Trainer{trainer}, nil, nil, nil, "")
	require.NoError(t, err)
	require.Equal(t, []string{"09:00", "09:30", "10:00"}, startClocks(engine, slots))
}
