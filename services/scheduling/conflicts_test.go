package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coachbook/models"
)

func TestOverlapsHalfOpenSemantics(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	at := func(m int) time.Time { return base.Add(time.Duration(m) * time.Minute) }

	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"identical", 0, 60, 0, 60, true},
		{"partial overlap", 0, 60, 30, 90, true},
		{"contained", 0, 90, 30, 60, true},
		{"touching at end", 0, 60, 60, 120, false},
		{"touching at start", 60, 120, 0, 60, false},
		{"disjoint", 0, 30, 60, 90, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := overlaps(at(tc.aStart), at(tc.aEnd), at(tc.bStart), at(tc.bEnd))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestHasBookingConflictScopesToTrainer(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	bookings := []models.Booking{{
		TrainerID: "tr-other",
		StartTime: start,
		EndTime:   end,
		Status:    models.BookingStatusConfirmed,
	}}
	require.False(t, hasBookingConflict("tr-1", start, end, 0, bookings))
	require.True(t, hasBookingConflict("tr-other", start, end, 0, bookings))
}

func TestHasBookingConflictBufferIsAsymmetric(t *testing.T) {
	bookingStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	bookingEnd := bookingStart.Add(time.Hour)
	bookings := []models.Booking{{
		TrainerID: "tr-1",
		StartTime: bookingStart,
		EndTime:   bookingEnd,
		Status:    models.BookingStatusConfirmed,
	}}

	// Candidate right after the booking falls inside the 15-minute buffer.
	require.True(t, hasBookingConflict("tr-1", bookingEnd, bookingEnd.Add(time.Hour), 15, bookings))
	require.False(t, hasBookingConflict("tr-1", bookingEnd.Add(15*time.Minute), bookingEnd.Add(75*time.Minute), 15, bookings))

	// Candidate ending exactly at the booking start is clean: the buffer
	// never extends backwards.
	require.False(t, hasBookingConflict("tr-1", bookingStart.Add(-time.Hour), bookingStart, 15, bookings))
}

func TestHasExternalConflictScopesToTrainer(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	external := []models.ExternalBooking{{
		TrainerID: "tr-1",
		Start:     start,
		End:       start.Add(30 * time.Minute),
	}}
	require.True(t, hasExternalConflict("tr-1", start, start.Add(time.Hour), external))
	require.False(t, hasExternalConflict("tr-2", start, start.Add(time.Hour), external))
}

func TestHasExternalConflictDefaultsMissingEndToOneHour(t *testing.T) {
	busyStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	external := []models.ExternalBooking{{TrainerID: "tr-1", Start: busyStart}}

	inside := busyStart.Add(45 * time.Minute)
	require.True(t, hasExternalConflict("tr-1", inside, inside.Add(time.Hour), external))

	after := busyStart.Add(60 * time.Minute)
	require.False(t, hasExternalConflict("tr-1", after, after.Add(time.Hour), external))
}
