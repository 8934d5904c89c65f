package scheduling

import (
	"time"

	"coachbook/models"
)

// defaultExternalMinutes is assumed for synced calendar events that carry no
// end time.
const defaultExternalMinutes = 60

// overlaps applies the half-open interval test: [aStart, aEnd) and
// [bStart, bEnd) overlap iff aStart < bEnd and aEnd > bStart.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// hasBookingConflict reports whether the candidate interval collides with
// any non-cancelled booking of the trainer. The buffer extends only the
// booking's end; there is no pre-buffer.
func hasBookingConflict(trainerID string, start, end time.Time, bufferMinutes int, bookings []models.Booking) bool {
	buffer := time.Duration(bufferMinutes) * time.Minute
	for _, b := range bookings {
		if b.TrainerID != trainerID || b.Status == models.BookingStatusCancelled {
			continue
		}
		if overlaps(start, end, b.StartTime, b.EndTime.Add(buffer)) {
			return true
		}
	}
	return false
}

// hasExternalConflict reports whether the candidate interval collides with
// any externally synced busy interval of the trainer.
func hasExternalConflict(trainerID string, start, end time.Time, externalBookings []models.ExternalBooking) bool {
	for _, eb := range externalBookings {
		if eb.TrainerID != trainerID {
			continue
		}
		busyEnd := eb.End
		if busyEnd.IsZero() {
			busyEnd = eb.Start.Add(defaultExternalMinutes * time.Minute)
		}
		if overlaps(start, end, eb.Start, busyEnd) {
			return true
		}
	}
	return false
}
