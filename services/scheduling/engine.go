package scheduling

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"coachbook/models"
)

// slotStepMinutes is the fixed grid on which candidate slots start. It is
// deliberately independent of the event duration so that, say, a 90-minute
// session can start on any half hour within an availability window.
const slotStepMinutes = 30

// Engine generates bookable time slots for trainers on a given calendar
// date. It is a pure computation over caller-supplied snapshots and is safe
// for concurrent use.
type Engine struct {
	systemTimezone string
	loc            *time.Location
}

// NewEngine builds an Engine anchored to the named system timezone.
func NewEngine(systemTimezone string) (*Engine, error) {
	loc, err := time.LoadLocation(systemTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid system timezone %q: %w", systemTimezone, err)
	}
	return &Engine{systemTimezone: systemTimezone, loc: loc}, nil
}

// SystemTimezone returns the timezone identifier the engine anchors civil
// availability times to.
func (e *Engine) SystemTimezone() string {
	return e.systemTimezone
}

// Location returns the engine's system timezone location.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// GenerateAvailableSlots computes every bookable [start, end) window on the
// given civil date ("YYYY-MM-DD", system timezone) for the trainers
// qualified to teach eventType, filtered against blocked days, confirmed
// bookings, and externally synced busy intervals. If specificTrainerID is
// non-empty the result is narrowed to that single trainer. The returned
// slots are sorted ascending by start instant.
func (e *Engine) GenerateAvailableSlots(
	date string,
	eventType models.EventType,
	trainers []models.Trainer,
	bookings []models.Booking,
	blockedSlots []models.BlockedSlot,
	externalBookings []models.ExternalBooking,
	specificTrainerID string,
) ([]models.GeneratedTimeSlot, error) {
	day, err := time.ParseInLocation(civilDateLayout, date, e.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	weekday := strings.ToLower(day.Weekday().String())

	duration := time.Duration(eventType.DurationMinutes) * time.Minute
	step := slotStepMinutes * time.Minute

	var slots []models.GeneratedTimeSlot
	for _, trainer := range trainers {
		if !isQualified(trainer, eventType.ID) {
			continue
		}
		if specificTrainerID != "" && trainer.ID != specificTrainerID {
			continue
		}
		if isDayBlocked(trainer.ID, date, blockedSlots) {
			continue
		}

		dayAvailability := availabilityForDay(trainer, weekday)
		if dayAvailability == nil {
			continue
		}

		// Ranges are processed independently and never merged; overlapping
		// ranges in the input yield their slots verbatim.
		for _, tr := range dayAvailability.TimeSlots {
			rangeStart, err := SystemCivilToInstant(e.loc, date, tr.Start)
			if err != nil {
				return nil, err
			}
			rangeEnd, err := SystemCivilToInstant(e.loc, date, tr.End)
			if err != nil {
				return nil, err
			}

			// A slot ending exactly at the range end is allowed.
			for start := rangeStart; !start.Add(duration).After(rangeEnd); start = start.Add(step) {
				end := start.Add(duration)
				if hasBookingConflict(trainer.ID, start, end, eventType.BufferMinutes, bookings) {
					continue
				}
				if hasExternalConflict(trainer.ID, start, end, externalBookings) {
					continue
				}
				slots = append(slots, models.GeneratedTimeSlot{
					Start:     start,
					End:       end,
					TrainerID: trainer.ID,
				})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
	return slots, nil
}

// isQualified reports whether the trainer may teach the event type. A
// trainer with an empty EventTypes list teaches everything.
func isQualified(trainer models.Trainer, eventTypeID string) bool {
	if len(trainer.EventTypes) == 0 {
		return true
	}
	for _, id := range trainer.EventTypes {
		if id == eventTypeID {
			return true
		}
	}
	return false
}

// isDayBlocked reports whether the trainer has a whole-day block on the
// civil date.
func isDayBlocked(trainerID, date string, blockedSlots []models.BlockedSlot) bool {
	for _, b := range blockedSlots {
		if b.TrainerID == trainerID && b.Date == date {
			return true
		}
	}
	return false
}

// availabilityForDay returns the trainer's availability entry for the
// weekday, or nil when the day is absent, inactive, or has no time ranges.
func availabilityForDay(trainer models.Trainer, weekday string) *models.AvailabilitySlot {
	for i := range trainer.Availability {
		a := &trainer.Availability[i]
		if !strings.EqualFold(a.Day, weekday) {
			continue
		}
		if !a.Active || len(a.TimeSlots) == 0 {
			return nil
		}
		return a
	}
	return nil
}
