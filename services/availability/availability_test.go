package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coachbook/models"
	"coachbook/services/scheduling"
)

// 2025-06-02 is a Monday.
const testDate = "2025-06-02"

type fakeTrainerRepo struct {
	trainers []models.Trainer
}

func (f *fakeTrainerRepo) Create(*models.Trainer) error   { return nil }
func (f *fakeTrainerRepo) Update(*models.Trainer) error   { return nil }
func (f *fakeTrainerRepo) Delete(string) error            { return nil }
func (f *fakeTrainerRepo) GetAll() ([]models.Trainer, error) { return f.trainers, nil }

func (f *fakeTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	for _, t := range f.trainers {
		if t.ID == id {
			trainer := t
			return &trainer, nil
		}
	}
	return nil, fmt.Errorf("trainer with id %s not found", id)
}

func (f *fakeTrainerRepo) GetQualified(eventTypeID string) ([]models.Trainer, error) {
	var out []models.Trainer
	for _, t := range f.trainers {
		if len(t.EventTypes) == 0 {
			out = append(out, t)
			continue
		}
		for _, id := range t.EventTypes {
			if id == eventTypeID {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

type fakeEventTypeRepo struct {
	eventTypes map[string]models.EventType
}

func (f *fakeEventTypeRepo) Create(*models.EventType) error { return nil }
func (f *fakeEventTypeRepo) Update(*models.EventType) error { return nil }
func (f *fakeEventTypeRepo) Delete(string) error            { return nil }
func (f *fakeEventTypeRepo) GetAll(bool) ([]models.EventType, error) { return nil, nil }

func (f *fakeEventTypeRepo) GetByID(id string) (*models.EventType, error) {
	et, ok := f.eventTypes[id]
	if !ok {
		return nil, fmt.Errorf("event type with id %s not found", id)
	}
	return &et, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}
func (f *fakeBookingRepo) GetByID(string) (*models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) UpdateStatus(id, status string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("booking with id %s not found", id)
}
func (f *fakeBookingRepo) GetByTrainer(trainerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.TrainerID == trainerID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) GetByTrainersInWindow([]string, time.Time, time.Time) ([]models.Booking, error) {
	return f.bookings, nil
}

type fakeBlockedRepo struct {
	blocks []models.BlockedSlot
}

func (f *fakeBlockedRepo) Create(*models.BlockedSlot) error { return nil }
func (f *fakeBlockedRepo) Delete(string) error              { return nil }
func (f *fakeBlockedRepo) GetByTrainer(string) ([]models.BlockedSlot, error) { return nil, nil }
func (f *fakeBlockedRepo) PurgeBefore(string) (int64, error) { return 0, nil }
func (f *fakeBlockedRepo) GetByDate(date string) ([]models.BlockedSlot, error) {
	var out []models.BlockedSlot
	for _, b := range f.blocks {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeExternalRepo struct {
	events []models.ExternalBooking
}

func (f *fakeExternalRepo) Upsert(*models.ExternalBooking) error { return nil }
func (f *fakeExternalRepo) DeleteByTrainer(string) (int64, error) { return 0, nil }
func (f *fakeExternalRepo) GetByTrainer(string) ([]models.ExternalBooking, error) { return nil, nil }
func (f *fakeExternalRepo) PurgeEndedBefore(time.Time) (int64, error) { return 0, nil }
func (f *fakeExternalRepo) GetByTrainersInWindow([]string, time.Time, time.Time) ([]models.ExternalBooking, error) {
	return f.events, nil
}

func newTestService(t *testing.T, trainers []models.Trainer, bookings []models.Booking, blocks []models.BlockedSlot, events []models.ExternalBooking) *DefaultAvailabilityService {
	t.Helper()
	engine, err := scheduling.NewEngine("UTC")
	require.NoError(t, err)
	return &DefaultAvailabilityService{
		Trainers: &fakeTrainerRepo{trainers: trainers},
		EventTypes: &fakeEventTypeRepo{eventTypes: map[string]models.EventType{
			"et-1": {ID: "et-1", Name: "Personal Training", DurationMinutes: 60, Active: true},
			"et-x": {ID: "et-x", Name: "Retired", DurationMinutes: 60, Active: false},
		}},
		Bookings: &fakeBookingRepo{bookings: bookings},
		Blocked:  &fakeBlockedRepo{blocks: blocks},
		External: &fakeExternalRepo{events: events},
		Engine:   engine,
	}
}

func mondayTrainer(id string) models.Trainer {
	return models.Trainer{
		ID: id,
		Availability: []models.AvailabilitySlot{{
			Day:       "monday",
			Active:    true,
			TimeSlots: []models.TimeRange{{Start: "09:00", End: "11:00"}},
		}},
	}
}

func TestGetAvailableSlotsRendersViewerTimezone(t *testing.T) {
	svc := newTestService(t, []models.Trainer{mondayTrainer("tr-1")}, nil, nil, nil)

	result, err := svc.GetAvailableSlots(Query{
		Date:           testDate,
		EventTypeID:    "et-1",
		ViewerTimezone: "Etc/GMT-2", // UTC+2
	})
	require.NoError(t, err)
	require.True(t, result.TimezoneDiffers)
	require.Equal(t, "UTC", result.SystemTimezone)
	require.Len(t, result.Slots, 3)
	require.Equal(t, testDate+" 09:00", result.Slots[0].Start.UTC().Format("2006-01-02 15:04"))
	// Same instant, rendered two hours ahead for the viewer.
	require.Equal(t, testDate+" 11:00", result.Slots[0].StartLocal)
}

func TestGetAvailableSlotsAppliesConflictSources(t *testing.T) {
	trainers := []models.Trainer{mondayTrainer("tr-1"), mondayTrainer("tr-2")}
	bookings := []models.Booking{{
		ID:        "bk-1",
		TrainerID: "tr-1",
		StartTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Status:    models.BookingStatusConfirmed,
	}}
	blocks := []models.BlockedSlot{{TrainerID: "tr-2", Date: testDate}}

	svc := newTestService(t, trainers, bookings, blocks, nil)
	result, err := svc.GetAvailableSlots(Query{Date: testDate, EventTypeID: "et-1", ViewerTimezone: "UTC"})
	require.NoError(t, err)
	require.False(t, result.TimezoneDiffers)
	// tr-2 is fully blocked; tr-1 loses the 09:00 and 09:30 starts.
	for _, s := range result.Slots {
		require.Equal(t, "tr-1", s.TrainerID)
	}
	require.Len(t, result.Slots, 1)
	require.Equal(t, "10:00", result.Slots[0].Start.UTC().Format("15:04"))
}

func TestGetAvailableSlotsNarrowsToSpecificTrainer(t *testing.T) {
	svc := newTestService(t, []models.Trainer{mondayTrainer("tr-1"), mondayTrainer("tr-2")}, nil, nil, nil)

	result, err := svc.GetAvailableSlots(Query{Date: testDate, EventTypeID: "et-1", TrainerID: "tr-2", ViewerTimezone: "UTC"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)
	for _, s := range result.Slots {
		require.Equal(t, "tr-2", s.TrainerID)
	}
}

func TestGetAvailableSlotsRejectsUnknownEventType(t *testing.T) {
	svc := newTestService(t, []models.Trainer{mondayTrainer("tr-1")}, nil, nil, nil)
	_, err := svc.GetAvailableSlots(Query{Date: testDate, EventTypeID: "et-missing", ViewerTimezone: "UTC"})
	require.Error(t, err)
}

func TestGetAvailableSlotsRejectsInactiveEventType(t *testing.T) {
	svc := newTestService(t, []models.Trainer{mondayTrainer("tr-1")}, nil, nil, nil)
	_, err := svc.GetAvailableSlots(Query{Date: testDate, EventTypeID: "et-x", ViewerTimezone: "UTC"})
	require.Error(t, err)
}

func TestGetAvailableSlotsRejectsInvalidViewerTimezone(t *testing.T) {
	svc := newTestService(t, []models.Trainer{mondayTrainer("tr-1")}, nil, nil, nil)
	_, err := svc.GetAvailableSlots(Query{Date: testDate, EventTypeID: "et-1", ViewerTimezone: "Nowhere/Nothing"})
	require.Error(t, err)
}
