package booking

import (
	"errors"
	"fmt"
	"time"

	blockedRepo "coachbook/database/repository/blocked"
	bookingRepo "coachbook/database/repository/booking"
	eventTypeRepo "coachbook/database/repository/eventtype"
	externalRepo "coachbook/database/repository/external"
	trainerRepo "coachbook/database/repository/trainer"
	"coachbook/models"
	"coachbook/services/scheduling"
	"coachbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSlotUnavailable is returned when the requested start time is not among
// the currently bookable slots for the trainer.
var ErrSlotUnavailable = errors.New("requested slot is no longer available")

// CreateBookingInput carries a student's booking request.
type CreateBookingInput struct {
	TrainerID    string    `json:"trainerId" binding:"required"`
	EventTypeID  string    `json:"eventTypeId" binding:"required"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	StartTime    time.Time `json:"startTime" binding:"required"`
}

// BookingService manages booking lifecycle around the scheduling engine.
type BookingService interface {
	CreateBooking(input CreateBookingInput) (*models.Booking, error)
	CancelBooking(id string) error
	GetTrainerBookings(trainerID string) ([]models.Booking, error)
}

// DefaultBookingService is the concrete implementation.
type DefaultBookingService struct {
	Trainers   trainerRepo.TrainerRepository
	EventTypes eventTypeRepo.EventTypeRepository
	Bookings   bookingRepo.BookingRepository
	Blocked    blockedRepo.BlockedRepository
	External   externalRepo.ExternalBookingRepository
	Engine     *scheduling.Engine
}

// CreateBooking validates the requested window against a fresh availability
// snapshot and persists the booking only if the window is still bookable.
func (s *DefaultBookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	eventType, err := s.EventTypes.GetByID(input.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("event type lookup failed: %w", err)
	}
	if !eventType.Active || eventType.DurationMinutes <= 0 {
		return nil, fmt.Errorf("event type %s is not bookable", eventType.ID)
	}

	trainer, err := s.Trainers.GetByID(input.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("trainer lookup failed: %w", err)
	}

	date := input.StartTime.In(s.Engine.Location()).Format("2006-01-02")
	dayStart, err := time.ParseInLocation("2006-01-02", date, s.Engine.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %q: %w", date, err)
	}
	from := dayStart.AddDate(0, 0, -1)
	to := dayStart.AddDate(0, 0, 2)

	existing, err := s.Bookings.GetByTrainersInWindow([]string{trainer.ID}, from, to)
	if err != nil {
		return nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	blocked, err := s.Blocked.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("blocked-day lookup failed: %w", err)
	}
	external, err := s.External.GetByTrainersInWindow([]string{trainer.ID}, from, to)
	if err != nil {
		return nil, fmt.Errorf("external booking lookup failed: %w", err)
	}

	slots, err := s.Engine.GenerateAvailableSlots(
		date, *eventType, []models.Trainer{*trainer},
		existing, blocked, external, trainer.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("slot validation failed: %w", err)
	}

	bookable := false
	for _, slot := range slots {
		if slot.Start.Equal(input.StartTime) {
			bookable = true
			break
		}
	}
	if !bookable {
		return nil, ErrSlotUnavailable
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		TrainerID:    trainer.ID,
		EventTypeID:  eventType.ID,
		StudentName:  input.StudentName,
		StudentEmail: input.StudentEmail,
		StartTime:    input.StartTime,
		EndTime:      input.StartTime.Add(time.Duration(eventType.DurationMinutes) * time.Minute),
		Status:       models.BookingStatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("trainerID", booking.TrainerID),
		zap.Time("start", booking.StartTime))
	return booking, nil
}

// CancelBooking flips the booking status; cancelled bookings stop
// participating in conflict checks.
func (s *DefaultBookingService) CancelBooking(id string) error {
	if err := s.Bookings.UpdateStatus(id, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", id))
	return nil
}

func (s *DefaultBookingService) GetTrainerBookings(trainerID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByTrainer(trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for trainer %s: %w", trainerID, err)
	}
	return bookings, nil
}
