package availability

import (
	"context"
	"encoding/json"
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

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Query describes one availability lookup.
type Query struct {
	Date           string // civil "YYYY-MM-DD" in the system timezone
	EventTypeID    string
	TrainerID      string // optional: narrow to one trainer
	ViewerTimezone string // optional: defaults to the ambient timezone
}

// SlotView is one bookable window rendered for the viewer.
type SlotView struct {
	TrainerID  string    `json:"trainerId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	StartLocal string    `json:"startLocal"`
	EndLocal   string    `json:"endLocal"`
}

// Result carries the generated slots plus the timezone context needed to
// render them.
type Result struct {
	Date            string     `json:"date"`
	EventTypeID     string     `json:"eventTypeId"`
	SystemTimezone  string     `json:"systemTimezone"`
	ViewerTimezone  string     `json:"viewerTimezone"`
	TimezoneDiffers bool       `json:"timezoneDiffers"`
	Slots           []SlotView `json:"slots"`
}

// AvailabilityService computes bookable slots from persisted state.
type AvailabilityService interface {
	GetAvailableSlots(query Query) (*Result, error)
}

// DefaultAvailabilityService is the concrete implementation backed by the
// Mongo repositories, with a short-lived Redis cache in front.
type DefaultAvailabilityService struct {
	Trainers   trainerRepo.TrainerRepository
	EventTypes eventTypeRepo.EventTypeRepository
	Bookings   bookingRepo.BookingRepository
	Blocked    blockedRepo.BlockedRepository
	External   externalRepo.ExternalBookingRepository
	Engine     *scheduling.Engine
	Cache      *redis.Client
	CacheTTL   time.Duration
}

func (s *DefaultAvailabilityService) GetAvailableSlots(query Query) (*Result, error) {
	logger := utils.GetLogger()

	viewerTZ := query.ViewerTimezone
	if viewerTZ == "" {
		viewerTZ = scheduling.DetectViewerTimezone()
	}

	cacheKey := fmt.Sprintf("availability:%s:%s:%s:%s", query.Date, query.EventTypeID, query.TrainerID, viewerTZ)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(context.Background(), cacheKey).Bytes(); err == nil {
			var result Result
			if err := json.Unmarshal(cached, &result); err == nil {
				return &result, nil
			}
			logger.Warn("discarding unreadable availability cache entry", zap.String("key", cacheKey))
		}
	}

	eventType, err := s.EventTypes.GetByID(query.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("event type lookup failed: %w", err)
	}
	if !eventType.Active {
		return nil, fmt.Errorf("event type %s is not active", eventType.ID)
	}

	trainers, err := s.loadTrainers(query)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.loadConflictSnapshot(query.Date, trainers)
	if err != nil {
		return nil, err
	}

	slots, err := s.Engine.GenerateAvailableSlots(
		query.Date, *eventType, trainers,
		snapshot.bookings, snapshot.blocked, snapshot.external,
		query.TrainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("slot generation failed: %w", err)
	}

	result := &Result{
		Date:            query.Date,
		EventTypeID:     eventType.ID,
		SystemTimezone:  s.Engine.SystemTimezone(),
		ViewerTimezone:  viewerTZ,
		TimezoneDiffers: scheduling.IsDifferentTimezone(viewerTZ, s.Engine.SystemTimezone()),
		Slots:           make([]SlotView, 0, len(slots)),
	}
	for _, slot := range slots {
		startLocal, err := scheduling.FormatInTimezone(slot.Start, "2006-01-02 15:04", viewerTZ)
		if err != nil {
			return nil, fmt.Errorf("failed to render slot in viewer timezone: %w", err)
		}
		endLocal, err := scheduling.FormatInTimezone(slot.End, "2006-01-02 15:04", viewerTZ)
		if err != nil {
			return nil, fmt.Errorf("failed to render slot in viewer timezone: %w", err)
		}
		result.Slots = append(result.Slots, SlotView{
			TrainerID:  slot.TrainerID,
			Start:      slot.Start,
			End:        slot.End,
			StartLocal: startLocal,
			EndLocal:   endLocal,
		})
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(context.Background(), cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability result", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return result, nil
}

func (s *DefaultAvailabilityService) loadTrainers(query Query) ([]models.Trainer, error) {
	if query.TrainerID != "" {
		trainer, err := s.Trainers.GetByID(query.TrainerID)
		if err != nil {
			return nil, fmt.Errorf("trainer lookup failed: %w", err)
		}
		return []models.Trainer{*trainer}, nil
	}
	trainers, err := s.Trainers.GetQualified(query.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("trainer lookup failed: %w", err)
	}
	return trainers, nil
}

type conflictSnapshot struct {
	bookings []models.Booking
	blocked  []models.BlockedSlot
	external []models.ExternalBooking
}

// loadConflictSnapshot fetches every conflict source relevant to the date.
// The window is widened by a day on each side so buffered bookings and
// events spilling over midnight stay in scope.
func (s *DefaultAvailabilityService) loadConflictSnapshot(date string, trainers []models.Trainer) (*conflictSnapshot, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", date, s.Engine.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	from := dayStart.AddDate(0, 0, -1)
	to := dayStart.AddDate(0, 0, 2)

	trainerIDs := make([]string, 0, len(trainers))
	for _, t := range trainers {
		trainerIDs = append(trainerIDs, t.ID)
	}

	bookings, err := s.Bookings.GetByTrainersInWindow(trainerIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	blocked, err := s.Blocked.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("blocked-day lookup failed: %w", err)
	}
	external, err := s.External.GetByTrainersInWindow(trainerIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("external booking lookup failed: %w", err)
	}
	return &conflictSnapshot{bookings: bookings, blocked: blocked, external: external}, nil
}
