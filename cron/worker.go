package cron

import (
	"context"
	"log"
	"time"

	"coachbook/config"
	blockedRepo "coachbook/database/repository/blocked"
	externalRepo "coachbook/database/repository/external"

	"github.com/hibiken/asynq"
)

const TypeMaintenancePurge = "maintenance:purge-expired"

// InitMaintenanceWorker runs the async maintenance worker in background.
// It schedules a daily purge of blocked-day records and synced calendar
// events whose dates lie in the past.
func InitMaintenanceWorker(
	blocked blockedRepo.BlockedRepository,
	external externalRepo.ExternalBookingRepository,
	loc *time.Location,
) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMaintenancePurge, handlePurgeTask(blocked, external, loc))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: loc})
	if _, err := scheduler.Register("0 3 * * *", asynq.NewTask(TypeMaintenancePurge, nil)); err != nil {
		log.Printf("[MaintenanceWorker] failed to register purge schedule: %v", err)
		return
	}

	go func() {
		log.Println("[MaintenanceWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MaintenanceWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MaintenanceWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[MaintenanceWorker] scheduler stopped: %v", err)
		}
	}()
}

func handlePurgeTask(
	blocked blockedRepo.BlockedRepository,
	external externalRepo.ExternalBookingRepository,
	loc *time.Location,
) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		now := time.Now().In(loc)
		today := now.Format("2006-01-02")
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

		removedBlocks, err := blocked.PurgeBefore(today)
		if err != nil {
			return err
		}
		removedEvents, err := external.PurgeEndedBefore(startOfDay)
		if err != nil {
			return err
		}
		log.Printf("[MaintenanceWorker] purged %d blocked days, %d synced events", removedBlocks, removedEvents)
		return nil
	}
}
