package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"courtside/config"
	bookingRepo "courtside/database/repository/booking"
	venueRepo "courtside/database/repository/venue"
	"courtside/models"
	"courtside/services/notification"
	"courtside/services/slotengine"
	"courtside/utils"
)

// InitReminderWorker runs the async worker in background and starts the
// periodic sweep that re-enqueues reminders for upcoming confirmed bookings.
// The sweep covers bookings whose reminder task was lost (queue flush, crash
// between insert and enqueue); task IDs make re-enqueueing idempotent.
func InitReminderWorker(bookings bookingRepo.BookingRepository, venues venueRepo.VenueRepository, notifier notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingReminder, handleReminderTask(bookings))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		logger := utils.GetLogger()
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			sweepReminders(ctx, bookings, venues, notifier, logger, sweepDates(time.Now()))
			cancel()
			<-ticker.C
		}
	}()
}

// sweepDates returns today and tomorrow; reminders are enqueued at most an
// hour ahead, so two days of lookahead always covers the next window.
func sweepDates(now time.Time) []string {
	return []string{
		now.Format(slotengine.DateLayout),
		now.Add(24 * time.Hour).Format(slotengine.DateLayout),
	}
}

// sweepReminders re-schedules reminders for every upcoming confirmed booking
// on the given dates. Scheduling is idempotent per booking, so bookings that
// already have a pending task are untouched.
func sweepReminders(
	ctx context.Context,
	bookings bookingRepo.BookingRepository,
	venues venueRepo.VenueRepository,
	notifier notification.NotificationService,
	logger *zap.Logger,
	dates []string,
) {
	for _, date := range dates {
		upcoming, err := bookings.GetUpcoming(ctx, date)
		if err != nil {
			logger.Warn("reminder sweep failed to list bookings",
				zap.String("date", date), zap.Error(err))
			continue
		}
		for i := range upcoming {
			b := &upcoming[i]
			timezone := ""
			if v, err := venues.GetByID(ctx, b.VenueID); err == nil {
				timezone = v.Timezone
			}
			if err := notifier.ScheduleReminder(ctx, b, timezone); err != nil {
				logger.Warn("reminder sweep failed to schedule",
					zap.String("bookingId", b.ID), zap.Error(err))
			}
		}
	}
}

// handleReminderTask delivers a booking reminder. A booking cancelled after
// the reminder was enqueued is silently dropped.
func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		var payload notification.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("reminder task has malformed payload", zap.Error(err))
			return nil // not retryable
		}

		booking, err := bookings.GetByID(ctx, payload.BookingID)
		if err != nil {
			logger.Warn("reminder for unknown booking",
				zap.String("bookingId", payload.BookingID), zap.Error(err))
			return nil
		}
		if booking.Status == models.BookingCancelled {
			return nil
		}

		logger.Info("booking reminder due",
			zap.String("bookingId", booking.ID),
			zap.String("userId", booking.UserID),
			zap.String("date", booking.Date),
			zap.String("slot", slotengine.FormatHour(payload.FirstHour)))
		return nil
	}
}
