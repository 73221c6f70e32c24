package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/slotengine"
)

// Task type handled by the reminder worker in cron/.
const TypeBookingReminder = "booking:reminder"

// ReminderPayload is the asynq task body for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	VenueName string `json:"venueName,omitempty"`
	Date      string `json:"date"`
	FirstHour int    `json:"firstHour"`
}

// NotificationService is the delivery boundary. Actual channels (push, SMS,
// email) live behind it; the booking flow only announces events. The timezone
// is the venue's IANA name: reminders fire relative to the venue's wall
// clock, not the server's.
type NotificationService interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking, venueName string) error
	ScheduleReminder(ctx context.Context, booking *models.Booking, timezone string) error
}

// DefaultNotificationService logs confirmations and enqueues reminders on the
// asynq queue consumed by the cron worker.
type DefaultNotificationService struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func (n *DefaultNotificationService) BookingConfirmed(ctx context.Context, booking *models.Booking, venueName string) error {
	n.Logger.Info("booking confirmed notification",
		zap.String("bookingId", booking.ID),
		zap.String("userId", booking.UserID),
		zap.String("venue", venueName),
		zap.String("date", booking.Date))
	return nil
}

// reminderTime returns the instant one hour before the slot starts. The date
// and hour are wall-clock values in the venue's timezone; an empty or unknown
// timezone resolves as UTC.
func reminderTime(date string, hour int, timezone string) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	day, err := time.ParseInLocation(slotengine.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("reminder date %q is not in YYYY-MM-DD format", date)
	}
	return day.Add(time.Duration(hour)*time.Hour - time.Hour), nil
}

// ScheduleReminder enqueues a reminder task an hour before the booking's
// first slot, in the venue's local time. Bookings already inside that window
// get no reminder. Task IDs derive from the booking ID, so re-scheduling the
// same booking is a no-op.
func (n *DefaultNotificationService) ScheduleReminder(ctx context.Context, booking *models.Booking, timezone string) error {
	if n.Client == nil || len(booking.Hours) == 0 {
		return nil
	}

	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			n.Logger.Warn("unknown venue timezone, scheduling reminder in UTC",
				zap.String("bookingId", booking.ID),
				zap.String("timezone", timezone))
		}
	}

	firstHour := booking.Hours[0]
	remindAt, err := reminderTime(booking.Date, firstHour, timezone)
	if err != nil {
		return err
	}
	if remindAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Date:      booking.Date,
		FirstHour: firstHour,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	_, err = n.Client.EnqueueContext(ctx, task,
		asynq.ProcessAt(remindAt),
		asynq.TaskID("reminder:"+booking.ID))
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	n.Logger.Info("booking reminder scheduled",
		zap.String("bookingId", booking.ID),
		zap.Time("remindAt", remindAt))
	return nil
}
