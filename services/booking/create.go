package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "courtside/database/repository/booking"
	"courtside/models"
	"courtside/services/slotengine"
	"courtside/utils"
)

// CreateBooking prices and persists a booking straight from a request. The
// admission decision happens inside the storage transaction: the slot map is
// authoritative for price and block status, and the conflict check re-runs
// against the bookings visible at insert time.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	hours, err := parseRequestedHours(req.Hours)
	if err != nil {
		return nil, err
	}
	return s.createBooking(ctx, req.CourtID, req.Date, hours, req.Players, req.UserID, nil)
}

// CreateBookingFromQuote books the hours of a previously issued quote at the
// quoted price. The quote is consumed on success.
func (s *DefaultBookingService) CreateBookingFromQuote(ctx context.Context, quoteID, userID string) (*models.Booking, error) {
	quote, err := s.Quotes.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.UserID != "" && quote.UserID != userID {
		return nil, fmt.Errorf("quote %s does not belong to this user", quoteID)
	}

	booking, err := s.createBooking(ctx, quote.CourtID, quote.Date, quote.Hours, quote.Players, userID, quote)
	if err != nil {
		return nil, err
	}
	if err := s.Quotes.Delete(ctx, quoteID); err != nil {
		utils.GetLogger().Warn("failed to delete consumed quote", zap.String("quoteId", quoteID), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultBookingService) createBooking(ctx context.Context, courtID, date string, hours []int, players int, userID string, quoted *models.Quote) (*models.Booking, error) {
	logger := utils.GetLogger()

	if len(hours) == 0 {
		return nil, fmt.Errorf("no hours requested")
	}

	slots, occupied, court, venue, err := s.loadSlotContext(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	// First pass outside the transaction for a fast, friendly rejection.
	if err := slotengine.ValidateBooking(slots, occupied, hours); err != nil {
		return nil, err
	}
	total, _, err := slotengine.QuotePrice(slots, hours, players)
	if err != nil {
		return nil, err
	}

	// An unexpired quote pins the amount: the price shown at quote time is
	// the price charged, even when rules changed inside the quote's TTL.
	if quoted != nil && quoted.TotalPrice != total {
		logger.Warn("price changed since quote, charging quoted amount",
			zap.String("quoteId", quoted.QuoteID),
			zap.Float64("quoted", quoted.TotalPrice),
			zap.Float64("current", total))
		total = quoted.TotalPrice
	}

	timeSlots := make([]models.BookedSlot, len(hours))
	for i, h := range hours {
		timeSlots[i] = models.BookedSlot{StartTime: slotengine.FormatHour(h), Hour: h}
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		CourtID:    court.ID,
		VenueID:    venue.ID,
		UserID:     userID,
		Date:       date,
		TimeSlots:  timeSlots,
		Hours:      hours,
		Players:    players,
		TotalPrice: total,
		Currency:   s.currency(venue),
		Status:     models.BookingPending,
	}

	// The decisive check runs inside the transaction against the bookings
	// visible there; the unique index catches anything that still slips
	// through.
	revalidate := func(current []models.Booking) error {
		return slotengine.ValidateBooking(slots, slotengine.OccupiedHours(current, logger), hours)
	}
	if err := s.BookingRepo.CreateWithConflictCheck(ctx, booking, revalidate); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, &slotengine.SlotError{
				Code: slotengine.CodeSlotConflict, Hour: hours[0],
				Message: "slot was booked by another request",
			}
		}
		return nil, err
	}

	if s.Payments != nil {
		ref, err := s.Payments.CreateIntent(ctx, booking.TotalPrice, booking.Currency, booking.ID, userID)
		if err != nil {
			// The slots are held; payment can be retried against the booking.
			logger.Error("failed to create payment intent",
				zap.String("bookingId", booking.ID), zap.Error(err))
		} else {
			booking.PaymentRef = ref
			booking.Status = models.BookingConfirmed
			if err := s.BookingRepo.SetStatus(ctx, booking.ID, models.BookingConfirmed); err != nil {
				logger.Error("failed to confirm booking status",
					zap.String("bookingId", booking.ID), zap.Error(err))
			}
		}
	}

	if s.Notification != nil {
		if err := s.Notification.BookingConfirmed(ctx, booking, venue.Name); err != nil {
			logger.Warn("failed to send booking confirmation",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
		if err := s.Notification.ScheduleReminder(ctx, booking, venue.Timezone); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("courtId", booking.CourtID),
		zap.String("date", booking.Date),
		zap.Ints("hours", booking.Hours),
		zap.Float64("totalPrice", booking.TotalPrice))
	return booking, nil
}

// CancelBooking releases the booking's hours. Only the owning user may
// cancel.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, userID string) error {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return fmt.Errorf("booking %s does not belong to this user", bookingID)
	}
	if booking.Status == models.BookingCancelled {
		return nil
	}
	return s.BookingRepo.Cancel(ctx, bookingID)
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.BookingRepo.GetByID(ctx, bookingID)
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByUser(ctx, userID)
}

func (s *DefaultBookingService) ListByCourt(ctx context.Context, courtID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByCourt(ctx, courtID)
}
