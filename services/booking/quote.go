package booking

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courtside/config"
	"courtside/models"
	"courtside/services/slotengine"
	"courtside/utils"
)

// parseRequestedHours normalizes the request's hour strings. Unlike admin
// rules, client input gets no partial tolerance: one bad hour fails the whole
// request.
func parseRequestedHours(raw []string) ([]int, error) {
	hours := make([]int, 0, len(raw))
	seen := make(map[int]struct{})
	for _, s := range raw {
		h, err := slotengine.ParseHour(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours, nil
}

// QuoteBooking validates the requested hours and prices them off the slot
// map, then caches the result so confirmation charges exactly this amount.
func (s *DefaultBookingService) QuoteBooking(ctx context.Context, req BookingRequest) (*models.Quote, error) {
	logger := utils.GetLogger()

	hours, err := parseRequestedHours(req.Hours)
	if err != nil {
		return nil, err
	}

	slots, occupied, court, venue, err := s.loadSlotContext(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}
	if err := slotengine.ValidateBooking(slots, occupied, hours); err != nil {
		return nil, err
	}

	total, perHour, err := slotengine.QuotePrice(slots, hours, req.Players)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		QuoteID:    uuid.New().String(),
		CourtID:    court.ID,
		VenueID:    venue.ID,
		UserID:     req.UserID,
		Date:       req.Date,
		Hours:      hours,
		Players:    req.Players,
		HourPrices: perHour,
		TotalPrice: total,
		Currency:   s.currency(venue),
	}

	ttl := time.Duration(config.AppConfig.QuoteTTLMinutes) * time.Minute
	if err := s.Quotes.Save(ctx, quote, ttl); err != nil {
		// A quote that fails to cache is still a valid answer; the client
		// falls back to booking by hours.
		logger.Warn("failed to cache quote", zap.String("quoteId", quote.QuoteID), zap.Error(err))
	}
	return quote, nil
}
