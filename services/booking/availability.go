package booking

import (
	"context"
	"fmt"

	"courtside/config"
	"courtside/models"
	"courtside/services/slotengine"
	"courtside/utils"
)

// loadSlotContext fetches everything the engine needs for one (court, date)
// pair and builds the slot map plus the occupied-hour set.
func (s *DefaultBookingService) loadSlotContext(ctx context.Context, courtID, date string) (slotengine.SlotMap, map[int]struct{}, *models.Court, *models.Venue, error) {
	logger := utils.GetLogger()

	day, err := slotengine.ParseDate(date)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	court, err := s.CourtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch court %s: %w", courtID, err)
	}
	venue, err := s.VenueRepo.GetByID(ctx, court.VenueID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch venue %s: %w", court.VenueID, err)
	}
	globals, err := s.GlobalRepo.GetActive(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch global price rules: %w", err)
	}
	bookings, err := s.BookingRepo.GetActiveByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	slots := slotengine.BuildSlotMap(*court, *venue, globals, day, logger)
	occupied := slotengine.OccupiedHours(bookings, logger)
	return slots, occupied, court, venue, nil
}

// GetAvailability renders the slot map for the client. Hours held by an
// existing booking are dropped from the response; admin-blocked hours stay
// visible but unavailable. An empty result means the venue is closed or has
// nothing left on that date.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, courtID, date string) ([]models.AvailableSlot, error) {
	slots, occupied, _, _, err := s.loadSlotContext(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	result := make([]models.AvailableSlot, 0, len(slots))
	for _, hour := range slots.Hours() {
		if _, taken := occupied[hour]; taken {
			continue
		}
		info := slots[hour]
		result = append(result, models.AvailableSlot{
			SlotID:      fmt.Sprintf("%s_%s_%02d", courtID, date, hour),
			Time:        slotengine.FormatHour(hour),
			DisplayTime: slotengine.DisplayHour(hour),
			Price:       info.Price,
			Available:   !info.Blocked,
		})
	}
	return result, nil
}

func (s *DefaultBookingService) currency(venue *models.Venue) string {
	if venue.Currency != "" {
		return venue.Currency
	}
	return config.AppConfig.DefaultCurrency
}
