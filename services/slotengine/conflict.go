package slotengine

import (
	"go.uber.org/zap"

	"courtside/models"
)

// OccupiedHours collects the normalized hours held by the given bookings.
// Cancelled bookings release their hours; everything else occupies them
// exclusively. Slots whose stored time cannot be parsed are logged and
// treated as occupied under their pre-normalized Hour field when present —
// an unreadable booking must never silently free a slot.
func OccupiedHours(bookings []models.Booking, logger *zap.Logger) map[int]struct{} {
	occupied := make(map[int]struct{})
	for _, b := range bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		for _, slot := range b.TimeSlots {
			hour, err := ParseHour(slot.StartTime)
			if err != nil {
				logger.Warn("booking has unparseable slot time, using stored hour",
					zap.String("bookingId", b.ID),
					zap.String("startTime", slot.StartTime),
					zap.Error(err))
				hour = slot.Hour
			}
			occupied[hour] = struct{}{}
		}
	}
	return occupied
}

// ValidateBooking checks every requested hour against the slot map and the
// occupied set. It fails on the first problem, identifying the hour:
//
//   - venueClosed: the hour is not in the map (outside operating hours, or
//     the venue is closed that day)
//   - slotBlocked: admin-blocked window
//   - slotConflict: an existing non-cancelled booking holds the hour
//
// The availability read path uses the same predicates to filter; only the
// booking write path fails hard on them.
func ValidateBooking(slots SlotMap, occupied map[int]struct{}, requestedHours []int) error {
	for _, hour := range requestedHours {
		info, ok := slots[hour]
		if !ok {
			return newSlotError(CodeVenueClosed, hour, "slot %s is outside the venue's operating hours", FormatHour(hour))
		}
		if info.Blocked {
			return newSlotError(CodeSlotBlocked, hour, "slot %s is blocked by the venue", FormatHour(hour))
		}
		if _, taken := occupied[hour]; taken {
			return newSlotError(CodeSlotConflict, hour, "slot %s is already booked", FormatHour(hour))
		}
	}
	return nil
}

// QuotePrice sums the slot-map price of every requested hour and multiplies
// by the player count (venues charge per player per slot, floor of one
// player). It assumes the hours were already validated.
func QuotePrice(slots SlotMap, requestedHours []int, players int) (float64, map[int]float64, error) {
	if players < 1 {
		players = 1
	}
	perHour := make(map[int]float64, len(requestedHours))
	total := 0.0
	for _, hour := range requestedHours {
		info, ok := slots[hour]
		if !ok {
			return 0, nil, newSlotError(CodeVenueClosed, hour, "slot %s is outside the venue's operating hours", FormatHour(hour))
		}
		price := info.Price * float64(players)
		perHour[hour] = price
		total += price
	}
	return total, perHour, nil
}
