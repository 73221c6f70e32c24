package slotengine

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"courtside/models"
)

// SlotInfo is the resolved state of one bookable hour.
type SlotInfo struct {
	Price   float64 `json:"price"`
	Blocked bool    `json:"isBlocked"`
}

// SlotMap maps a normalized hour to its resolved price and block status for
// one (court, date) pair. It is recomputed from current configuration on
// every request and never persisted.
//
// An hour absent from the map is outside operating hours and is never offered
// nor bookable — availability is an allow-list, not a deny-list over the full
// day. An empty map means the venue is closed on that date.
type SlotMap map[int]SlotInfo

// Hours returns the map's hours in ascending order.
func (m SlotMap) Hours() []int {
	hours := make([]int, 0, len(m))
	for h := range m {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// BuildSlotMap is the single source of truth for a (court, date) pair: the
// availability endpoint renders this map, and booking validation prices
// against the same map, so a displayed price can never diverge from the
// charged price.
func BuildSlotMap(
	court models.Court,
	venue models.Venue,
	globalRules []models.GlobalPriceRule,
	date time.Time,
	logger *zap.Logger,
) SlotMap {
	open, ok := ResolveHours(venue.OpeningHours, date)
	if !ok {
		return SlotMap{}
	}

	prices := ResolvePrices(court.PricePerHour, court.PriceRules, globalRules, date, open, logger)
	blocked := ResolveBlockedHours(court.BlockedRules, date, logger)

	slots := make(SlotMap, len(prices))
	for hour, price := range prices {
		_, isBlocked := blocked[hour]
		slots[hour] = SlotInfo{Price: price, Blocked: isBlocked}
	}
	return slots
}
