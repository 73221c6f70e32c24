package slotengine

import (
	"testing"

	"go.uber.org/zap"

	"courtside/models"
)

func testVenue(hours map[string]models.DayHours) models.Venue {
	return models.Venue{ID: "venue-1", Name: "Arena", OpeningHours: hours}
}

func TestBuildSlotMapClosedDayIsEmpty(t *testing.T) {
	venue := testVenue(map[string]models.DayHours{
		"monday": {IsActive: false, Open: "08:00", Close: "22:00"},
	})
	court := models.Court{
		ID: "court-1", VenueID: venue.ID, PricePerHour: 100,
		// Rules configured for the day must not resurrect it.
		PriceRules: []models.PriceRule{
			{Days: []string{"mon"}, SlotFrom: "08:00", SlotTo: "10:00", Price: 50},
		},
		BlockedRules: []models.UnavailabilityRule{
			{Days: []string{"mon"}, Times: []string{"09:00"}},
		},
	}
	slots := BuildSlotMap(court, venue, nil, monday(), zap.NewNop())
	if len(slots) != 0 {
		t.Fatalf("closed day must yield an empty map, got %d slots", len(slots))
	}
}

func TestBuildSlotMapBlockingWinsOverPricing(t *testing.T) {
	venue := testVenue(map[string]models.DayHours{
		"monday": {IsActive: true, Open: "08:00", Close: "22:00"},
	})
	court := models.Court{
		ID: "court-1", VenueID: venue.ID, PricePerHour: 100,
		PriceRules: []models.PriceRule{
			{Dates: []string{"2026-02-23"}, SlotFrom: "09:00", SlotTo: "10:00", Price: 150},
		},
		BlockedRules: []models.UnavailabilityRule{
			{Dates: []string{"2026-02-23"}, Times: []string{"09:00"}},
		},
	}
	slots := BuildSlotMap(court, venue, nil, monday(), zap.NewNop())

	info, ok := slots[9]
	if !ok {
		t.Fatal("blocked in-range hour must stay in the map")
	}
	if !info.Blocked {
		t.Error("hour 9 should be flagged blocked")
	}
	if info.Price != 150 {
		t.Errorf("blocked hour keeps its resolved price, got %v", info.Price)
	}
	if err := ValidateBooking(slots, nil, []int{9}); ErrorCode(err) != CodeSlotBlocked {
		t.Errorf("booking a blocked hour must fail with slotBlocked, got %v", err)
	}
}

func TestBuildSlotMapStrictAllowList(t *testing.T) {
	venue := testVenue(map[string]models.DayHours{
		"monday": {IsActive: true, Open: "08:00", Close: "22:00"},
	})
	court := models.Court{ID: "court-1", VenueID: venue.ID, PricePerHour: 100}
	slots := BuildSlotMap(court, venue, nil, monday(), zap.NewNop())

	if len(slots) != 14 {
		t.Fatalf("expected 14 hours (08..21), got %d", len(slots))
	}
	for _, h := range []int{7, 22, 23, 0} {
		if _, ok := slots[h]; ok {
			t.Errorf("hour %d is outside operating hours and must be absent", h)
		}
	}
	if err := ValidateBooking(slots, nil, []int{7}); ErrorCode(err) != CodeVenueClosed {
		t.Errorf("out-of-range hour must fail with venueClosed, got %v", err)
	}
}

// The end-to-end scenario: base 100, Monday 08:00-22:00, global recurring
// Mon 08-10 @90, court date rule 2026-02-23 10-12 @150, existing booking at
// 11:00.
func TestBuildSlotMapEndToEnd(t *testing.T) {
	venue := testVenue(map[string]models.DayHours{
		"monday": {IsActive: true, Open: "08:00", Close: "22:00"},
	})
	court := models.Court{
		ID: "court-1", VenueID: venue.ID, PricePerHour: 100,
		PriceRules: []models.PriceRule{
			{Dates: []string{"2026-02-23"}, SlotFrom: "10:00", SlotTo: "12:00", Price: 150},
		},
	}
	globals := []models.GlobalPriceRule{
		{ID: "global-1", IsActive: true, Rule: models.PriceRule{
			Days: []string{"mon"}, SlotFrom: "08:00", SlotTo: "10:00", Price: 90,
		}},
	}
	bookings := []models.Booking{
		{ID: "b-1", CourtID: court.ID, Date: "2026-02-23", Status: models.BookingConfirmed,
			TimeSlots: []models.BookedSlot{{StartTime: "11:00", Hour: 11}}},
	}

	logger := zap.NewNop()
	slots := BuildSlotMap(court, venue, globals, monday(), logger)
	occupied := OccupiedHours(bookings, logger)

	if slots[8].Price != 90 || slots[9].Price != 90 {
		t.Errorf("08-10 should take global price 90: 8=%v 9=%v", slots[8].Price, slots[9].Price)
	}
	if slots[10].Price != 150 {
		t.Errorf("10:00 should take court date price 150, got %v", slots[10].Price)
	}
	for h := 12; h < 22; h++ {
		if slots[h].Price != 100 {
			t.Errorf("hour %d should keep base price 100, got %v", h, slots[h].Price)
		}
	}

	if err := ValidateBooking(slots, occupied, []int{11}); !IsConflict(err) {
		t.Errorf("11:00 is booked, expected conflict, got %v", err)
	}
	if err := ValidateBooking(slots, occupied, []int{10}); err != nil {
		t.Errorf("10:00 should be bookable, got %v", err)
	}
	if err := ValidateBooking(slots, occupied, []int{12}); err != nil {
		t.Errorf("12:00 should be bookable, got %v", err)
	}
}
