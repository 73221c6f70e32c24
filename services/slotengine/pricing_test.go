package slotengine

import (
	"testing"

	"go.uber.org/zap"

	"courtside/models"
)

func fullDay() []HourRange { return []HourRange{{Start: 0, End: 24}} }

func TestResolvePricesPriorityOrdering(t *testing.T) {
	// Court-local date rule (10-12 @150) and court-local recurring Monday rule
	// (18-20 @120), no globals, evaluated on Monday 2026-02-23.
	courtRules := []models.PriceRule{
		{Dates: []string{"2026-02-23"}, SlotFrom: "10:00", SlotTo: "12:00", Price: 150},
		{Days: []string{"mon"}, SlotFrom: "18:00", SlotTo: "20:00", Price: 120},
	}
	prices := ResolvePrices(100, courtRules, nil, monday(), fullDay(), zap.NewNop())

	if prices[10] != 150 || prices[11] != 150 {
		t.Errorf("date rule not applied: 10=%v 11=%v", prices[10], prices[11])
	}
	if prices[12] == 150 {
		t.Error("slotTo must be exclusive")
	}
	if prices[18] != 120 || prices[19] != 120 {
		t.Errorf("recurring rule not applied: 18=%v 19=%v", prices[18], prices[19])
	}
	if prices[9] != 100 || prices[20] != 100 {
		t.Errorf("unmatched hours should keep base price: 9=%v 20=%v", prices[9], prices[20])
	}
}

func TestResolvePricesCourtOverridesGlobal(t *testing.T) {
	globals := []models.GlobalPriceRule{
		{ID: "global-1", IsActive: true, Rule: models.PriceRule{
			Days: []string{"mon"}, SlotFrom: "08:00", SlotTo: "12:00", Price: 90,
		}},
	}
	courtRules := []models.PriceRule{
		{Days: []string{"mon"}, SlotFrom: "10:00", SlotTo: "12:00", Price: 140},
	}
	prices := ResolvePrices(100, courtRules, globals, monday(), fullDay(), zap.NewNop())

	if prices[8] != 90 || prices[9] != 90 {
		t.Errorf("global rule not applied outside court override: 8=%v 9=%v", prices[8], prices[9])
	}
	if prices[10] != 140 || prices[11] != 140 {
		t.Errorf("court rule must override global in same tier: 10=%v 11=%v", prices[10], prices[11])
	}
}

func TestResolvePricesDateBeatsDay(t *testing.T) {
	globals := []models.GlobalPriceRule{
		{ID: "global-2", IsActive: true, Rule: models.PriceRule{
			Dates: []string{"2026-02-23"}, SlotFrom: "10:00", SlotTo: "12:00", Price: 70,
		}},
	}
	courtRules := []models.PriceRule{
		{Days: []string{"mon"}, SlotFrom: "10:00", SlotTo: "12:00", Price: 140},
	}
	prices := ResolvePrices(100, courtRules, globals, monday(), fullDay(), zap.NewNop())

	// A global date-specific rule outranks a court recurring rule.
	if prices[10] != 70 || prices[11] != 70 {
		t.Errorf("date-specific tier must beat recurring tier: 10=%v 11=%v", prices[10], prices[11])
	}
}

func TestResolvePricesInactiveGlobalIgnored(t *testing.T) {
	globals := []models.GlobalPriceRule{
		{ID: "global-3", IsActive: false, Rule: models.PriceRule{
			Days: []string{"mon"}, SlotFrom: "08:00", SlotTo: "10:00", Price: 10,
		}},
	}
	prices := ResolvePrices(100, nil, globals, monday(), fullDay(), zap.NewNop())
	if prices[8] != 100 {
		t.Errorf("inactive global rule must be ignored, got %v", prices[8])
	}
}

func TestResolvePricesMalformedRuleSkipped(t *testing.T) {
	courtRules := []models.PriceRule{
		{Days: []string{"mon"}, SlotFrom: "garbage", SlotTo: "12:00", Price: 150},
		{Days: []string{"mon"}, SlotFrom: "18:00", SlotTo: "20:00", Price: 120},
	}
	prices := ResolvePrices(100, courtRules, nil, monday(), fullDay(), zap.NewNop())

	// The malformed rule is dropped, the healthy one still applies.
	if prices[10] != 100 {
		t.Errorf("malformed rule should be skipped, got %v", prices[10])
	}
	if prices[18] != 120 {
		t.Errorf("healthy rule should still apply, got %v", prices[18])
	}
}

func TestResolvePricesOvernightWindow(t *testing.T) {
	courtRules := []models.PriceRule{
		{Days: []string{"mon"}, SlotFrom: "22:00", SlotTo: "02:00", Price: 80},
	}
	prices := ResolvePrices(100, courtRules, nil, monday(), fullDay(), zap.NewNop())

	for _, h := range []int{22, 23, 0, 1} {
		if prices[h] != 80 {
			t.Errorf("hour %d should be 80, got %v", h, prices[h])
		}
	}
	if prices[2] != 100 {
		t.Errorf("hour 2 should keep base price, got %v", prices[2])
	}
}

func TestResolvePricesNeverExtendsOpenRange(t *testing.T) {
	courtRules := []models.PriceRule{
		{Days: []string{"mon"}, SlotFrom: "06:00", SlotTo: "10:00", Price: 50},
	}
	prices := ResolvePrices(100, courtRules, nil, monday(), []HourRange{{Start: 8, End: 22}}, zap.NewNop())

	if _, ok := prices[6]; ok {
		t.Error("rule must not add hours outside operating range")
	}
	if prices[8] != 50 || prices[9] != 50 {
		t.Errorf("in-range hours should take rule price: 8=%v 9=%v", prices[8], prices[9])
	}
}

func TestResolvePricesFullWeekdayNames(t *testing.T) {
	courtRules := []models.PriceRule{
		{Days: []string{"Monday"}, SlotFrom: "08:00", SlotTo: "10:00", Price: 60},
	}
	prices := ResolvePrices(100, courtRules, nil, monday(), fullDay(), zap.NewNop())
	if prices[8] != 60 {
		t.Errorf("full weekday name should match, got %v", prices[8])
	}
}
