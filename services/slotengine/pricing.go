package slotengine

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"courtside/models"
)

// ruleScope classifies a rule by its scoping fields. Date-scoped rules take
// priority over day-scoped ones; a rule with neither is malformed.
type ruleScope int

const (
	scopeNone ruleScope = iota
	scopeDate
	scopeDay
)

func scopeOf(rule models.PriceRule) ruleScope {
	if len(rule.Dates) > 0 {
		return scopeDate
	}
	if len(rule.Days) > 0 {
		return scopeDay
	}
	return scopeNone
}

func matchesDate(dates []string, date time.Time) bool {
	target := date.Format(DateLayout)
	for _, d := range dates {
		if d == target {
			return true
		}
	}
	return false
}

// matchesDay accepts both short ("mon") and full ("monday") weekday names in
// any casing; rules written by older panel versions used full names.
func matchesDay(days []string, date time.Time) bool {
	target := ShortDay(date)
	for _, d := range days {
		d = strings.TrimSpace(d)
		if len(d) >= 3 && strings.EqualFold(d[:3], target) {
			return true
		}
	}
	return false
}

// ruleHours expands a rule's half-open [SlotFrom, SlotTo) window into the
// hours it covers, wrapping past midnight when SlotTo <= SlotFrom.
func ruleHours(rule models.PriceRule) ([]int, error) {
	from, err := ParseHour(rule.SlotFrom)
	if err != nil {
		return nil, err
	}
	to, err := ParseHour(rule.SlotTo)
	if err != nil {
		return nil, err
	}

	var hours []int
	if to > from {
		for h := from; h < to; h++ {
			hours = append(hours, h)
		}
		return hours, nil
	}
	// Overnight window, e.g. 22:00 -> 02:00.
	for h := from; h < 24; h++ {
		hours = append(hours, h)
	}
	for h := 0; h < to; h++ {
		hours = append(hours, h)
	}
	return hours, nil
}

// applyRule writes the rule's price onto every hour it covers, but only for
// hours already seeded from the venue's open range — rules never extend
// operating hours.
func applyRule(prices map[int]float64, rule models.PriceRule, logger *zap.Logger, origin string) {
	hours, err := ruleHours(rule)
	if err != nil {
		logger.Warn("skipping price rule with malformed hours",
			zap.String("origin", origin),
			zap.String("slotFrom", rule.SlotFrom),
			zap.String("slotTo", rule.SlotTo),
			zap.Error(err))
		return
	}
	if rule.Price < 0 {
		logger.Warn("skipping price rule with negative price",
			zap.String("origin", origin), zap.Float64("price", rule.Price))
		return
	}
	for _, h := range hours {
		if _, ok := prices[h]; ok {
			prices[h] = rule.Price
		}
	}
}

// ResolvePrices computes the per-hour price for every open hour. Layering,
// later tiers overwriting earlier ones for the same hour:
//
//  1. base price over the whole open range
//  2. global recurring (weekday) rules
//  3. court recurring rules
//  4. global date-specific rules
//  5. court date-specific rules
//
// More specific wins, and the court always has final say over platform
// defaults within the same specificity tier. Malformed rules are skipped
// individually so one bad admin entry cannot make a venue unpriceable.
func ResolvePrices(
	base float64,
	courtRules []models.PriceRule,
	globalRules []models.GlobalPriceRule,
	date time.Time,
	open []HourRange,
	logger *zap.Logger,
) map[int]float64 {
	prices := make(map[int]float64)
	for _, r := range open {
		for h := r.Start; h < r.End && h < 24; h++ {
			prices[h] = base
		}
	}

	// Tier 2: global recurring.
	for _, g := range globalRules {
		if !g.IsActive {
			continue
		}
		if scopeOf(g.Rule) == scopeDay && matchesDay(g.Rule.Days, date) {
			applyRule(prices, g.Rule, logger, "global:"+g.ID)
		}
	}
	// Tier 3: court recurring.
	for _, rule := range courtRules {
		if scopeOf(rule) == scopeDay && matchesDay(rule.Days, date) {
			applyRule(prices, rule, logger, "court")
		}
	}
	// Tier 4: global date-specific.
	for _, g := range globalRules {
		if !g.IsActive {
			continue
		}
		if scopeOf(g.Rule) == scopeDate && matchesDate(g.Rule.Dates, date) {
			applyRule(prices, g.Rule, logger, "global:"+g.ID)
		}
	}
	// Tier 5: court date-specific.
	for _, rule := range courtRules {
		if scopeOf(rule) == scopeDate && matchesDate(rule.Dates, date) {
			applyRule(prices, rule, logger, "court")
		}
	}

	return prices
}
