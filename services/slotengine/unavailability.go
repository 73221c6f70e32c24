package slotengine

import (
	"time"

	"go.uber.org/zap"

	"courtside/models"
)

// ResolveBlockedHours merges the court's blocking rules into the set of hours
// that are admin-blocked on the given date. Scoping works exactly like price
// rules (date-specific or recurring weekday), and a blocked hour wins over
// any price rule. Malformed time entries are skipped one by one.
func ResolveBlockedHours(rules []models.UnavailabilityRule, date time.Time, logger *zap.Logger) map[int]struct{} {
	blocked := make(map[int]struct{})

	for _, rule := range rules {
		matched := false
		switch {
		case len(rule.Dates) > 0:
			matched = matchesDate(rule.Dates, date)
		case len(rule.Days) > 0:
			matched = matchesDay(rule.Days, date)
		default:
			logger.Warn("skipping unavailability rule without dates or days",
				zap.String("ruleId", rule.ID))
		}
		if !matched {
			continue
		}

		for _, t := range rule.Times {
			hour, err := ParseHour(t)
			if err != nil {
				logger.Warn("skipping malformed blocked time",
					zap.String("ruleId", rule.ID),
					zap.String("time", t),
					zap.Error(err))
				continue
			}
			blocked[hour] = struct{}{}
		}
	}
	return blocked
}
