package slotengine

import (
	"strings"
	"time"

	"courtside/models"
)

// HourRange is a half-open [Start, End) range of hours; End may be 24.
type HourRange struct {
	Start int
	End   int
}

// Contains reports whether hour falls inside the range.
func (r HourRange) Contains(hour int) bool {
	return hour >= r.Start && hour < r.End
}

// dayKeys returns the spellings tried when looking a weekday up in admin
// opening-hours config: "monday", "mon", "Monday". Admin data entry has been
// inconsistent across panel versions.
func dayKeys(date time.Time) []string {
	full := strings.ToLower(date.Weekday().String())
	short := full[:3]
	capitalized := strings.ToUpper(full[:1]) + full[1:]
	return []string{full, short, capitalized}
}

// ShortDay returns the lowercase three-letter weekday key ("mon") used by
// recurring rules.
func ShortDay(date time.Time) string {
	return strings.ToLower(date.Weekday().String())[:3]
}

// isActive interprets the loosely-typed isActive field. A day entry that
// exists but carries no flag counts as active; creating the entry is the
// admin's opt-in.
func isActive(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return !strings.EqualFold(strings.TrimSpace(v), "false")
	case nil:
		return true
	default:
		return true
	}
}

// ResolveHours returns the active hour ranges for the venue on the given
// date, or ok=false when the venue is closed that day.
//
// A weekday with no entry at all is closed: days are allow-listed, an admin
// must opt each one in. An active entry with missing or equal open/close
// times is a full 24-hour day, so round-the-clock venues need no hour values.
// Overnight hours (close before open) split into two ranges around midnight.
func ResolveHours(opening map[string]models.DayHours, date time.Time) ([]HourRange, bool) {
	var entry models.DayHours
	found := false
	for _, key := range dayKeys(date) {
		if e, ok := opening[key]; ok {
			entry = e
			found = true
			break
		}
	}
	if !found || !isActive(entry.IsActive) {
		return nil, false
	}

	start, errOpen := ParseHour(entry.Open)
	end, errClose := ParseHour(entry.Close)
	if entry.Open == "" || entry.Close == "" || errOpen != nil || errClose != nil || start == end {
		return []HourRange{{Start: 0, End: 24}}, true
	}

	if end < start {
		return []HourRange{{Start: start, End: 24}, {Start: 0, End: end}}, true
	}
	return []HourRange{{Start: start, End: end}}, true
}
