package slotengine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// ParseHour normalizes a wall-clock time string to an hour in [0, 23].
// Accepted forms: "HH:MM", "HH:MM:SS" and "HH:MM AM/PM" (case-insensitive,
// surrounding whitespace tolerated). A bare hour ("21") is accepted too since
// some admin panels stored times that way. "12:00 AM" is 0, "12:00 PM" is 12.
//
// Every place the engine compares hours goes through this function, so two
// spellings of the same wall-clock hour always normalize identically — a
// booking stored as "09:00 PM" collides with the availability slot "21:00".
func ParseHour(value string) (int, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, newSlotError(CodeInvalidTime, 0, "empty time string")
	}

	upper := strings.ToUpper(s)
	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix
			upper = strings.TrimSpace(strings.TrimSuffix(upper, suffix))
			break
		}
	}

	hourToken := upper
	if idx := strings.Index(upper, ":"); idx >= 0 {
		hourToken = upper[:idx]
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourToken))
	if err != nil {
		return 0, newSlotError(CodeInvalidTime, 0, "cannot parse hour from %q", value)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, newSlotError(CodeInvalidTime, 0, "hour %d out of range for AM time %q", hour, value)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, newSlotError(CodeInvalidTime, 0, "hour %d out of range for PM time %q", hour, value)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, newSlotError(CodeInvalidTime, 0, "hour %d out of range in %q", hour, value)
		}
	}
	return hour, nil
}

// ParseDate parses a strict "YYYY-MM-DD" booking date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, newSlotError(CodeInvalidDate, 0, "date %q is not in YYYY-MM-DD format", value)
	}
	return d, nil
}

// FormatHour renders a normalized hour as the canonical "HH:00" slot key.
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// DisplayHour renders a normalized hour in 12-hour form for UI labels.
func DisplayHour(hour int) string {
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:00 %s", display, suffix)
}
