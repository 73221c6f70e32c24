package notification

import (
	"testing"
	"time"
)

func TestReminderTimeUsesVenueTimezone(t *testing.T) {
	utc, err := reminderTime("2026-02-23", 10, "")
	if err != nil {
		t.Fatalf("reminderTime: %v", err)
	}
	if got := utc.UTC().Format("15:04"); got != "09:00" {
		t.Errorf("UTC reminder at %s, want 09:00 (one hour before the slot)", got)
	}

	// Kolkata is UTC+5:30; local 09:00 is 03:30 UTC.
	kolkata, err := reminderTime("2026-02-23", 10, "Asia/Kolkata")
	if err != nil {
		t.Fatalf("reminderTime: %v", err)
	}
	if diff := utc.Sub(kolkata); diff != 5*time.Hour+30*time.Minute {
		t.Errorf("Kolkata reminder offset = %v, want 5h30m earlier than UTC", diff)
	}
}

func TestReminderTimeUnknownTimezoneFallsBackToUTC(t *testing.T) {
	got, err := reminderTime("2026-02-23", 10, "Mars/Olympus_Mons")
	if err != nil {
		t.Fatalf("reminderTime: %v", err)
	}
	want, _ := reminderTime("2026-02-23", 10, "")
	if !got.Equal(want) {
		t.Errorf("unknown timezone resolved to %v, want UTC %v", got, want)
	}
}

func TestReminderTimeBadDate(t *testing.T) {
	if _, err := reminderTime("23-02-2026", 10, ""); err == nil {
		t.Error("malformed date must be rejected")
	}
}
