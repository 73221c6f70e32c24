package slotengine

import "testing"

func TestParseHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:00", 9},
		{"09:00:00", 9},
		{"09:00 AM", 9},
		{"9:00 am", 9},
		{" 09:00 ", 9},
		{"21:00", 21},
		{"21:00:00", 21},
		{"09:00 PM", 21},
		{"9:00PM", 21},
		{"12:00 AM", 0},
		{"12:30 AM", 0},
		{"00:00", 0},
		{"12:00 PM", 12},
		{"12:00", 12},
		{"23:59", 23},
		{"7", 7},
	}
	for _, tc := range cases {
		got, err := ParseHour(tc.in)
		if err != nil {
			t.Errorf("ParseHour(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHour(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseHourEquivalentSpellings(t *testing.T) {
	// All spellings of the same wall-clock hour must normalize identically:
	// stored bookings use 12-hour strings while availability uses 24-hour.
	groups := [][]string{
		{"09:00", "09:00:00", "09:00 AM", "9:00 am"},
		{"21:00", "21:00:00", "09:00 PM", "9:00 pm"},
		{"00:00", "12:00 AM", "00:00:00"},
		{"12:00", "12:00 PM"},
	}
	for _, group := range groups {
		first, err := ParseHour(group[0])
		if err != nil {
			t.Fatalf("ParseHour(%q): %v", group[0], err)
		}
		for _, s := range group[1:] {
			got, err := ParseHour(s)
			if err != nil {
				t.Fatalf("ParseHour(%q): %v", s, err)
			}
			if got != first {
				t.Errorf("ParseHour(%q) = %d, want %d (same as %q)", s, got, first, group[0])
			}
		}
	}
}

func TestParseHourInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "25:00", "-1:00", "13:00 PM", "0:00 AM", "noon"} {
		if _, err := ParseHour(in); err == nil {
			t.Errorf("ParseHour(%q) expected error, got none", in)
		} else if ErrorCode(err) != CodeInvalidTime {
			t.Errorf("ParseHour(%q) error code = %q, want %q", in, ErrorCode(err), CodeInvalidTime)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-23")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Weekday().String() != "Monday" {
		t.Errorf("2026-02-23 should be a Monday, got %s", d.Weekday())
	}
	if _, err := ParseDate("23/02/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestFormatHour(t *testing.T) {
	if got := FormatHour(9); got != "09:00" {
		t.Errorf("FormatHour(9) = %q", got)
	}
	if got := FormatHour(21); got != "21:00" {
		t.Errorf("FormatHour(21) = %q", got)
	}
}

func TestDisplayHour(t *testing.T) {
	cases := map[int]string{
		0:  "12:00 AM",
		9:  "09:00 AM",
		12: "12:00 PM",
		21: "09:00 PM",
	}
	for hour, want := range cases {
		if got := DisplayHour(hour); got != want {
			t.Errorf("DisplayHour(%d) = %q, want %q", hour, got, want)
		}
	}
}
