package models

import "time"

// Booking statuses. Anything other than cancelled occupies its hours
// exclusively.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// BookedSlot is one occupied hour inside a booking. StartTime is kept as the
// original wall-clock string ("21:00" or "09:00 PM"); Hour is the normalized
// form actually used for conflict checks.
type BookedSlot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	Hour      int    `bson:"hour" json:"hour"`
}

// Booking is a confirmed (or pending-payment) reservation of one or more
// hourly slots on a single court and date.
type Booking struct {
	ID         string       `bson:"id" json:"id"`
	CourtID    string       `bson:"courtId" json:"courtId"`
	VenueID    string       `bson:"venueId" json:"venueId"`
	UserID     string       `bson:"userId" json:"userId"`
	Date       string       `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlots  []BookedSlot `bson:"timeSlots" json:"timeSlots"`
	Hours      []int        `bson:"hours" json:"hours"` // normalized, unique-indexed with (courtId, date)
	Players    int          `bson:"players" json:"players"`
	TotalPrice float64      `bson:"totalPrice" json:"totalPrice"`
	Currency   string       `bson:"currency,omitempty" json:"currency,omitempty"`
	Status     string       `bson:"status" json:"status"`
	PaymentRef string       `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	CreatedAt  time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time    `bson:"updatedAt" json:"updatedAt"`
}
