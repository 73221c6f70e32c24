package models

// AvailableSlot is the availability endpoint's view of one bookable hour.
type AvailableSlot struct {
	SlotID      string  `json:"slotId"`
	Time        string  `json:"time"`        // "HH:00", 24-hour
	DisplayTime string  `json:"displayTime"` // "hh:00 AM/PM"
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

// Quote is a priced booking proposal. It is cached under QuoteID so the
// amount charged at confirmation is exactly the amount shown here.
type Quote struct {
	QuoteID    string          `json:"quoteId"`
	CourtID    string          `json:"courtId"`
	VenueID    string          `json:"venueId"`
	UserID     string          `json:"userId,omitempty"`
	Date       string          `json:"date"`
	Hours      []int           `json:"hours"`
	Players    int             `json:"players"`
	HourPrices map[int]float64 `json:"hourPrices"`
	TotalPrice float64         `json:"totalPrice"`
	Currency   string          `json:"currency"`
}
