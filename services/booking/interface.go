package booking

import (
	"context"

	bookingRepo "courtside/database/repository/booking"
	courtRepo "courtside/database/repository/court"
	globalRuleRepo "courtside/database/repository/globalrule"
	venueRepo "courtside/database/repository/venue"
	"courtside/models"
	"courtside/services/notification"
	"courtside/services/payments"
)

// BookingService is the engine-backed surface used by the HTTP layer: the
// availability read path and the quote/create/cancel write path. Both paths
// price and validate against the same slot map.
type BookingService interface {
	GetAvailability(ctx context.Context, courtID, date string) ([]models.AvailableSlot, error)
	QuoteBooking(ctx context.Context, req BookingRequest) (*models.Quote, error)
	CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error)
	CreateBookingFromQuote(ctx context.Context, quoteID, userID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID string) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByCourt(ctx context.Context, courtID string) ([]models.Booking, error)
}

// BookingRequest is a client's ask: specific hours on a court and date.
type BookingRequest struct {
	CourtID string   `json:"courtId" binding:"required"`
	Date    string   `json:"date" binding:"required"`
	Hours   []string `json:"hours" binding:"required"` // "HH:MM" or "HH:MM AM/PM"
	Players int      `json:"players"`
	UserID  string   `json:"-"`
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	CourtRepo    courtRepo.CourtRepository
	VenueRepo    venueRepo.VenueRepository
	GlobalRepo   globalRuleRepo.GlobalRuleRepository
	BookingRepo  bookingRepo.BookingRepository
	Quotes       QuoteStore
	Payments     payments.PaymentService
	Notification notification.NotificationService
}
