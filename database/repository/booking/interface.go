// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"courtside/database"
	"courtside/models"
)

// RevalidateFunc re-checks a booking request against the bookings that exist
// at transaction time. Returning an error aborts the insert.
type RevalidateFunc func(current []models.Booking) error

type BookingRepository interface {
	// CreateWithConflictCheck inserts a booking inside a session transaction:
	// it re-reads the active bookings for the booking's (court, date), calls
	// revalidate on them, and only then inserts. The unique (courtId, date,
	// hours) index backstops the transaction, so a lost race surfaces as a
	// duplicate-key error.
	CreateWithConflictCheck(ctx context.Context, booking *models.Booking, revalidate RevalidateFunc) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetActiveByCourtAndDate(ctx context.Context, courtID, date string) ([]models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetByCourt(ctx context.Context, courtID string) ([]models.Booking, error)
	GetUpcoming(ctx context.Context, date string) ([]models.Booking, error)
	SetStatus(ctx context.Context, id, status string) error
	Cancel(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository and ensures
// its indexes.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{coll: database.DB().Collection("bookings")}
	repo.ensureIndexes()
	return repo
}
