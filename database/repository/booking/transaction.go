// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/models"
)

// ErrDuplicateSlot is returned when the unique index rejects the insert,
// i.e. a concurrent request claimed one of the hours after revalidation.
var ErrDuplicateSlot = fmt.Errorf("booking slot already taken")

func (r *mongoBookingRepo) CreateWithConflictCheck(ctx context.Context, booking *models.Booking, revalidate RevalidateFunc) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		// Re-read inside the transaction so the check and the insert see the
		// same snapshot.
		filter := bson.M{
			"courtId": booking.CourtID,
			"date":    booking.Date,
			"status":  bson.M{"$ne": models.BookingCancelled},
		}
		cursor, err := r.coll.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("re-reading bookings failed: %w", err)
		}
		var current []models.Booking
		if err := cursor.All(sc, &current); err != nil {
			return fmt.Errorf("decoding bookings failed: %w", err)
		}

		if err := revalidate(current); err != nil {
			return err
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateSlot
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
