// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetActiveByCourtAndDate returns the non-cancelled bookings occupying hours
// on the given court and date.
func (r *mongoBookingRepo) GetActiveByCourtAndDate(ctx context.Context, courtID, date string) ([]models.Booking, error) {
	filter := bson.M{
		"courtId": courtID,
		"date":    date,
		"status":  bson.M{"$ne": models.BookingCancelled},
	}
	return r.find(ctx, filter, nil)
}

func (r *mongoBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.M{"date": -1}))
}

func (r *mongoBookingRepo) GetByCourt(ctx context.Context, courtID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"courtId": courtID}, options.Find().SetSort(bson.M{"date": -1}))
}

// GetUpcoming returns confirmed bookings on the given date, used by the
// reminder worker.
func (r *mongoBookingRepo) GetUpcoming(ctx context.Context, date string) ([]models.Booking, error) {
	filter := bson.M{"date": date, "status": models.BookingConfirmed}
	return r.find(ctx, filter, nil)
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) SetStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Cancel marks the booking cancelled and unsets its hours so the unique
// (courtId, date, hours) index frees the slots. The original wall-clock
// strings stay in timeSlots for history.
func (r *mongoBookingRepo) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set":   bson.M{"status": models.BookingCancelled, "updatedAt": time.Now()},
		"$unset": bson.M{"hours": ""},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
