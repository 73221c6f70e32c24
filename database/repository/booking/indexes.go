// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the uniqueness guard for double bookings. "hours" is
// a multikey field, so the unique compound index rejects any second document
// carrying the same (courtId, date, hour) element. Cancelling a booking
// unsets "hours" (the original times stay in timeSlots for history), which
// releases the index entries.
func (r *mongoBookingRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "courtId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "hours", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_court_date_hour").
				SetPartialFilterExpression(bson.M{"hours": bson.M{"$exists": true}}),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_booking_id"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("user_date"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("failed to ensure booking indexes: %v", err)
	}
}
