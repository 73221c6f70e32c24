// File: database/repository/court/court_mongo.go
package courtRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/models"
)

func (r *mongoCourtRepo) Create(ctx context.Context, court *models.Court) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if court.ID == "" {
		court.ID = uuid.New().String()
	}
	now := time.Now()
	court.CreatedAt = now
	court.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, court)
	return err
}

func (r *mongoCourtRepo) GetByID(ctx context.Context, id string) (*models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var court models.Court
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *mongoCourtRepo) GetByVenue(ctx context.Context, venueID string) ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"venueId": venueID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *mongoCourtRepo) Update(ctx context.Context, court *models.Court) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	court.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": court.ID}, court)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCourtRepo) SetPriceRules(ctx context.Context, id string, rules []models.PriceRule) error {
	return r.setField(ctx, id, "priceRules", rules)
}

func (r *mongoCourtRepo) SetBlockedRules(ctx context.Context, id string, rules []models.UnavailabilityRule) error {
	return r.setField(ctx, id, "blockedRules", rules)
}

func (r *mongoCourtRepo) setField(ctx context.Context, id, field string, value any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCourtRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
