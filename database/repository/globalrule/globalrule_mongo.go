// File: database/repository/globalrule/globalrule_mongo.go
package globalRuleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/database"
	"courtside/models"
)

// GlobalRuleRepository stores platform-wide price rules. They are evaluated
// at availability time against every court; nothing here fans out writes to
// court documents.
type GlobalRuleRepository interface {
	Create(ctx context.Context, rule *models.GlobalPriceRule) error
	List(ctx context.Context) ([]models.GlobalPriceRule, error)
	GetActive(ctx context.Context) ([]models.GlobalPriceRule, error)
	SetActive(ctx context.Context, id string, active bool) error
	Update(ctx context.Context, rule *models.GlobalPriceRule) error
	Delete(ctx context.Context, id string) error
}

type mongoGlobalRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoGlobalRuleRepo constructs a new MongoDB GlobalRuleRepository.
func NewMongoGlobalRuleRepo() GlobalRuleRepository {
	return &mongoGlobalRuleRepo{coll: database.DB().Collection("global_price_rules")}
}

func (r *mongoGlobalRuleRepo) Create(ctx context.Context, rule *models.GlobalPriceRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		// Stable "global-<n>" identifiers so a rule can be re-applied
		// idempotently across edits.
		count, err := r.coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return err
		}
		rule.ID = fmt.Sprintf("global-%d", count+1)
	}
	now := time.Now()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, rule)
	return err
}

func (r *mongoGlobalRuleRepo) List(ctx context.Context) ([]models.GlobalPriceRule, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoGlobalRuleRepo) GetActive(ctx context.Context) ([]models.GlobalPriceRule, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *mongoGlobalRuleRepo) find(ctx context.Context, filter bson.M) ([]models.GlobalPriceRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.GlobalPriceRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *mongoGlobalRuleRepo) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGlobalRuleRepo) Update(ctx context.Context, rule *models.GlobalPriceRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rule.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": rule.ID}, rule)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGlobalRuleRepo) Delete(ctx context.Context, id string) error {
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
