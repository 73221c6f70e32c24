// File: database/repository/court/interface.go
package courtRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"courtside/database"
	"courtside/models"
)

type CourtRepository interface {
	Create(ctx context.Context, court *models.Court) error
	GetByID(ctx context.Context, id string) (*models.Court, error)
	GetByVenue(ctx context.Context, venueID string) ([]models.Court, error)
	Update(ctx context.Context, court *models.Court) error
	SetPriceRules(ctx context.Context, id string, rules []models.PriceRule) error
	SetBlockedRules(ctx context.Context, id string, rules []models.UnavailabilityRule) error
	Delete(ctx context.Context, id string) error
}

type mongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo constructs a new MongoDB CourtRepository.
func NewMongoCourtRepo() CourtRepository {
	return &mongoCourtRepo{coll: database.DB().Collection("courts")}
}
