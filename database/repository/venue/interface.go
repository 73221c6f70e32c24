// File: database/repository/venue/interface.go
package venueRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"courtside/database"
	"courtside/models"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	List(ctx context.Context, city string) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	SetOpeningHours(ctx context.Context, id string, hours map[string]models.DayHours) error
	Delete(ctx context.Context, id string) error
}

type mongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo constructs a new MongoDB VenueRepository.
func NewMongoVenueRepo() VenueRepository {
	return &mongoVenueRepo{coll: database.DB().Collection("venues")}
}
