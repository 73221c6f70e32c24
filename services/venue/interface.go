package venue

import (
	"context"

	courtRepo "courtside/database/repository/court"
	globalRuleRepo "courtside/database/repository/globalrule"
	venueRepo "courtside/database/repository/venue"
	"courtside/models"
)

// AdminService is the back-office surface for venue, court and rule
// management. It owns configuration writes; the booking engine only ever
// reads the result.
type AdminService interface {
	CreateVenue(ctx context.Context, v *models.Venue) error
	GetVenue(ctx context.Context, id string) (*models.Venue, []models.Court, error)
	ListVenues(ctx context.Context, city string) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, v *models.Venue) error
	SetOpeningHours(ctx context.Context, venueID string, hours map[string]models.DayHours) error
	DeleteVenue(ctx context.Context, id string) error

	CreateCourt(ctx context.Context, c *models.Court) error
	GetCourt(ctx context.Context, id string) (*models.Court, error)
	UpdateCourt(ctx context.Context, c *models.Court) error
	SetPriceRules(ctx context.Context, courtID string, rules []models.PriceRule) error
	SetBlockedRules(ctx context.Context, courtID string, rules []models.UnavailabilityRule) error
	DeleteCourt(ctx context.Context, id string) error

	CreateGlobalRule(ctx context.Context, rule *models.GlobalPriceRule) error
	ListGlobalRules(ctx context.Context) ([]models.GlobalPriceRule, error)
	SetGlobalRuleActive(ctx context.Context, id string, active bool) error
	DeleteGlobalRule(ctx context.Context, id string) error
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	VenueRepo  venueRepo.VenueRepository
	CourtRepo  courtRepo.CourtRepository
	GlobalRepo globalRuleRepo.GlobalRuleRepository
}
