package venue

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/slotengine"
	"courtside/utils"
)

func (s *DefaultAdminService) CreateVenue(ctx context.Context, v *models.Venue) error {
	if v.Name == "" {
		return fmt.Errorf("venue name is required")
	}
	return s.VenueRepo.Create(ctx, v)
}

func (s *DefaultAdminService) GetVenue(ctx context.Context, id string) (*models.Venue, []models.Court, error) {
	v, err := s.VenueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	courts, err := s.CourtRepo.GetByVenue(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return v, courts, nil
}

func (s *DefaultAdminService) ListVenues(ctx context.Context, city string) ([]models.Venue, error) {
	return s.VenueRepo.List(ctx, city)
}

func (s *DefaultAdminService) UpdateVenue(ctx context.Context, v *models.Venue) error {
	return s.VenueRepo.Update(ctx, v)
}

func (s *DefaultAdminService) SetOpeningHours(ctx context.Context, venueID string, hours map[string]models.DayHours) error {
	// Warn about unparseable hour strings but store anyway: the resolver
	// tolerates them at read time, and blocking the save would strand admins
	// fixing legacy data.
	logger := utils.GetLogger()
	for day, entry := range hours {
		for _, t := range []string{entry.Open, entry.Close} {
			if t == "" {
				continue
			}
			if _, err := slotengine.ParseHour(t); err != nil {
				logger.Warn("opening hours entry has unparseable time",
					zap.String("venueId", venueID),
					zap.String("day", day),
					zap.String("time", t))
			}
		}
	}
	return s.VenueRepo.SetOpeningHours(ctx, venueID, hours)
}

func (s *DefaultAdminService) DeleteVenue(ctx context.Context, id string) error {
	courts, err := s.CourtRepo.GetByVenue(ctx, id)
	if err != nil {
		return err
	}
	if len(courts) > 0 {
		return fmt.Errorf("venue %s still has %d courts", id, len(courts))
	}
	return s.VenueRepo.Delete(ctx, id)
}

func (s *DefaultAdminService) CreateCourt(ctx context.Context, c *models.Court) error {
	if c.VenueID == "" {
		return fmt.Errorf("court must belong to a venue")
	}
	if c.PricePerHour < 0 {
		return fmt.Errorf("base price must not be negative")
	}
	if _, err := s.VenueRepo.GetByID(ctx, c.VenueID); err != nil {
		return fmt.Errorf("venue %s not found: %w", c.VenueID, err)
	}
	assignRuleIDs(c.PriceRules)
	return s.CourtRepo.Create(ctx, c)
}

func (s *DefaultAdminService) GetCourt(ctx context.Context, id string) (*models.Court, error) {
	return s.CourtRepo.GetByID(ctx, id)
}

func (s *DefaultAdminService) UpdateCourt(ctx context.Context, c *models.Court) error {
	if c.PricePerHour < 0 {
		return fmt.Errorf("base price must not be negative")
	}
	return s.CourtRepo.Update(ctx, c)
}

func (s *DefaultAdminService) SetPriceRules(ctx context.Context, courtID string, rules []models.PriceRule) error {
	assignRuleIDs(rules)
	return s.CourtRepo.SetPriceRules(ctx, courtID, rules)
}

func (s *DefaultAdminService) SetBlockedRules(ctx context.Context, courtID string, rules []models.UnavailabilityRule) error {
	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.New().String()
		}
	}
	return s.CourtRepo.SetBlockedRules(ctx, courtID, rules)
}

func (s *DefaultAdminService) DeleteCourt(ctx context.Context, id string) error {
	return s.CourtRepo.Delete(ctx, id)
}

func (s *DefaultAdminService) CreateGlobalRule(ctx context.Context, rule *models.GlobalPriceRule) error {
	return s.GlobalRepo.Create(ctx, rule)
}

func (s *DefaultAdminService) ListGlobalRules(ctx context.Context) ([]models.GlobalPriceRule, error) {
	return s.GlobalRepo.List(ctx)
}

func (s *DefaultAdminService) SetGlobalRuleActive(ctx context.Context, id string, active bool) error {
	return s.GlobalRepo.SetActive(ctx, id, active)
}

func (s *DefaultAdminService) DeleteGlobalRule(ctx context.Context, id string) error {
	return s.GlobalRepo.Delete(ctx, id)
}

func assignRuleIDs(rules []models.PriceRule) {
	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.New().String()
		}
	}
}
