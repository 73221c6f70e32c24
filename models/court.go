package models

import "time"

// Court is a bookable unit inside a venue. PricePerHour is the base rate
// every hour falls back to when no price rule matches.
type Court struct {
	ID           string               `bson:"id" json:"id"`
	VenueID      string               `bson:"venueId" json:"venueId"`
	Name         string               `bson:"name" json:"name"`
	Sport        string               `bson:"sport,omitempty" json:"sport,omitempty"`
	PricePerHour float64              `bson:"pricePerHour" json:"pricePerHour"`
	PriceRules   []PriceRule          `bson:"priceRules,omitempty" json:"priceRules,omitempty"`
	BlockedRules []UnavailabilityRule `bson:"blockedRules,omitempty" json:"blockedRules,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
