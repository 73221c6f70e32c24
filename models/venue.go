package models

import "time"

// DayHours is one weekday's entry in a venue's opening-hours configuration.
// Open and Close are wall-clock strings such as "08:00"; admin panels have
// historically written both 24-hour and 12-hour forms, so they are normalized
// at read time rather than validated at write time.
type DayHours struct {
	IsActive any    `bson:"isActive" json:"isActive"` // bool or the strings "true"/"false"
	Open     string `bson:"open,omitempty" json:"open,omitempty"`
	Close    string `bson:"close,omitempty" json:"close,omitempty"`
}

// Venue is a branch: a physical location owning one or more courts.
// OpeningHours keys are weekday names; lookups tolerate lowercase full names,
// three-letter abbreviations and capitalized spellings.
type Venue struct {
	ID           string              `bson:"id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	City         string              `bson:"city,omitempty" json:"city,omitempty"`
	Address      string              `bson:"address,omitempty" json:"address,omitempty"`
	Amenities    []string            `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Timezone     string              `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Currency     string              `bson:"currency,omitempty" json:"currency,omitempty"`
	OpeningHours map[string]DayHours `bson:"openingHours" json:"openingHours"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
