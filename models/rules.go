package models

import "time"

// PriceRule overrides the base rate for the hours in [SlotFrom, SlotTo).
// Exactly one of Dates/Days should be set: Dates scopes the rule to explicit
// "YYYY-MM-DD" calendar dates, Days to recurring weekdays ("mon", "tue", ...).
// Date-scoped rules outrank day-scoped ones during resolution.
//
// These rules are admin-authored JSON and are not schema-validated on write;
// resolvers must tolerate individual malformed entries.
type PriceRule struct {
	ID       string   `bson:"id,omitempty" json:"id,omitempty"`
	Dates    []string `bson:"dates,omitempty" json:"dates,omitempty"`
	Days     []string `bson:"days,omitempty" json:"days,omitempty"`
	SlotFrom string   `bson:"slotFrom" json:"slotFrom"`
	SlotTo   string   `bson:"slotTo" json:"slotTo"`
	Price    float64  `bson:"price" json:"price"`
}

// UnavailabilityRule blocks the specific hours in Times on matching dates.
// A blocked hour stays in the slot map so clients can render it, but it is
// never bookable regardless of price.
type UnavailabilityRule struct {
	ID     string   `bson:"id,omitempty" json:"id,omitempty"`
	Dates  []string `bson:"dates,omitempty" json:"dates,omitempty"`
	Days   []string `bson:"days,omitempty" json:"days,omitempty"`
	Times  []string `bson:"times" json:"times"`
	Reason string   `bson:"reason,omitempty" json:"reason,omitempty"`
}

// GlobalPriceRule is a platform-wide price rule evaluated at read time for
// every court. It is never copied into court documents; deactivating it takes
// effect on the next availability computation.
type GlobalPriceRule struct {
	ID        string    `bson:"id" json:"id"` // "global-<n>", stable across edits
	Rule      PriceRule `bson:"rule" json:"rule"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
