package domain

// Vehicle is a catalog entry. Catalog data is read-only at runtime.
type Vehicle struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
	FuelType    string `json:"fuel_type,omitempty" yaml:"fuel_type"`
	Seats       int    `json:"seats,omitempty" yaml:"seats"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url"`

	BaseDailyRateCents int64 `json:"base_daily_rate_cents" yaml:"base_daily_rate_cents"`
	// TieredDailyRateCents is the discounted daily rate applied uniformly once
	// the rental reaches TierThresholdDays. Nil when the vehicle has no tier.
	TieredDailyRateCents *int64 `json:"tiered_daily_rate_cents,omitempty" yaml:"tiered_daily_rate_cents"`
}

// TierThresholdDays is the rental-day count at which the tiered rate kicks in.
const TierThresholdDays = 3

// Snapshot returns the pricing-relevant copy of the vehicle that is frozen
// onto a cart line item at creation time. All later recomputations use the
// snapshot, not live catalog prices.
func (v Vehicle) Snapshot() VehicleSnapshot {
	s := VehicleSnapshot{
		ID:                 v.ID,
		Name:               v.Name,
		BaseDailyRateCents: v.BaseDailyRateCents,
	}
	if v.TieredDailyRateCents != nil {
		rate := *v.TieredDailyRateCents
		s.TieredDailyRateCents = &rate
	}
	return s
}

// VehicleSnapshot is the denormalized vehicle copy carried by a cart line item.
type VehicleSnapshot struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	BaseDailyRateCents   int64  `json:"base_daily_rate_cents"`
	TieredDailyRateCents *int64 `json:"tiered_daily_rate_cents,omitempty"`
}
