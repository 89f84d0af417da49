package domain

import "time"

// CartLineItem is one finalized, priced reservation held in the cart.
// TotalPriceCents is a cache: it always equals a fresh quote over the other
// fields and is recomputed on every update, never patched on its own.
type CartLineItem struct {
	ID        string          `json:"id"`
	VehicleID string          `json:"vehicle_id"`
	Vehicle   VehicleSnapshot `json:"vehicle"`

	Dates                   DateRange `json:"dates"`
	RentalDayCount          int       `json:"rental_day_count"`
	EffectiveDailyRateCents int64     `json:"effective_daily_rate_cents"`

	DeliveryOptionID string   `json:"delivery_option_id"`
	AddOnIDs         []string `json:"add_on_ids,omitempty"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email,omitempty"`

	TotalPriceCents int64 `json:"total_price_cents"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
