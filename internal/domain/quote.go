package domain

// QuoteLine is one itemized entry of a quote. Informational lines (such as
// the tier-discount annotation) carry no amount and never affect the total.
type QuoteLine struct {
	Label         string `json:"label"`
	AmountCents   int64  `json:"amount_cents"`
	Informational bool   `json:"informational,omitempty"`
}

// Quote is the result of one pricing computation.
type Quote struct {
	RentalDayCount          int         `json:"rental_day_count"`
	EffectiveDailyRateCents int64       `json:"effective_daily_rate_cents"`
	TierApplied             bool        `json:"tier_applied"`
	Lines                   []QuoteLine `json:"lines"`
	TotalCents              int64       `json:"total_cents"`
}
