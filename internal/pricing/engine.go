// Package pricing computes deterministic rental quotes. The engine is a pure
// function over its inputs and the read-only service catalog: identical
// inputs always produce identical quotes, and all money is integer cents.
package pricing

import (
	"fmt"

	"github.com/nixjke/baz-car/internal/catalog"
	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/logger"
)

type Engine struct {
	services *catalog.ServiceCatalog
}

func NewEngine(services *catalog.ServiceCatalog) *Engine {
	return &Engine{services: services}
}

// ComputeQuote prices a selection against a vehicle price snapshot. Cart
// updates pass the snapshot frozen at creation time, so a line item's price
// stays stable even if the live catalog changes.
func (e *Engine) ComputeQuote(vehicle domain.VehicleSnapshot, dates domain.DateRange, deliveryOptionID string, addOnIDs []string) domain.Quote {
	days := dates.RentalDays()

	rate := vehicle.BaseDailyRateCents
	tierApplied := false
	if days >= domain.TierThresholdDays && vehicle.TieredDailyRateCents != nil {
		rate = *vehicle.TieredDailyRateCents
		tierApplied = true
	}

	quote := domain.Quote{
		RentalDayCount:          days,
		EffectiveDailyRateCents: rate,
		TierApplied:             tierApplied,
	}

	if days > 0 {
		amount := rate * int64(days)
		quote.Lines = append(quote.Lines, domain.QuoteLine{
			Label:       fmt.Sprintf("Аренда (%d дн. x %d ₽)", days, rate),
			AmountCents: amount,
		})
		quote.TotalCents += amount
		if tierApplied {
			quote.Lines = append(quote.Lines, domain.QuoteLine{
				Label:         "Применена скидка за аренду от 3-х дней",
				Informational: true,
			})
		}
	}

	if opt, ok := e.services.Delivery(deliveryOptionID); ok && opt.FeeCents > 0 {
		quote.Lines = append(quote.Lines, domain.QuoteLine{
			Label:       opt.Label,
			AmountCents: opt.FeeCents,
		})
		quote.TotalCents += opt.FeeCents
	}

	selected := make(map[string]struct{}, len(addOnIDs))
	for _, id := range domain.NormalizeAddOnIDs(addOnIDs) {
		selected[id] = struct{}{}
	}

	// Walk the catalog, not the selection, so line order is stable.
	for _, addOn := range e.services.AddOns() {
		if _, ok := selected[addOn.ID]; !ok {
			continue
		}
		if !addOn.Valid() {
			logger.Warn("Skipping malformed add-on definition", "add_on", addOn.ID)
			continue
		}
		// Ineligible selections stay flagged in the draft but are never priced.
		if !addOn.EligibleFor(vehicle.ID) {
			continue
		}

		var amount int64
		switch addOn.FeeKind {
		case domain.FeeKindFixed:
			amount = addOn.FeeCents
		case domain.FeeKindPerDay:
			amount = addOn.FeeCents * int64(days)
		}
		if amount == 0 {
			continue
		}
		quote.Lines = append(quote.Lines, domain.QuoteLine{
			Label:       addOn.Label,
			AmountCents: amount,
		})
		quote.TotalCents += amount
	}

	return quote
}
