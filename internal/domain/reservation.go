package domain

import (
	"sort"
	"time"
)

// DateRange is a candidate rental interval. A zero Start or End means the
// range is incomplete (still being picked), which is distinct from invalid.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Complete reports whether both bounds are present.
func (r DateRange) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Valid reports whether the range is complete with End strictly after Start.
func (r DateRange) Valid() bool {
	return r.Complete() && r.End.After(r.Start)
}

// Equal compares two ranges at instant precision.
func (r DateRange) Equal(other DateRange) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// RentalDays returns the number of whole days between the bounds, rounded up,
// with a minimum of 1 for any non-zero duration. Incomplete or inverted
// ranges count as 0 days.
func (r DateRange) RentalDays() int {
	if !r.Valid() {
		return 0
	}
	d := r.End.Sub(r.Start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days == 0 {
		days = 1
	}
	return days
}

// ExistingReservation is a booked interval that blocks overlapping
// selections on the same vehicle. Bounds are inclusive calendar days.
type ExistingReservation struct {
	VehicleID string    `json:"vehicle_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// ReservationDraft is the canonical in-progress selection. Every UI entry
// point is normalized into this shape before availability, pricing or cart
// logic runs.
type ReservationDraft struct {
	VehicleID        string    `json:"vehicle_id"`
	Dates            DateRange `json:"dates"`
	ContactName      string    `json:"contact_name"`
	ContactPhone     string    `json:"contact_phone"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	DeliveryOptionID string    `json:"delivery_option_id"`
	AddOnIDs         []string  `json:"add_on_ids,omitempty"`
}

// NormalizeAddOnIDs sorts and deduplicates the selected add-on set so that
// identical selections compare equal regardless of input order.
func NormalizeAddOnIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}
