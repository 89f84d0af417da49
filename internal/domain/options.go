package domain

// FeeKind distinguishes add-ons charged once from add-ons charged per rental day.
type FeeKind string

const (
	FeeKindFixed  FeeKind = "fixed"
	FeeKindPerDay FeeKind = "per_day"
)

// AddOnDefinition is an optional paid service attached to a reservation.
type AddOnDefinition struct {
	ID       string  `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	FeeCents int64   `json:"fee_cents" yaml:"fee_cents"`
	FeeKind  FeeKind `json:"fee_kind" yaml:"fee_kind"`
	// EligibleVehicleIDs restricts the add-on to the listed vehicles.
	// Empty means eligible for every vehicle.
	EligibleVehicleIDs []string `json:"eligible_vehicle_ids,omitempty" yaml:"eligible_vehicle_ids"`
}

// EligibleFor reports whether the add-on may be offered and priced for the vehicle.
func (a AddOnDefinition) EligibleFor(vehicleID string) bool {
	if len(a.EligibleVehicleIDs) == 0 {
		return true
	}
	for _, id := range a.EligibleVehicleIDs {
		if id == vehicleID {
			return true
		}
	}
	return false
}

// Valid reports whether the definition carries everything pricing needs.
// Malformed entries are skipped during pricing, never priced and never fatal.
func (a AddOnDefinition) Valid() bool {
	if a.ID == "" || a.FeeCents < 0 {
		return false
	}
	return a.FeeKind == FeeKindFixed || a.FeeKind == FeeKindPerDay
}

// DeliveryOption is a vehicle hand-over method with a flat fee.
type DeliveryOption struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	FeeCents int64  `json:"fee_cents" yaml:"fee_cents"`
}
