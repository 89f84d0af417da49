package catalog

import (
	"strings"

	"github.com/nixjke/baz-car/internal/domain"
)

// VehicleCatalog is the read-only vehicle list, loaded once at startup.
type VehicleCatalog struct {
	vehicles []domain.Vehicle
	byID     map[string]domain.Vehicle
}

func NewVehicleCatalog(vehicles []domain.Vehicle) *VehicleCatalog {
	byID := make(map[string]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	return &VehicleCatalog{vehicles: vehicles, byID: byID}
}

// Get looks up a vehicle by id.
func (c *VehicleCatalog) Get(id string) (domain.Vehicle, error) {
	v, ok := c.byID[id]
	if !ok {
		return domain.Vehicle{}, domain.ErrVehicleNotFound
	}
	return v, nil
}

// VehicleFilter narrows List results. Zero values mean "no constraint".
type VehicleFilter struct {
	Query        string
	FuelType     string
	MinRateCents int64
	MaxRateCents int64
}

// List returns the vehicles matching the filter, in catalog order.
// The rate bounds compare against the effective displayed rate: the tiered
// rate when the vehicle has one, the base rate otherwise.
func (c *VehicleCatalog) List(filter VehicleFilter) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(c.vehicles))
	q := strings.ToLower(filter.Query)
	for _, v := range c.vehicles {
		if q != "" &&
			!strings.Contains(strings.ToLower(v.Name), q) &&
			!strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		if filter.FuelType != "" && v.FuelType != filter.FuelType {
			continue
		}
		rate := v.BaseDailyRateCents
		if v.TieredDailyRateCents != nil {
			rate = *v.TieredDailyRateCents
		}
		if filter.MinRateCents > 0 && rate < filter.MinRateCents {
			continue
		}
		if filter.MaxRateCents > 0 && rate > filter.MaxRateCents {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ServiceCatalog holds the add-on and delivery definitions. It is the single
// source of truth for every fee amount; nothing else hard-codes fees.
type ServiceCatalog struct {
	addOns          []domain.AddOnDefinition
	delivery        []domain.DeliveryOption
	addOnsByID      map[string]domain.AddOnDefinition
	deliveryByID    map[string]domain.DeliveryOption
	defaultDelivery string
}

func NewServiceCatalog(addOns []domain.AddOnDefinition, delivery []domain.DeliveryOption, defaultDeliveryID string) *ServiceCatalog {
	addOnsByID := make(map[string]domain.AddOnDefinition, len(addOns))
	for _, a := range addOns {
		addOnsByID[a.ID] = a
	}
	deliveryByID := make(map[string]domain.DeliveryOption, len(delivery))
	for _, d := range delivery {
		deliveryByID[d.ID] = d
	}
	return &ServiceCatalog{
		addOns:          addOns,
		delivery:        delivery,
		addOnsByID:      addOnsByID,
		deliveryByID:    deliveryByID,
		defaultDelivery: defaultDeliveryID,
	}
}

// AddOns returns every add-on definition in catalog order.
func (c *ServiceCatalog) AddOns() []domain.AddOnDefinition {
	return c.addOns
}

// AddOn looks up an add-on definition by id.
func (c *ServiceCatalog) AddOn(id string) (domain.AddOnDefinition, bool) {
	a, ok := c.addOnsByID[id]
	return a, ok
}

// AddOnsFor returns the add-ons that may be offered for the vehicle.
// Restricted add-ons are filtered out here at presentation time and skipped
// again at pricing time.
func (c *ServiceCatalog) AddOnsFor(vehicleID string) []domain.AddOnDefinition {
	out := make([]domain.AddOnDefinition, 0, len(c.addOns))
	for _, a := range c.addOns {
		if a.EligibleFor(vehicleID) {
			out = append(out, a)
		}
	}
	return out
}

// DeliveryOptions returns every delivery option in catalog order.
func (c *ServiceCatalog) DeliveryOptions() []domain.DeliveryOption {
	return c.delivery
}

// Delivery looks up a delivery option by id.
func (c *ServiceCatalog) Delivery(id string) (domain.DeliveryOption, bool) {
	d, ok := c.deliveryByID[id]
	return d, ok
}

// DefaultDeliveryID returns the id drafts fall back to (self-pickup).
func (c *ServiceCatalog) DefaultDeliveryID() string {
	return c.defaultDelivery
}
