package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nixjke/baz-car/internal/domain"
)

// catalogFile is the YAML shape of a catalog override file.
type catalogFile struct {
	Vehicles        []domain.Vehicle         `yaml:"vehicles"`
	AddOns          []domain.AddOnDefinition `yaml:"add_ons"`
	DeliveryOptions []domain.DeliveryOption  `yaml:"delivery_options"`
	DefaultDelivery string                   `yaml:"default_delivery"`
}

// LoadFile reads both catalogs from a YAML file. Sections left empty fall
// back to the built-in defaults.
func LoadFile(path string) (*VehicleCatalog, *ServiceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	vehicles := file.Vehicles
	if len(vehicles) == 0 {
		vehicles = defaultVehicles()
	}
	addOns := file.AddOns
	if len(addOns) == 0 {
		addOns = defaultAddOns()
	}
	delivery := file.DeliveryOptions
	if len(delivery) == 0 {
		delivery = defaultDeliveryOptions()
	}
	defaultDelivery := file.DefaultDelivery
	if defaultDelivery == "" {
		defaultDelivery = "pickup"
	}
	if _, ok := NewServiceCatalog(nil, delivery, "").deliveryByID[defaultDelivery]; !ok {
		return nil, nil, fmt.Errorf("default delivery %q not present in delivery options", defaultDelivery)
	}

	return NewVehicleCatalog(vehicles), NewServiceCatalog(addOns, delivery, defaultDelivery), nil
}
