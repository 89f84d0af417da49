package catalog

import "github.com/nixjke/baz-car/internal/domain"

// Built-in fleet, used when no catalog file is configured.
func defaultVehicles() []domain.Vehicle {
	camryTier := int64(4000)
	m5Tier := int64(12000)
	return []domain.Vehicle{
		{
			ID:                 "granta",
			Name:               "Lada Granta",
			Description:        "Компактный седан для города",
			FuelType:           "Бензин",
			Seats:              5,
			BaseDailyRateCents: 2500,
		},
		{
			ID:                   "camry",
			Name:                 "Toyota Camry",
			Description:          "Комфортный бизнес-седан",
			FuelType:             "Бензин",
			Seats:                5,
			BaseDailyRateCents:   5000,
			TieredDailyRateCents: &camryTier,
		},
		{
			ID:                   "bmw-m5",
			Name:                 "BMW M5",
			Description:          "Спортивный седан премиум-класса",
			FuelType:             "Бензин",
			Seats:                5,
			BaseDailyRateCents:   15000,
			TieredDailyRateCents: &m5Tier,
		},
	}
}

// Built-in add-on schedule. Fee amounts live here and only here.
func defaultAddOns() []domain.AddOnDefinition {
	return []domain.AddOnDefinition{
		{
			ID:       "youngDriver",
			Label:    "Молодой водитель (18-21 год)",
			FeeCents: 2000,
			FeeKind:  domain.FeeKindFixed,
		},
		{
			ID:       "childSeat",
			Label:    "Детское кресло",
			FeeCents: 700,
			FeeKind:  domain.FeeKindFixed,
		},
		{
			ID:       "personalDriver",
			Label:    "Личный водитель",
			FeeCents: 5000,
			FeeKind:  domain.FeeKindPerDay,
		},
		{
			ID:                 "ps5",
			Label:              "PlayStation 5",
			FeeCents:           1000,
			FeeKind:            domain.FeeKindPerDay,
			EligibleVehicleIDs: []string{"bmw-m5"},
		},
	}
}

func defaultDeliveryOptions() []domain.DeliveryOption {
	return []domain.DeliveryOption{
		{ID: "pickup", Label: "Самовывоз", FeeCents: 0},
		{ID: "city", Label: "Доставка по городу", FeeCents: 700},
		{ID: "airport", Label: "Доставка в аэропорт", FeeCents: 1000},
	}
}

// Default returns the built-in vehicle and service catalogs.
func Default() (*VehicleCatalog, *ServiceCatalog) {
	return NewVehicleCatalog(defaultVehicles()),
		NewServiceCatalog(defaultAddOns(), defaultDeliveryOptions(), "pickup")
}
