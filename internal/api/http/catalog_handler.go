package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nixjke/baz-car/internal/catalog"
	"github.com/nixjke/baz-car/internal/domain"
)

// CatalogHandler serves the vehicle fleet and rental options.
type CatalogHandler struct {
	vehicles *catalog.VehicleCatalog
	services *catalog.ServiceCatalog
}

func NewCatalogHandler(vehicles *catalog.VehicleCatalog, services *catalog.ServiceCatalog) *CatalogHandler {
	return &CatalogHandler{vehicles: vehicles, services: services}
}

func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	filter := catalog.VehicleFilter{
		Query:    r.URL.Query().Get("q"),
		FuelType: r.URL.Query().Get("fuel_type"),
	}
	if v := r.URL.Query().Get("min_price"); v != "" {
		min, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "min_price must be an integer")
			return
		}
		filter.MinRateCents = min
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		max, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "max_price must be an integer")
			return
		}
		filter.MaxRateCents = max
	}

	respondJSON(w, http.StatusOK, h.vehicles.List(filter))
}

func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	vehicle, err := h.vehicles.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondError(w, http.StatusNotFound, "vehicle not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load vehicle")
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

// GetVehicleOptions returns the delivery options plus the add-ons this
// vehicle is eligible for. Restricted add-ons are filtered out here so the
// storefront never renders an option the pricing engine would refuse.
func (h *CatalogHandler) GetVehicleOptions(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.vehicles.Get(id); err != nil {
		respondError(w, http.StatusNotFound, "vehicle not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"addOns":          h.services.AddOnsFor(id),
		"deliveryOptions": h.services.DeliveryOptions(),
		"defaultDelivery": h.services.DefaultDeliveryID(),
	})
}

func RegisterCatalogRoutes(router *mux.Router, vehicles *catalog.VehicleCatalog, services *catalog.ServiceCatalog) {
	handler := NewCatalogHandler(vehicles, services)
	router.HandleFunc("/api/vehicles", handler.ListVehicles).Methods("GET")
	router.HandleFunc("/api/vehicles/{id}", handler.GetVehicle).Methods("GET")
	router.HandleFunc("/api/vehicles/{id}/options", handler.GetVehicleOptions).Methods("GET")
}
