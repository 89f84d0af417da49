package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/service"
)

const dateLayout = "2006-01-02"

// BookingHandler serves availability checks and price quotes.
type BookingHandler struct {
	booking service.BookingService
	drafts  *service.DraftBuilder
}

func NewBookingHandler(booking service.BookingService, drafts *service.DraftBuilder) *BookingHandler {
	return &BookingHandler{booking: booking, drafts: drafts}
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	start, err := time.Parse(dateLayout, r.URL.Query().Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "start must be a YYYY-MM-DD date")
		return
	}
	end, err := time.Parse(dateLayout, r.URL.Query().Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "end must be a YYYY-MM-DD date")
		return
	}

	available, err := h.booking.CheckAvailability(r.Context(), id, domain.DateRange{Start: start, End: end})
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondError(w, http.StatusNotFound, "vehicle not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "availability check failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"available": available})
}

// CanSelectDate backs the storefront date picker. With pending_start set it
// answers whether the full pending range would be selectable.
func (h *BookingHandler) CanSelectDate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	candidate, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be a YYYY-MM-DD date")
		return
	}

	var pendingStart time.Time
	if v := r.URL.Query().Get("pending_start"); v != "" {
		pendingStart, err = time.Parse(dateLayout, v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "pending_start must be a YYYY-MM-DD date")
			return
		}
	}

	selectable, err := h.booking.CanSelectDate(r.Context(), id, candidate, pendingStart)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondError(w, http.StatusNotFound, "vehicle not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "availability check failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"selectable": selectable})
}

type quoteRequest struct {
	VehicleID        string   `json:"vehicleId"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	DeliveryOptionID string   `json:"deliveryOptionId"`
	AddOnIDs         []string `json:"addOnIds"`

	// A flow-tagged form body (the same payload AddItem accepts) may be
	// quoted directly, so every form can show a live price preview.
	Flow string          `json:"flow"`
	Form json.RawMessage `json:"form"`
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Flow != "" {
		draft, err := h.drafts.FromFlow(req.Flow, req.Form)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		quote, err := h.booking.Quote(r.Context(), draft.VehicleID, draft.Dates, draft.DeliveryOptionID, draft.AddOnIDs)
		if err != nil {
			if errors.Is(err, domain.ErrVehicleNotFound) {
				respondError(w, http.StatusNotFound, "vehicle not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "failed to compute quote")
			return
		}
		respondJSON(w, http.StatusOK, quote)
		return
	}

	var dates domain.DateRange
	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "startDate must be a YYYY-MM-DD date")
			return
		}
		dates.Start = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "endDate must be a YYYY-MM-DD date")
			return
		}
		dates.End = end
	}

	quote, err := h.booking.Quote(r.Context(), req.VehicleID, dates, req.DeliveryOptionID, req.AddOnIDs)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondError(w, http.StatusNotFound, "vehicle not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to compute quote")
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

func RegisterBookingRoutes(router *mux.Router, booking service.BookingService, drafts *service.DraftBuilder) {
	handler := NewBookingHandler(booking, drafts)
	router.HandleFunc("/api/vehicles/{id}/availability", handler.CheckAvailability).Methods("GET")
	router.HandleFunc("/api/vehicles/{id}/availability/day", handler.CanSelectDate).Methods("GET")
	router.HandleFunc("/api/quote", handler.Quote).Methods("POST")
}
