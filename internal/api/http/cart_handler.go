package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nixjke/baz-car/internal/cart"
	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/service"
)

// CartHandler serves the rental cart.
type CartHandler struct {
	store   *cart.Store
	booking service.BookingService
	drafts  *service.DraftBuilder
}

func NewCartHandler(store *cart.Store, booking service.BookingService, drafts *service.DraftBuilder) *CartHandler {
	return &CartHandler{store: store, booking: booking, drafts: drafts}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":      h.store.Items(),
		"totalCents": h.store.TotalCents(),
	})
}

// addItemRequest is tagged with the originating form flow so the right
// adapter can map its fields onto the canonical draft.
type addItemRequest struct {
	Flow string          `json:"flow"`
	Form json.RawMessage `json:"form"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := h.drafts.FromFlow(req.Flow, req.Form)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.booking.AddToCart(r.Context(), draft)
	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, item)
	case errors.Is(err, cart.ErrDuplicateItem):
		// Already present is not a failure; return the existing line.
		respondJSON(w, http.StatusOK, item)
	case errors.Is(err, cart.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDatesUnavailable):
		respondError(w, http.StatusConflict, "requested dates are already booked")
	case errors.Is(err, domain.ErrVehicleNotFound):
		respondError(w, http.StatusNotFound, "vehicle not found")
	default:
		respondError(w, http.StatusInternalServerError, "failed to add item")
	}
}

type updateItemRequest struct {
	StartDate        *string   `json:"startDate"`
	EndDate          *string   `json:"endDate"`
	DeliveryOptionID *string   `json:"deliveryOptionId"`
	AddOnIDs         *[]string `json:"addOnIds"`
	ContactName      *string   `json:"contactName"`
	ContactPhone     *string   `json:"contactPhone"`
	ContactEmail     *string   `json:"contactEmail"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changes := cart.ItemChanges{
		DeliveryOptionID: req.DeliveryOptionID,
		AddOnIDs:         req.AddOnIDs,
		ContactName:      req.ContactName,
		ContactPhone:     req.ContactPhone,
		ContactEmail:     req.ContactEmail,
	}
	if req.StartDate != nil || req.EndDate != nil {
		if req.StartDate == nil || req.EndDate == nil {
			respondError(w, http.StatusBadRequest, "startDate and endDate must be updated together")
			return
		}
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "startDate must be a YYYY-MM-DD date")
			return
		}
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "endDate must be a YYYY-MM-DD date")
			return
		}
		changes.Dates = &domain.DateRange{Start: start, End: end}
	}

	item, err := h.store.Update(r.Context(), id, changes)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, item)
	case errors.Is(err, cart.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "cart item not found")
	case errors.Is(err, cart.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "failed to update item")
	}
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.Remove(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func RegisterCartRoutes(router *mux.Router, store *cart.Store, booking service.BookingService, drafts *service.DraftBuilder) {
	handler := NewCartHandler(store, booking, drafts)
	router.HandleFunc("/api/cart", handler.GetCart).Methods("GET")
	router.HandleFunc("/api/cart", handler.ClearCart).Methods("DELETE")
	router.HandleFunc("/api/cart/items", handler.AddItem).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", handler.UpdateItem).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{id}", handler.RemoveItem).Methods("DELETE")
}
