package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nixjke/baz-car/internal/upstream"
)

// QRHandler proxies promotional QR code lookups to the booking backend so
// the storefront only ever talks to this service.
type QRHandler struct {
	client *upstream.Client
}

func NewQRHandler(client *upstream.Client) *QRHandler {
	return &QRHandler{client: client}
}

func (h *QRHandler) Verify(w http.ResponseWriter, r *http.Request) {
	record, err := h.client.VerifyQR(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (h *QRHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.client.ListQRCodes(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "failed to load QR codes")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *QRHandler) Activate(w http.ResponseWriter, r *http.Request) {
	record, err := h.client.ActivateQR(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func RegisterQRRoutes(router *mux.Router, client *upstream.Client) {
	handler := NewQRHandler(client)
	router.HandleFunc("/api/qr/verify/all", handler.List).Methods("GET")
	router.HandleFunc("/api/qr/verify/{code}", handler.Verify).Methods("GET")
	router.HandleFunc("/api/qr/activate/{code}", handler.Activate).Methods("POST")
}
