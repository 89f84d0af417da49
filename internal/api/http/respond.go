// Package http exposes the storefront-facing REST API. Responses use the
// same {status, message, data} envelope as the booking backend so the
// storefront can treat both services uniformly.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/nixjke/baz-car/internal/logger"
)

type response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Status: "success", Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response{Status: "error", Message: message})
}
