package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nixjke/baz-car/internal/cart"
	"github.com/nixjke/baz-car/internal/catalog"
	"github.com/nixjke/baz-car/internal/logger"
	"github.com/nixjke/baz-car/internal/service"
	"github.com/nixjke/baz-car/internal/upstream"
)

// RouterDeps collects everything the API surface needs.
type RouterDeps struct {
	Vehicles *catalog.VehicleCatalog
	Services *catalog.ServiceCatalog
	Booking  service.BookingService
	Cart     *cart.Store
	Drafts   *service.DraftBuilder
	Upstream *upstream.Client
}

// NewRouter builds the full route table.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogging)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	RegisterCatalogRoutes(router, deps.Vehicles, deps.Services)
	RegisterBookingRoutes(router, deps.Booking, deps.Drafts)
	RegisterCartRoutes(router, deps.Cart, deps.Booking, deps.Drafts)
	if deps.Upstream != nil {
		RegisterQRRoutes(router, deps.Upstream)
	}

	return router
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Handled request", "method", r.Method, "path", r.URL.Path, "duration_ms", time.Since(start).Milliseconds())
	})
}
