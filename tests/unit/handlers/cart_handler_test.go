package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/nixjke/baz-car/internal/api/http"
	"github.com/nixjke/baz-car/internal/cart"
	"github.com/nixjke/baz-car/internal/catalog"
	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/pricing"
	"github.com/nixjke/baz-car/internal/service"
)

type noReservations struct{}

func (noReservations) Reservations(ctx context.Context, vehicleName string) []domain.ExistingReservation {
	return nil
}

// cartFixture wires real components end to end; only the upstream
// reservation source is stubbed.
func cartFixture() (*mux.Router, *cart.Store) {
	tier := int64(4000)
	vehicles := catalog.NewVehicleCatalog([]domain.Vehicle{
		{ID: "camry", Name: "Toyota Camry", BaseDailyRateCents: 5000, TieredDailyRateCents: &tier},
	})
	services := catalog.NewServiceCatalog(
		[]domain.AddOnDefinition{
			{ID: "childSeat", Label: "Детское кресло", FeeCents: 700, FeeKind: domain.FeeKindFixed},
		},
		[]domain.DeliveryOption{
			{ID: "pickup", Label: "Самовывоз", FeeCents: 0},
			{ID: "city", Label: "Доставка по городу", FeeCents: 700},
		},
		"pickup",
	)
	engine := pricing.NewEngine(services)
	store := cart.NewStore(engine, nil, nil)
	booking := service.NewBookingService(vehicles, engine, store, noReservations{}, nil)
	drafts := service.NewDraftBuilder(services)

	router := mux.NewRouter()
	api.RegisterCartRoutes(router, store, booking, drafts)
	return router, store
}

func addFullFormItem(t *testing.T, router *mux.Router) domain.CartLineItem {
	t.Helper()
	body := `{"flow":"full","form":{
		"vehicleId":"camry","pickupDate":"2025-07-01","returnDate":"2025-07-05",
		"name":"Иван","phone":"+7 900 000-00-00",
		"deliveryOption":"city","additionalServices":{"childSeat":true}}}`
	req := httptest.NewRequest("POST", "/api/cart/items", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data domain.CartLineItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("Full form flow creates a priced item", func(t *testing.T) {
		router, _ := cartFixture()

		item := addFullFormItem(t, router)

		assert.Equal(t, 4, item.RentalDayCount)
		assert.Equal(t, int64(17400), item.TotalPriceCents) // 16000 + 700 + 700
	})

	t.Run("Duplicate add returns the existing line with 200", func(t *testing.T) {
		router, store := cartFixture()

		first := addFullFormItem(t, router)

		body := `{"flow":"full","form":{
			"vehicleId":"camry","pickupDate":"2025-07-01","returnDate":"2025-07-05",
			"name":"Иван","phone":"+7 900 000-00-00",
			"deliveryOption":"city","additionalServices":{"childSeat":true}}}`
		req := httptest.NewRequest("POST", "/api/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data domain.CartLineItem `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, first.ID, resp.Data.ID)
		assert.Len(t, store.Items(), 1)
	})

	t.Run("Quick flow gets catalog defaults", func(t *testing.T) {
		router, store := cartFixture()

		body := `{"flow":"quick","form":{"vehicleId":"camry","from":"2025-07-01","to":"2025-07-03","name":"Иван","phone":"+7 900 000-00-00"}}`
		req := httptest.NewRequest("POST", "/api/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "pickup", items[0].DeliveryOptionID)
		assert.Equal(t, int64(10000), items[0].TotalPriceCents)
	})

	t.Run("Missing contact is a 400", func(t *testing.T) {
		router, _ := cartFixture()

		body := `{"flow":"quick","form":{"vehicleId":"camry","from":"2025-07-01","to":"2025-07-03"}}`
		req := httptest.NewRequest("POST", "/api/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown flow is a 400", func(t *testing.T) {
		router, _ := cartFixture()

		req := httptest.NewRequest("POST", "/api/cart/items", strings.NewReader(`{"flow":"telepathy","form":{}}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	t.Run("Shrinking the range reprices below the tier", func(t *testing.T) {
		router, _ := cartFixture()
		item := addFullFormItem(t, router)

		body := `{"startDate":"2025-07-01","endDate":"2025-07-03"}`
		req := httptest.NewRequest("PATCH", "/api/cart/items/"+item.ID, strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data domain.CartLineItem `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Data.RentalDayCount)
		assert.Equal(t, int64(11400), resp.Data.TotalPriceCents) // 10000 + 700 + 700
	})

	t.Run("Unknown item is a 404", func(t *testing.T) {
		router, _ := cartFixture()

		req := httptest.NewRequest("PATCH", "/api/cart/items/missing", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Half a date range is a 400", func(t *testing.T) {
		router, _ := cartFixture()
		item := addFullFormItem(t, router)

		req := httptest.NewRequest("PATCH", "/api/cart/items/"+item.ID, strings.NewReader(`{"startDate":"2025-07-02"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandler_GetRemoveClear(t *testing.T) {
	router, store := cartFixture()
	item := addFullFormItem(t, router)

	t.Run("GetCart returns items and the total", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalCents":17400`)
	})

	t.Run("Remove deletes the item", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/cart/items/"+item.ID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, store.Items())
	})

	t.Run("Clear empties the cart", func(t *testing.T) {
		addFullFormItem(t, router)

		req := httptest.NewRequest("DELETE", "/api/cart", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, store.Items())
	})
}
