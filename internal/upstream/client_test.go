package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses the success envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bookings", r.URL.Path)
			assert.Equal(t, "Toyota Camry", r.URL.Query().Get("carName"))
			fmt.Fprint(w, `{"status":"success","message":"","data":[
				{"carName":"Toyota Camry","startDate":"2025-07-01","endDate":"2025-07-05"},
				{"carName":"Toyota Camry","startDate":"2025-08-10","endDate":"2025-08-12"}
			]}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		reservations, err := client.FetchReservations(ctx, "Toyota Camry")

		require.NoError(t, err)
		require.Len(t, reservations, 2)
		assert.Equal(t, "Toyota Camry", reservations[0].VehicleID)
		assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), reservations[0].Start)
		assert.Equal(t, time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), reservations[0].End)
	})

	t.Run("Error envelope degrades to an empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"error","message":"database down","data":null}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		reservations, err := client.FetchReservations(ctx, "")

		require.NoError(t, err)
		assert.Empty(t, reservations)
		assert.NotNil(t, reservations)
	})

	t.Run("Malformed dates are skipped, valid ones kept", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"success","data":[
				{"carName":"BMW M5","startDate":"not-a-date","endDate":"2025-07-05"},
				{"carName":"BMW M5","startDate":"2025-07-10","endDate":"2025-07-12"}
			]}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		reservations, err := client.FetchReservations(ctx, "")

		require.NoError(t, err)
		require.Len(t, reservations, 1)
		assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), reservations[0].Start)
	})

	t.Run("Server errors are surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"status":"error","message":"boom"}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		_, err := client.FetchReservations(ctx, "")

		assert.Error(t, err)
	})
}

func TestClient_QR(t *testing.T) {
	ctx := context.Background()

	t.Run("VerifyQR parses the record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/qr/verify/SUMMER25", r.URL.Path)
			fmt.Fprint(w, `{"status":"success","data":{"code":"SUMMER25","discount":25,"active":true,"scanCount":7}}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		record, err := client.VerifyQR(ctx, "SUMMER25")

		require.NoError(t, err)
		assert.Equal(t, "SUMMER25", record.Code)
		assert.Equal(t, 25, record.Discount)
		assert.True(t, record.Active)
		assert.Equal(t, 7, record.ScanCount)
	})

	t.Run("VerifyQR surfaces an error envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"error","message":"code not found"}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		_, err := client.VerifyQR(ctx, "NOPE")

		assert.ErrorContains(t, err, "code not found")
	})

	t.Run("ListQRCodes hits the all endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/qr/verify/all", r.URL.Path)
			fmt.Fprint(w, `{"status":"success","data":[{"code":"A","scanCount":1},{"code":"B","scanCount":2}]}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		records, err := client.ListQRCodes(ctx)

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("ActivateQR posts and returns the updated record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/qr/activate/SUMMER25", r.URL.Path)
			fmt.Fprint(w, `{"status":"success","data":{"code":"SUMMER25","discount":25,"active":true,"scanCount":8}}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		record, err := client.ActivateQR(ctx, "SUMMER25")

		require.NoError(t, err)
		assert.True(t, record.Active)
		assert.Equal(t, 8, record.ScanCount)
	})
}

func TestReservationCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Caches per vehicle within the TTL", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, `{"status":"success","data":[{"carName":"Toyota Camry","startDate":"2025-07-01","endDate":"2025-07-05"}]}`)
		}))
		defer server.Close()

		cache := NewReservationCache(NewClient(server.URL, time.Second), time.Minute)

		first := cache.Reservations(ctx, "Toyota Camry")
		second := cache.Reservations(ctx, "Toyota Camry")

		assert.Len(t, first, 1)
		assert.Len(t, second, 1)
		assert.Equal(t, 1, calls)
	})

	t.Run("Fetch failure degrades to empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"status":"error","message":"boom"}`)
		}))
		defer server.Close()

		cache := NewReservationCache(NewClient(server.URL, time.Second), time.Minute)

		reservations := cache.Reservations(ctx, "Toyota Camry")

		assert.NotNil(t, reservations)
		assert.Empty(t, reservations)
	})

	t.Run("Invalidate forces a refetch", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, `{"status":"success","data":[]}`)
		}))
		defer server.Close()

		cache := NewReservationCache(NewClient(server.URL, time.Second), time.Minute)

		cache.Reservations(ctx, "Toyota Camry")
		cache.Invalidate("Toyota Camry")
		cache.Reservations(ctx, "Toyota Camry")

		assert.Equal(t, 2, calls)
	})

	t.Run("RefreshAll groups reservations by vehicle", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, `{"status":"success","data":[
				{"carName":"Toyota Camry","startDate":"2025-07-01","endDate":"2025-07-05"},
				{"carName":"BMW M5","startDate":"2025-07-02","endDate":"2025-07-03"}
			]}`)
		}))
		defer server.Close()

		cache := NewReservationCache(NewClient(server.URL, time.Second), time.Minute)

		require.NoError(t, cache.RefreshAll(ctx))

		assert.Len(t, cache.Reservations(ctx, "Toyota Camry"), 1)
		assert.Len(t, cache.Reservations(ctx, "BMW M5"), 1)
		assert.Equal(t, 1, calls)
	})
}
