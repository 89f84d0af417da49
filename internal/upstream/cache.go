package upstream

import (
	"context"
	"sync"
	"time"

	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/logger"
)

type cacheEntry struct {
	reservations []domain.ExistingReservation
	fetchedAt    time.Time
}

// ReservationCache memoizes upstream reservation lists per vehicle so
// date-picker availability checks do not hammer the booking backend. A fetch
// failure degrades to an empty list; the storefront stays browsable even
// when the backend is down.
type ReservationCache struct {
	mu      sync.RWMutex
	client  *Client
	ttl     time.Duration
	entries map[string]cacheEntry
}

func NewReservationCache(client *Client, ttl time.Duration) *ReservationCache {
	return &ReservationCache{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Reservations returns the cached reservations for a vehicle, fetching from
// upstream when the entry is missing or stale.
func (c *ReservationCache) Reservations(ctx context.Context, vehicleName string) []domain.ExistingReservation {
	c.mu.RLock()
	entry, ok := c.entries[vehicleName]
	c.mu.RUnlock()

	if ok && time.Since(entry.fetchedAt) < c.ttl {
		return entry.reservations
	}

	reservations, err := c.client.FetchReservations(ctx, vehicleName)
	if err != nil {
		logger.Warn("Failed to refresh reservations, treating vehicle as available", "vehicle", vehicleName, "error", err)
		if ok {
			// Stale data beats no data.
			return entry.reservations
		}
		return []domain.ExistingReservation{}
	}

	c.mu.Lock()
	c.entries[vehicleName] = cacheEntry{reservations: reservations, fetchedAt: time.Now()}
	c.mu.Unlock()

	return reservations
}

// RefreshAll re-fetches the full reservation list and rebuilds the cache.
// Run periodically by the scheduler.
func (c *ReservationCache) RefreshAll(ctx context.Context) error {
	reservations, err := c.client.FetchReservations(ctx, "")
	if err != nil {
		return err
	}

	grouped := make(map[string][]domain.ExistingReservation)
	for _, r := range reservations {
		grouped[r.VehicleID] = append(grouped[r.VehicleID], r)
	}

	now := time.Now()
	entries := make(map[string]cacheEntry, len(grouped))
	for vehicle, list := range grouped {
		entries[vehicle] = cacheEntry{reservations: list, fetchedAt: now}
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()

	logger.Info("Reservation cache refreshed", "vehicles", len(entries), "reservations", len(reservations))
	return nil
}

// Invalidate drops the cached entry for one vehicle.
func (c *ReservationCache) Invalidate(vehicleName string) {
	c.mu.Lock()
	delete(c.entries, vehicleName)
	c.mu.Unlock()
}
