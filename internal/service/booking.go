package service

import (
	"context"
	"errors"
	"time"

	"github.com/nixjke/baz-car/internal/availability"
	"github.com/nixjke/baz-car/internal/cart"
	"github.com/nixjke/baz-car/internal/catalog"
	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/notify"
	"github.com/nixjke/baz-car/internal/pricing"
)

var ErrDatesUnavailable = errors.New("requested dates conflict with an existing reservation")

// ReservationSource supplies confirmed reservations for a vehicle. Backed by
// the upstream cache in production and by fakes in tests.
type ReservationSource interface {
	Reservations(ctx context.Context, vehicleName string) []domain.ExistingReservation
}

type bookingService struct {
	vehicles     *catalog.VehicleCatalog
	engine       *pricing.Engine
	store        *cart.Store
	reservations ReservationSource
	notifier     notify.Notifier
}

func NewBookingService(
	vehicles *catalog.VehicleCatalog,
	engine *pricing.Engine,
	store *cart.Store,
	reservations ReservationSource,
	notifier notify.Notifier,
) BookingService {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &bookingService{
		vehicles:     vehicles,
		engine:       engine,
		store:        store,
		reservations: reservations,
		notifier:     notifier,
	}
}

func (s *bookingService) Quote(ctx context.Context, vehicleID string, dates domain.DateRange, deliveryOptionID string, addOnIDs []string) (domain.Quote, error) {
	vehicle, err := s.vehicles.Get(vehicleID)
	if err != nil {
		return domain.Quote{}, err
	}
	return s.engine.ComputeQuote(vehicle.Snapshot(), dates, deliveryOptionID, addOnIDs), nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, vehicleID string, dates domain.DateRange) (bool, error) {
	vehicle, err := s.vehicles.Get(vehicleID)
	if err != nil {
		return false, err
	}
	existing := s.reservations.Reservations(ctx, vehicle.Name)
	return availability.IsRangeAvailable(dates, existing), nil
}

func (s *bookingService) CanSelectDate(ctx context.Context, vehicleID string, candidate, pendingStart time.Time) (bool, error) {
	vehicle, err := s.vehicles.Get(vehicleID)
	if err != nil {
		return false, err
	}
	existing := s.reservations.Reservations(ctx, vehicle.Name)
	return availability.CanSelectDate(candidate, pendingStart, existing), nil
}

// AddToCart gates the draft on availability, then commits it. A conflict is
// reported to the user, not just returned as an error.
func (s *bookingService) AddToCart(ctx context.Context, draft domain.ReservationDraft) (domain.CartLineItem, error) {
	vehicle, err := s.vehicles.Get(draft.VehicleID)
	if err != nil {
		return domain.CartLineItem{}, err
	}

	if draft.Dates.Complete() {
		existing := s.reservations.Reservations(ctx, vehicle.Name)
		if !availability.IsRangeAvailable(draft.Dates, existing) {
			s.notifier.Notify(notify.Notification{Kind: notify.KindError, Message: "Выбранные даты уже заняты"})
			return domain.CartLineItem{}, ErrDatesUnavailable
		}
	}

	return s.store.Add(ctx, vehicle.Snapshot(), draft)
}
