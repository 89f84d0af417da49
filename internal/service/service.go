package service

import (
	"context"
	"time"

	"github.com/nixjke/baz-car/internal/domain"
)

type BookingService interface {
	Quote(ctx context.Context, vehicleID string, dates domain.DateRange, deliveryOptionID string, addOnIDs []string) (domain.Quote, error)
	CheckAvailability(ctx context.Context, vehicleID string, dates domain.DateRange) (bool, error)
	CanSelectDate(ctx context.Context, vehicleID string, candidate, pendingStart time.Time) (bool, error)
	AddToCart(ctx context.Context, draft domain.ReservationDraft) (domain.CartLineItem, error)
}
