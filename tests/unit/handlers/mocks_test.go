package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nixjke/baz-car/internal/domain"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Quote(ctx context.Context, vehicleID string, dates domain.DateRange, deliveryOptionID string, addOnIDs []string) (domain.Quote, error) {
	args := m.Called(ctx, vehicleID, dates, deliveryOptionID, addOnIDs)
	return args.Get(0).(domain.Quote), args.Error(1)
}

func (m *MockBookingService) CheckAvailability(ctx context.Context, vehicleID string, dates domain.DateRange) (bool, error) {
	args := m.Called(ctx, vehicleID, dates)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingService) CanSelectDate(ctx context.Context, vehicleID string, candidate, pendingStart time.Time) (bool, error) {
	args := m.Called(ctx, vehicleID, candidate, pendingStart)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingService) AddToCart(ctx context.Context, draft domain.ReservationDraft) (domain.CartLineItem, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.CartLineItem), args.Error(1)
}
