// Package cart holds the in-memory rental cart. The store is the source of
// truth for cart contents; the configured repository mirrors it so the cart
// survives restarts. Persistence is synchronous but best-effort: a failed
// save is logged and the in-memory state stands.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/logger"
	"github.com/nixjke/baz-car/internal/notify"
	"github.com/nixjke/baz-car/internal/pricing"
	"github.com/nixjke/baz-car/internal/repository"
)

var (
	ErrValidation    = errors.New("draft failed validation")
	ErrDuplicateItem = errors.New("identical item already in cart")
	ErrItemNotFound  = errors.New("cart item not found")
)

// ItemChanges describes a partial update to a line item. Nil fields keep
// their current value.
type ItemChanges struct {
	Dates            *domain.DateRange
	DeliveryOptionID *string
	AddOnIDs         *[]string
	ContactName      *string
	ContactPhone     *string
	ContactEmail     *string
}

type Store struct {
	mu       sync.Mutex
	items    []domain.CartLineItem
	engine   *pricing.Engine
	repo     repository.CartRepository
	notifier notify.Notifier
}

func NewStore(engine *pricing.Engine, repo repository.CartRepository, notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Store{engine: engine, repo: repo, notifier: notifier}
}

// Load rehydrates the cart from the repository. Called once at startup; a
// load failure leaves the cart empty rather than blocking the service.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	items, err := s.repo.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load persisted cart, starting empty", "error", err)
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	logger.Info("Cart rehydrated", "items", len(items))
	return nil
}

// Add prices the draft against the vehicle snapshot and appends a new line
// item. An identical selection already in the cart is a no-op.
func (s *Store) Add(ctx context.Context, vehicle domain.VehicleSnapshot, draft domain.ReservationDraft) (domain.CartLineItem, error) {
	if err := validateDraft(draft); err != nil {
		s.notifier.Notify(notify.Notification{Kind: notify.KindError, Message: "Заполните даты аренды и контактные данные"})
		return domain.CartLineItem{}, err
	}

	addOnIDs := domain.NormalizeAddOnIDs(draft.AddOnIDs)
	key := itemKey(draft.VehicleID, draft.Dates, draft.DeliveryOptionID, addOnIDs)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if itemKey(item.VehicleID, item.Dates, item.DeliveryOptionID, item.AddOnIDs) == key {
			s.notifier.Notify(notify.Notification{Kind: notify.KindInfo, Message: "Этот автомобиль уже в корзине"})
			return item, ErrDuplicateItem
		}
	}

	quote := s.engine.ComputeQuote(vehicle, draft.Dates, draft.DeliveryOptionID, addOnIDs)
	now := time.Now().UTC()
	item := domain.CartLineItem{
		ID:                      uuid.New().String(),
		VehicleID:               draft.VehicleID,
		Vehicle:                 vehicle,
		Dates:                   draft.Dates,
		RentalDayCount:          quote.RentalDayCount,
		EffectiveDailyRateCents: quote.EffectiveDailyRateCents,
		DeliveryOptionID:        draft.DeliveryOptionID,
		AddOnIDs:                addOnIDs,
		ContactName:             draft.ContactName,
		ContactPhone:            draft.ContactPhone,
		ContactEmail:            draft.ContactEmail,
		TotalPriceCents:         quote.TotalCents,
		CreatedOn:               now,
		UpdatedOn:               now,
	}
	s.items = append(s.items, item)

	s.persist(ctx)
	s.notifier.Notify(notify.Notification{Kind: notify.KindSuccess, Message: "Автомобиль добавлен в корзину"})
	return item, nil
}

// Remove deletes the line item with the given id. Removing an unknown id is
// a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			s.notifier.Notify(notify.Notification{Kind: notify.KindInfo, Message: "Автомобиль удалён из корзины"})
			return
		}
	}
}

// Update merges the changes into the line item and reprices it from the
// vehicle snapshot frozen at creation time. The price is always recomputed,
// even when no priced field changed.
func (s *Store) Update(ctx context.Context, id string, changes ItemChanges) (domain.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]

		if changes.Dates != nil {
			if changes.Dates.Complete() && !changes.Dates.Valid() {
				return domain.CartLineItem{}, fmt.Errorf("%w: end date must be after start date", ErrValidation)
			}
			item.Dates = *changes.Dates
		}
		if changes.DeliveryOptionID != nil {
			item.DeliveryOptionID = *changes.DeliveryOptionID
		}
		if changes.AddOnIDs != nil {
			item.AddOnIDs = domain.NormalizeAddOnIDs(*changes.AddOnIDs)
		}
		if changes.ContactName != nil {
			item.ContactName = *changes.ContactName
		}
		if changes.ContactPhone != nil {
			item.ContactPhone = *changes.ContactPhone
		}
		if changes.ContactEmail != nil {
			item.ContactEmail = *changes.ContactEmail
		}

		quote := s.engine.ComputeQuote(item.Vehicle, item.Dates, item.DeliveryOptionID, item.AddOnIDs)
		item.RentalDayCount = quote.RentalDayCount
		item.EffectiveDailyRateCents = quote.EffectiveDailyRateCents
		item.TotalPriceCents = quote.TotalCents
		item.UpdatedOn = time.Now().UTC()

		s.persist(ctx)
		return *item, nil
	}

	return domain.CartLineItem{}, ErrItemNotFound
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.persist(ctx)
	s.notifier.Notify(notify.Notification{Kind: notify.KindInfo, Message: "Корзина очищена"})
}

// Items returns a copy of the cart contents.
func (s *Store) Items() []domain.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalCents sums the per-item totals.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.items {
		total += item.TotalPriceCents
	}
	return total
}

// persist mirrors the current items to the repository. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}
	snapshot := make([]domain.CartLineItem, len(s.items))
	copy(snapshot, s.items)
	if err := s.repo.Save(ctx, snapshot); err != nil {
		logger.Warn("Failed to persist cart", "error", err, "items", len(snapshot))
	}
}

func validateDraft(draft domain.ReservationDraft) error {
	if !draft.Dates.Complete() {
		return fmt.Errorf("%w: rental dates are required", ErrValidation)
	}
	if !draft.Dates.Valid() {
		return fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if strings.TrimSpace(draft.ContactName) == "" {
		return fmt.Errorf("%w: contact name is required", ErrValidation)
	}
	if strings.TrimSpace(draft.ContactPhone) == "" {
		return fmt.Errorf("%w: contact phone is required", ErrValidation)
	}
	return nil
}

func itemKey(vehicleID string, dates domain.DateRange, deliveryID string, sortedAddOnIDs []string) string {
	return strings.Join([]string{
		vehicleID,
		dates.Start.UTC().Format(time.RFC3339),
		dates.End.UTC().Format(time.RFC3339),
		deliveryID,
		strings.Join(sortedAddOnIDs, ","),
	}, "|")
}
