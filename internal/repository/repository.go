// Package repository defines persistence contracts for the cart. The in-memory
// store is the source of truth; repositories are a best-effort mirror used to
// rehydrate the cart on startup.
package repository

import (
	"context"

	"github.com/nixjke/baz-car/internal/domain"
)

// CartRepository persists the full cart contents. Save replaces the stored
// snapshot wholesale; partial updates are not part of the contract.
type CartRepository interface {
	Load(ctx context.Context) ([]domain.CartLineItem, error)
	Save(ctx context.Context, items []domain.CartLineItem) error
}
