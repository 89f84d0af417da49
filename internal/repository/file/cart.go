// Package file persists the cart as a JSON document on disk, the server-side
// equivalent of the storefront's browser storage.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/repository"
)

type cartRepository struct {
	path string
}

func NewCartRepository(path string) repository.CartRepository {
	return &cartRepository{path: path}
}

func (r *cartRepository) Load(ctx context.Context) ([]domain.CartLineItem, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var items []domain.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse cart file %s: %w", r.path, err)
	}
	return items, nil
}

// Save writes to a temp file and renames it into place so readers never see
// a partially written cart.
func (r *cartRepository) Save(ctx context.Context, items []domain.CartLineItem) error {
	if items == nil {
		items = []domain.CartLineItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
