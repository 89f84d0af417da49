package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixjke/baz-car/internal/domain"
)

func TestCartRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file loads as an empty cart", func(t *testing.T) {
		repo := NewCartRepository(filepath.Join(t.TempDir(), "cart.json"))

		items, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Save then load round-trips items", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		repo := NewCartRepository(path)

		tier := int64(4000)
		saved := []domain.CartLineItem{{
			ID:        "item-1",
			VehicleID: "camry",
			Vehicle: domain.VehicleSnapshot{
				ID:                   "camry",
				Name:                 "Toyota Camry",
				BaseDailyRateCents:   5000,
				TieredDailyRateCents: &tier,
			},
			Dates: domain.DateRange{
				Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
			},
			RentalDayCount:          4,
			EffectiveDailyRateCents: 4000,
			DeliveryOptionID:        "city",
			AddOnIDs:                []string{"childSeat"},
			ContactName:             "Иван",
			ContactPhone:            "+7 900 000-00-00",
			TotalPriceCents:         18200,
		}}

		require.NoError(t, repo.Save(ctx, saved))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("Save creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "nested", "cart.json")
		repo := NewCartRepository(path)

		require.NoError(t, repo.Save(ctx, nil))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("Save replaces previous contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		repo := NewCartRepository(path)

		require.NoError(t, repo.Save(ctx, []domain.CartLineItem{{ID: "a"}, {ID: "b"}}))
		require.NoError(t, repo.Save(ctx, []domain.CartLineItem{{ID: "c"}}))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "c", loaded[0].ID)
	})

	t.Run("Corrupt file surfaces a parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		repo := NewCartRepository(path)

		_, err := repo.Load(ctx)

		assert.Error(t, err)
	})
}
