package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/repository"
)

type cartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Load(ctx context.Context) ([]domain.CartLineItem, error) {
	query := `SELECT id, vehicle_id, vehicle_name, base_daily_rate_cents, tiered_daily_rate_cents, start_date, end_date,
	                 rental_day_count, effective_daily_rate_cents, delivery_option_id, add_on_ids,
	                 contact_name, contact_phone, contact_email, total_price_cents, created_on, updated_on
	          FROM cart_items ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartLineItem
	for rows.Next() {
		var item domain.CartLineItem
		var tieredRate sql.NullInt64
		var addOnIDs pq.StringArray
		if err := rows.Scan(&item.ID, &item.VehicleID, &item.Vehicle.Name, &item.Vehicle.BaseDailyRateCents, &tieredRate,
			&item.Dates.Start, &item.Dates.End, &item.RentalDayCount, &item.EffectiveDailyRateCents,
			&item.DeliveryOptionID, &addOnIDs, &item.ContactName, &item.ContactPhone, &item.ContactEmail,
			&item.TotalPriceCents, &item.CreatedOn, &item.UpdatedOn); err != nil {
			return nil, err
		}
		item.Vehicle.ID = item.VehicleID
		if tieredRate.Valid {
			rate := tieredRate.Int64
			item.Vehicle.TieredDailyRateCents = &rate
		}
		if len(addOnIDs) > 0 {
			item.AddOnIDs = []string(addOnIDs)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Save replaces the stored cart wholesale inside one transaction so a crash
// never leaves a half-written mirror.
func (r *cartRepository) Save(ctx context.Context, items []domain.CartLineItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("failed to clear cart_items: %w", err)
	}

	query := `INSERT INTO cart_items (id, vehicle_id, vehicle_name, base_daily_rate_cents, tiered_daily_rate_cents, start_date, end_date,
	                 rental_day_count, effective_daily_rate_cents, delivery_option_id, add_on_ids,
	                 contact_name, contact_phone, contact_email, total_price_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	for _, item := range items {
		var tieredRate sql.NullInt64
		if item.Vehicle.TieredDailyRateCents != nil {
			tieredRate = sql.NullInt64{Int64: *item.Vehicle.TieredDailyRateCents, Valid: true}
		}
		var updatedOn time.Time = item.UpdatedOn
		if updatedOn.IsZero() {
			updatedOn = time.Now()
		}
		if _, err := tx.ExecContext(ctx, query, item.ID, item.VehicleID, item.Vehicle.Name, item.Vehicle.BaseDailyRateCents, tieredRate,
			item.Dates.Start, item.Dates.End, item.RentalDayCount, item.EffectiveDailyRateCents,
			item.DeliveryOptionID, pq.Array(item.AddOnIDs), item.ContactName, item.ContactPhone, item.ContactEmail,
			item.TotalPriceCents, item.CreatedOn, updatedOn); err != nil {
			return fmt.Errorf("failed to insert cart item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}
