package jobs

import (
	"context"
	"time"

	"github.com/nixjke/baz-car/internal/logger"
)

// SyncReservations refreshes the reservation cache from the booking backend
// so date-picker availability stays close to reality between user-triggered
// fetches.
func (jr *JobRunner) SyncReservations() {
	jr.runWithRecovery("SyncReservations", func() {
		timeout := time.Duration(jr.config.Upstream.TimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := jr.reservations.RefreshAll(ctx); err != nil {
			logger.Error("Failed to sync reservations", "error", err)
			return
		}
	})
}
