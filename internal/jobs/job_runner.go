package jobs

import (
	"github.com/nixjke/baz-car/internal/config"
	"github.com/nixjke/baz-car/internal/logger"
	"github.com/nixjke/baz-car/internal/upstream"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	reservations *upstream.ReservationCache
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(reservations *upstream.ReservationCache, cfg *config.Config) *JobRunner {
	return &JobRunner{
		reservations: reservations,
		config:       cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
