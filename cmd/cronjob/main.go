package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nixjke/baz-car/internal/config"
	"github.com/nixjke/baz-car/internal/jobs"
	"github.com/nixjke/baz-car/internal/logger"
	"github.com/nixjke/baz-car/internal/scheduler"
	"github.com/nixjke/baz-car/internal/upstream"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'sync-reservations')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Baz-Car Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize upstream client and cache
	client := upstream.NewClient(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)
	reservations := upstream.NewReservationCache(client, time.Duration(cfg.Upstream.CacheTTLSeconds)*time.Second)

	jobRunner := jobs.NewJobRunner(reservations, cfg)

	// Handle run-once mode
	if *runOnce != "" {
		switch *runOnce {
		case "sync-reservations":
			jobRunner.SyncReservations()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Job finished, exiting")
		return
	}

	// Start scheduler and wait for shutdown signal
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutdown signal received")
	sched.Stop()
}
