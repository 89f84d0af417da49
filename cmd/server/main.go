package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "github.com/nixjke/baz-car/internal/api/http"
	"github.com/nixjke/baz-car/internal/cart"
	"github.com/nixjke/baz-car/internal/catalog"
	"github.com/nixjke/baz-car/internal/config"
	"github.com/nixjke/baz-car/internal/jobs"
	"github.com/nixjke/baz-car/internal/logger"
	"github.com/nixjke/baz-car/internal/notify"
	"github.com/nixjke/baz-car/internal/pricing"
	"github.com/nixjke/baz-car/internal/repository"
	filerepo "github.com/nixjke/baz-car/internal/repository/file"
	"github.com/nixjke/baz-car/internal/repository/postgres"
	"github.com/nixjke/baz-car/internal/scheduler"
	"github.com/nixjke/baz-car/internal/service"
	"github.com/nixjke/baz-car/internal/upstream"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Baz-Car booking service...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Storage configuration", "type", cfg.Storage.Type)
	logger.Info("Upstream configuration", "base_url", cfg.Upstream.BaseURL)

	// Initialize cart persistence
	var cartRepo repository.CartRepository
	switch cfg.Storage.Type {
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		cartRepo = postgres.NewStore(db)
	default:
		logger.Info("Using file-backed cart storage", "path", cfg.Storage.FilePath)
		cartRepo = filerepo.NewCartRepository(cfg.Storage.FilePath)
	}

	// Load catalogs
	var vehicles *catalog.VehicleCatalog
	var services *catalog.ServiceCatalog
	if cfg.Catalog.Path != "" {
		vehicles, services, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			logger.Error("Failed to load catalog file", "path", cfg.Catalog.Path, "error", err)
			log.Fatalf("Failed to load catalog: %v", err)
		}
		logger.Info("Catalog loaded from file", "path", cfg.Catalog.Path)
	} else {
		vehicles, services = catalog.Default()
		logger.Info("Using built-in default catalog")
	}

	// Initialize upstream booking backend client and reservation cache
	upstreamClient := upstream.NewClient(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)
	reservations := upstream.NewReservationCache(upstreamClient, time.Duration(cfg.Upstream.CacheTTLSeconds)*time.Second)

	// Initialize core components
	notifier := notify.NewLogNotifier()
	engine := pricing.NewEngine(services)
	store := cart.NewStore(engine, cartRepo, notifier)
	if err := store.Load(context.Background()); err != nil {
		logger.Warn("Continuing with an empty cart", "error", err)
	}

	bookingSvc := service.NewBookingService(vehicles, engine, store, reservations, notifier)
	drafts := service.NewDraftBuilder(services)

	// Start the reservation sync scheduler
	jobRunner := jobs.NewJobRunner(reservations, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := api.NewRouter(api.RouterDeps{
		Vehicles: vehicles,
		Services: services,
		Booking:  bookingSvc,
		Cart:     store,
		Drafts:   drafts,
		Upstream: upstreamClient,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
