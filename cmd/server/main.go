package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mission-control/internal/infrastructure/config"
	"mission-control/internal/infrastructure/persistence"
	"mission-control/internal/infrastructure/spacex"
	"mission-control/internal/interface/api"
	mongoRepo "mission-control/internal/interface/repository"
	"mission-control/internal/usecase"
	"mission-control/pkg/logger"
	"mission-control/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Mission Control")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	launchRepo := mongoRepo.NewMongoLaunchRepository(db)
	planetRepo := mongoRepo.NewMongoPlanetRepository(db)

	m := metrics.NewMetrics("mission_control")

	// Seed the stores before serving. Planets first: launch creation
	// validates its target against the planet store.
	planetLoader := usecase.NewPlanetLoader(planetRepo, m, log)
	if err := planetLoader.Load(ctx, cfg.KeplerDataPath); err != nil {
		log.Fatal("Failed to load planet data", "error", err)
	}

	spacexClient := spacex.NewClient(cfg.SpaceXAPIURL)
	launchLoader := usecase.NewLaunchLoader(launchRepo, spacexClient, m, log)
	if err := launchLoader.Load(ctx); err != nil {
		log.Fatal("Failed to load launch data", "error", err)
	}

	launchService := usecase.NewLaunchService(launchRepo, planetRepo, m, log)
	server := api.NewServer(launchService, planetRepo, cfg.CORSOrigin, log)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Mission Control stopped")
}
