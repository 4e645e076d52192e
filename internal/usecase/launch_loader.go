package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mission-control/internal/domain"
	"mission-control/internal/domain/entity"
	"mission-control/internal/domain/repository"
	"mission-control/internal/infrastructure/spacex"
	"mission-control/pkg/logger"
	"mission-control/pkg/metrics"
)

// Sentinel launch used to detect whether the provider import already ran.
// Downloading the full history is expensive, so it happens at most once.
const (
	seedFlightNumber = 1
	seedMission      = "FalconSat"
	seedRocket       = "Falcon 1"
)

// LaunchProvider fetches launch history documents from an external source.
type LaunchProvider interface {
	QueryAllLaunches(ctx context.Context) ([]spacex.LaunchDoc, error)
}

// LaunchLoader seeds the launch store from the external provider.
type LaunchLoader struct {
	launchRepo repository.LaunchRepository
	provider   LaunchProvider
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewLaunchLoader creates a new launch loader
func NewLaunchLoader(
	launchRepo repository.LaunchRepository,
	provider LaunchProvider,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *LaunchLoader {
	return &LaunchLoader{
		launchRepo: launchRepo,
		provider:   provider,
		metrics:    metrics,
		logger:     logger,
	}
}

// Load downloads and upserts the full launch history unless the sentinel
// record shows the import already ran. Any fetch or mapping failure is
// terminal for this startup attempt.
func (l *LaunchLoader) Load(ctx context.Context) error {
	seeded, err := l.alreadySeeded(ctx)
	if err != nil {
		return fmt.Errorf("check seed launch: %w", err)
	}
	if seeded {
		l.logger.Info("Launch data already loaded")
		return nil
	}
	return l.populate(ctx)
}

func (l *LaunchLoader) alreadySeeded(ctx context.Context) (bool, error) {
	first, err := l.launchRepo.FindByFlightNumber(ctx, seedFlightNumber)
	if errors.Is(err, domain.ErrLaunchNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return first.Mission == seedMission && first.Rocket == seedRocket, nil
}

func (l *LaunchLoader) populate(ctx context.Context) error {
	l.logger.Info("Populating launch data")
	start := time.Now()

	docs, err := l.provider.QueryAllLaunches(ctx)
	if err != nil {
		return fmt.Errorf("populate launches: %w", err)
	}

	for _, doc := range docs {
		launch, err := launchFromDoc(doc)
		if err != nil {
			return fmt.Errorf("populate launches: %w", err)
		}
		if err := l.launchRepo.Upsert(ctx, launch); err != nil {
			return fmt.Errorf("populate launches: %w", err)
		}
		l.logger.Debug("Imported launch", "flightNumber", launch.FlightNumber, "mission", launch.Mission)
		l.metrics.LaunchesImported.Inc()
	}

	l.metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	l.logger.Info("Launch data populated", "count", len(docs))
	return nil
}

// launchFromDoc maps a provider document onto the internal schema,
// flattening the nested rocket name and concatenating every payload's
// customers into one sequence.
func launchFromDoc(doc spacex.LaunchDoc) (*entity.Launch, error) {
	launchDate, err := time.Parse(time.RFC3339, doc.DateLocal)
	if err != nil {
		return nil, fmt.Errorf("launch %d: parse date_local %q: %w", doc.FlightNumber, doc.DateLocal, err)
	}

	var customers []string
	for _, payload := range doc.Payloads {
		customers = append(customers, payload.Customers...)
	}

	return &entity.Launch{
		FlightNumber: doc.FlightNumber,
		Mission:      doc.Name,
		Rocket:       doc.Rocket.Name,
		LaunchDate:   launchDate,
		Customers:    customers,
		Upcoming:     doc.Upcoming,
		Success:      doc.Success,
	}, nil
}
