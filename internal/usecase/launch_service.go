package usecase

import (
	"context"
	"errors"
	"fmt"

	"mission-control/internal/domain"
	"mission-control/internal/domain/entity"
	"mission-control/internal/domain/repository"
	"mission-control/pkg/logger"
	"mission-control/pkg/metrics"
	"mission-control/pkg/utils"
)

// defaultFlightNumber is assigned to the first launch when the store is empty.
const defaultFlightNumber = 101

// defaultCustomers is attached to every client-created launch.
var defaultCustomers = []string{"ZTM", "NASA"}

// LaunchRequest is a client request to schedule a new launch.
type LaunchRequest struct {
	Mission    string `json:"mission"`
	Rocket     string `json:"rocket"`
	LaunchDate string `json:"launchDate"`
	Target     string `json:"target"`
}

// LaunchService orchestrates creation and cancellation of launch records
type LaunchService struct {
	launchRepo repository.LaunchRepository
	planetRepo repository.PlanetRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewLaunchService creates a new launch service
func NewLaunchService(
	launchRepo repository.LaunchRepository,
	planetRepo repository.PlanetRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *LaunchService {
	return &LaunchService{
		launchRepo: launchRepo,
		planetRepo: planetRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Create validates the request, checks the target planet exists, allocates
// the next flight number, and persists the launch. The returned record is
// fully populated.
func (s *LaunchService) Create(ctx context.Context, req LaunchRequest) (*entity.Launch, error) {
	if req.Mission == "" || req.Rocket == "" || req.LaunchDate == "" || req.Target == "" {
		return nil, domain.ErrMissingField
	}

	launchDate, ok := utils.ParseDate(req.LaunchDate)
	if !ok {
		return nil, domain.ErrInvalidDate
	}

	// Referential integrity: the target must be a known habitable planet.
	if _, err := s.planetRepo.FindByName(ctx, req.Target); err != nil {
		return nil, err
	}

	flightNumber, err := s.nextFlightNumber(ctx)
	if err != nil {
		return nil, err
	}

	launch := &entity.Launch{
		FlightNumber: flightNumber,
		Mission:      req.Mission,
		Rocket:       req.Rocket,
		LaunchDate:   launchDate,
		Target:       req.Target,
		Customers:    defaultCustomers,
		Upcoming:     true,
		Success:      true,
	}

	if err := s.launchRepo.Upsert(ctx, launch); err != nil {
		return nil, fmt.Errorf("save launch: %w", err)
	}

	s.metrics.LaunchesCreated.Inc()
	s.logger.Info("Scheduled new launch", "flightNumber", launch.FlightNumber, "mission", launch.Mission)
	return launch, nil
}

// Abort marks a launch as no longer upcoming and unsuccessful. The record
// itself is kept.
func (s *LaunchService) Abort(ctx context.Context, flightNumber int) error {
	if _, err := s.launchRepo.FindByFlightNumber(ctx, flightNumber); err != nil {
		return err
	}

	aborted, err := s.launchRepo.MarkAborted(ctx, flightNumber)
	if err != nil {
		return fmt.Errorf("abort launch %d: %w", flightNumber, err)
	}
	if !aborted {
		// Zero records modified, e.g. already aborted under a racing request.
		return domain.ErrLaunchNotAborted
	}

	s.metrics.LaunchesAborted.Inc()
	s.logger.Info("Aborted launch", "flightNumber", flightNumber)
	return nil
}

// List returns launches ordered ascending by flight number.
func (s *LaunchService) List(ctx context.Context, skip, limit int64) ([]entity.Launch, error) {
	return s.launchRepo.List(ctx, skip, limit)
}

// nextFlightNumber computes max+1 over the stored launches, or the default
// when the store is empty. Read-then-compute, not atomic: two concurrent
// creates can read the same max, and the upsert keyed on flightNumber then
// makes the second write replace the first.
func (s *LaunchService) nextFlightNumber(ctx context.Context) (int, error) {
	latest, err := s.launchRepo.FindMax(ctx)
	if errors.Is(err, domain.ErrLaunchNotFound) {
		return defaultFlightNumber, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.FlightNumber + 1, nil
}
