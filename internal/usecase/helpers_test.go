package usecase

import (
	"context"
	"sort"

	"mission-control/internal/domain"
	"mission-control/internal/domain/entity"
	"mission-control/pkg/logger"
	"mission-control/pkg/metrics"
)

// One shared metrics instance per test binary; promauto registers into the
// default registry and would panic on duplicates.
var testMetrics = metrics.NewMetrics("usecase_test")

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (n nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return n
}

// memLaunchRepo is an in-memory LaunchRepository.
type memLaunchRepo struct {
	launches    map[int]entity.Launch
	upsertCalls int
}

func newMemLaunchRepo() *memLaunchRepo {
	return &memLaunchRepo{launches: make(map[int]entity.Launch)}
}

func (m *memLaunchRepo) Upsert(ctx context.Context, launch *entity.Launch) error {
	m.upsertCalls++
	m.launches[launch.FlightNumber] = *launch
	return nil
}

func (m *memLaunchRepo) FindByFlightNumber(ctx context.Context, flightNumber int) (*entity.Launch, error) {
	launch, ok := m.launches[flightNumber]
	if !ok {
		return nil, domain.ErrLaunchNotFound
	}
	return &launch, nil
}

func (m *memLaunchRepo) FindMax(ctx context.Context) (*entity.Launch, error) {
	var max *entity.Launch
	for number := range m.launches {
		if max == nil || number > max.FlightNumber {
			launch := m.launches[number]
			max = &launch
		}
	}
	if max == nil {
		return nil, domain.ErrLaunchNotFound
	}
	return max, nil
}

func (m *memLaunchRepo) List(ctx context.Context, skip, limit int64) ([]entity.Launch, error) {
	all := make([]entity.Launch, 0, len(m.launches))
	for _, launch := range m.launches {
		all = append(all, launch)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FlightNumber < all[j].FlightNumber
	})

	if skip >= int64(len(all)) {
		return []entity.Launch{}, nil
	}
	all = all[skip:]
	if limit > 0 && limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memLaunchRepo) MarkAborted(ctx context.Context, flightNumber int) (bool, error) {
	launch, ok := m.launches[flightNumber]
	if !ok {
		return false, nil
	}
	// Mirror Mongo's ModifiedCount: writing the same values modifies nothing.
	if !launch.Upcoming && !launch.Success {
		return false, nil
	}
	launch.Upcoming = false
	launch.Success = false
	m.launches[flightNumber] = launch
	return true, nil
}

// memPlanetRepo is an in-memory PlanetRepository. failNames makes
// UpsertByName fail for specific planets.
type memPlanetRepo struct {
	planets   map[string]bool
	order     []string
	failNames map[string]error
	findCalls int
}

func newMemPlanetRepo() *memPlanetRepo {
	return &memPlanetRepo{planets: make(map[string]bool)}
}

func (m *memPlanetRepo) UpsertByName(ctx context.Context, keplerName string) error {
	if err := m.failNames[keplerName]; err != nil {
		return err
	}
	if !m.planets[keplerName] {
		m.planets[keplerName] = true
		m.order = append(m.order, keplerName)
	}
	return nil
}

func (m *memPlanetRepo) FindByName(ctx context.Context, keplerName string) (*entity.Planet, error) {
	m.findCalls++
	if !m.planets[keplerName] {
		return nil, domain.ErrPlanetNotFound
	}
	return &entity.Planet{KeplerName: keplerName}, nil
}

func (m *memPlanetRepo) ListAll(ctx context.Context) ([]entity.Planet, error) {
	planets := make([]entity.Planet, 0, len(m.order))
	for _, name := range m.order {
		planets = append(planets, entity.Planet{KeplerName: name})
	}
	return planets, nil
}
