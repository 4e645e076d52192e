package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"mission-control/internal/domain/entity"
	"mission-control/internal/domain/repository"
	"mission-control/pkg/logger"
	"mission-control/pkg/metrics"
)

// PlanetLoader streams the Kepler observation dataset, filters habitable
// candidates, and upserts them into the planet store.
type PlanetLoader struct {
	planetRepo repository.PlanetRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewPlanetLoader creates a new planet loader
func NewPlanetLoader(planetRepo repository.PlanetRepository, metrics *metrics.Metrics, logger logger.Logger) *PlanetLoader {
	return &PlanetLoader{
		planetRepo: planetRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Load runs one full pass over the dataset file at path. Re-running is
// idempotent: upserts keyed by keplerName never duplicate.
func (l *PlanetLoader) Load(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open kepler dataset: %w", err)
	}
	defer file.Close()

	return l.LoadFrom(ctx, file)
}

// LoadFrom consumes observation rows from r. Rows starting with # are
// comments; the first data row is the column header. A row decode error
// aborts the pass, a failed planet save is logged and skipped so one bad
// row does not stop the rest.
func (l *PlanetLoader) LoadFrom(ctx context.Context, r io.Reader) error {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read kepler header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decode kepler row: %w", err)
		}

		observation := observationFromRow(row, columns)
		if !observation.IsHabitable() {
			continue
		}

		if err := l.planetRepo.UpsertByName(ctx, observation.KeplerName); err != nil {
			l.logger.Error("Could not save planet", "keplerName", observation.KeplerName, "error", err)
			l.metrics.ErrorsCount.WithLabelValues("save_planet").Inc()
			continue
		}
		l.metrics.PlanetsIngested.Inc()
	}

	planets, err := l.planetRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("count habitable planets: %w", err)
	}
	l.logger.Info("Habitable planets found", "count", len(planets))
	return nil
}

func observationFromRow(row []string, columns map[string]int) entity.Observation {
	field := func(name string) string {
		index, ok := columns[name]
		if !ok || index >= len(row) {
			return ""
		}
		return row[index]
	}

	return entity.Observation{
		KeplerName:      field("kepler_name"),
		Disposition:     field("koi_disposition"),
		InsolationFlux:  field("koi_insol"),
		PlanetaryRadius: field("koi_prad"),
	}
}
