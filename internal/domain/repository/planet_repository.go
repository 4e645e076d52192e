package repository

import (
	"context"

	"mission-control/internal/domain/entity"
)

// PlanetRepository defines the interface for planet record operations.
// UpsertByName inserts if the name is absent and leaves an existing record
// unchanged.
type PlanetRepository interface {
	UpsertByName(ctx context.Context, keplerName string) error
	FindByName(ctx context.Context, keplerName string) (*entity.Planet, error)
	ListAll(ctx context.Context) ([]entity.Planet, error)
}
