package repository

import (
	"context"

	"mission-control/internal/domain/entity"
)

// LaunchRepository defines the interface for launch record operations.
// Upsert has replace semantics: the stored document is fully overwritten by
// the given record, never field-merged.
type LaunchRepository interface {
	Upsert(ctx context.Context, launch *entity.Launch) error
	FindByFlightNumber(ctx context.Context, flightNumber int) (*entity.Launch, error)
	FindMax(ctx context.Context) (*entity.Launch, error)
	List(ctx context.Context, skip, limit int64) ([]entity.Launch, error)
	MarkAborted(ctx context.Context, flightNumber int) (bool, error)
}
