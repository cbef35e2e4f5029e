package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

// DiscardHistory stands in for the run history store when no database is configured.
// Runs and outcomes still reach the logs and the report files.
type DiscardHistory struct{}

func (DiscardHistory) CreateRun(context.Context, *domain.Run) error { return nil }

func (DiscardHistory) UpdateRun(context.Context, *domain.Run) error { return nil }

func (DiscardHistory) SaveOutcomes(context.Context, uuid.UUID, ...domain.Outcome) error { return nil }

func (DiscardHistory) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
