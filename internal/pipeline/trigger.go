package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
)

var ErrRunInProgress = errors.New("run already in progress")

// Trigger serializes run requests: at most one run is pending or executing.
type Trigger struct {
	log      *slog.Logger
	runner   RunExecutor
	requests chan uuid.UUID
	busy     atomic.Bool
}

func NewTrigger(log *slog.Logger, runner RunExecutor) *Trigger {
	return &Trigger{
		log:      log,
		runner:   runner,
		requests: make(chan uuid.UUID, 1),
	}
}

// Request schedules a run and returns its id without waiting for it.
func (t *Trigger) Request() (uuid.UUID, error) {
	if !t.busy.CompareAndSwap(false, true) {
		return uuid.Nil, ErrRunInProgress
	}

	id, err := uuid.NewV7()
	if err != nil {
		t.busy.Store(false)
		return uuid.Nil, fmt.Errorf("failed to generate run id: %w", err)
	}

	t.requests <- id

	return id, nil
}

func (t *Trigger) Run(ctx context.Context) error {
	for {
		select {
		case id := <-t.requests:
			log := t.log.With(slog.String("run_id", id.String()))
			log.InfoContext(ctx, "received run request")

			if _, err := t.runner.Run(ctx, id); err != nil {
				log.ErrorContext(ctx, "run failed", slog.String("err", err.Error()))
			}

			t.busy.Store(false)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
