package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler requests a run on every tick of a standard cron expression.
type Scheduler struct {
	log       *slog.Logger
	cron      *cron.Cron
	requester RunRequester
}

func NewScheduler(log *slog.Logger, schedule string, requester RunRequester) (*Scheduler, error) {
	s := &Scheduler{
		log:       log,
		cron:      cron.New(),
		requester: requester,
	}

	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()

	<-ctx.Done()

	// Wait for a tick that is already requesting a run.
	<-s.cron.Stop().Done()

	return ctx.Err()
}

func (s *Scheduler) tick() {
	id, err := s.requester.Request()
	switch {
	case errors.Is(err, ErrRunInProgress):
		s.log.Warn("scheduled run skipped, previous run still in progress")
	case err != nil:
		s.log.Error("failed to request scheduled run", slog.String("err", err.Error()))
	default:
		s.log.Info("requested scheduled run", slog.String("run_id", id.String()))
	}
}
