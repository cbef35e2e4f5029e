package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/parquet_loader/internal/domain"
)

type Recorder struct {
	log           *slog.Logger
	runSaver      RunSaver
	outcomesSaver OutcomesSaver
	transactor    Transactor
}

func NewRecorder(
	log *slog.Logger,
	runSaver RunSaver,
	outcomesSaver OutcomesSaver,
	transactor Transactor,
) *Recorder {
	return &Recorder{
		log:           log,
		runSaver:      runSaver,
		outcomesSaver: outcomesSaver,
		transactor:    transactor,
	}
}

func (r *Recorder) Start(ctx context.Context, run *domain.Run) error {
	if err := r.runSaver.CreateRun(ctx, run); err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// Finish stores the final run state together with its outcomes.
func (r *Recorder) Finish(ctx context.Context, report *domain.Report) error {
	log := r.log.With(
		slog.String("run_id", report.Run.ID.String()),
		slog.Int("outcomes_count", len(report.Outcomes)),
	)

	log.DebugContext(ctx, "saving run result to database")

	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := r.runSaver.UpdateRun(ctx, report.Run); err != nil {
			return fmt.Errorf("failed to update run: %w", err)
		}

		if len(report.Outcomes) == 0 {
			return nil
		}

		if err := r.outcomesSaver.SaveOutcomes(ctx, report.Run.ID, report.Outcomes...); err != nil {
			return fmt.Errorf("failed to save outcomes: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "run result saved successfully")

	return nil
}
